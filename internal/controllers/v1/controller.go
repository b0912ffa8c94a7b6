// Package v1 implements the handlers of the v1 API.
package v1

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spendwise-app/backend/internal/budget"
	"github.com/spendwise-app/backend/internal/categories"
	"github.com/spendwise-app/backend/internal/dashboard"
	"github.com/spendwise-app/backend/internal/i18n"
	"github.com/spendwise-app/backend/internal/ledger"
	"github.com/spendwise-app/backend/internal/models"
	"github.com/spendwise-app/backend/internal/profile"
	"gorm.io/gorm"
)

// Controller holds the services the handlers use.
type Controller struct {
	db *gorm.DB

	Categories *categories.Directory
	Ledger     *ledger.Ledger
	Budgets    *budget.Manager
	Dashboard  *dashboard.Aggregator
	Profiles   *profile.Service
}

// New wires all services to the database.
func New(db *gorm.DB, defaultLocale i18n.Locale) Controller {
	directory := categories.New(db)
	l := ledger.New(db, directory)
	budgets := budget.New(db, l)

	return Controller{
		db:         db,
		Categories: directory,
		Ledger:     l,
		Budgets:    budgets,
		Dashboard:  dashboard.New(l, budgets, directory),
		Profiles:   profile.New(db, defaultLocale),
	}
}

// Ping verifies that the database can be reached.
func (co Controller) Ping(ctx context.Context) error {
	sqlDB, err := co.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.PingContext(ctx)
}

// SetClock replaces the clock that decides which day it is.
func (co Controller) SetClock(now func() time.Time) {
	co.Budgets.Now = now
}

// now returns the current time as seen by the budget manager.
func (co Controller) now() time.Time {
	return co.Budgets.Now()
}

// ctx returns the context of the request.
func ctx(c *gin.Context) context.Context {
	return c.Request.Context()
}

// userID returns the identifier of the user making the request.
func userID(c *gin.Context) string {
	return c.GetString(string(models.ContextUserID))
}

// locale returns the locale resolved for the request.
func locale(c *gin.Context) i18n.Locale {
	l := i18n.Locale(c.GetString(string(models.ContextLocale)))
	if !l.Valid() {
		return i18n.Default
	}

	return l
}

// baseURL returns the external URL of the API.
func baseURL(c *gin.Context) string {
	return c.GetString(string(models.ContextURL))
}
