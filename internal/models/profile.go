package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spendwise-app/backend/internal/i18n"
	"gorm.io/gorm"
)

// Profile holds the data a user entered about themselves and their
// language selection.
type Profile struct {
	UserID string `gorm:"primaryKey"`
	Timestamps
	Name          string
	Phone         string
	Village       string
	MonthlyIncome decimal.NullDecimal `gorm:"type:DECIMAL(20,8)"`
	Locale        i18n.Locale
}

// BeforeSave trims whitespace from string fields.
func (p *Profile) BeforeSave(_ *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Phone = strings.TrimSpace(p.Phone)
	p.Village = strings.TrimSpace(p.Village)

	return nil
}
