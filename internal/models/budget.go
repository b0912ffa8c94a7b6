package models

import (
	"github.com/shopspring/decimal"
	"github.com/spendwise-app/backend/internal/types"
)

// Cycle is the length of a budget window.
type Cycle string

const (
	CycleMonthly Cycle = "monthly"
	CycleWeekly  Cycle = "weekly"
)

// Valid reports whether the cycle is known.
func (c Cycle) Valid() bool {
	return c == CycleMonthly || c == CycleWeekly
}

// Budget is a spending target for the window [StartDate, EndDate].
//
// The amount spent is never stored. It is always calculated from the
// expenses in the window.
type Budget struct {
	DefaultModel
	UserID    string          `gorm:"index;not null"`
	Cycle     Cycle           `gorm:"not null"`
	Amount    decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	StartDate types.Date      `gorm:"index"`
	EndDate   types.Date      `gorm:"index"`
}

// Contains reports whether the date is inside the budget window.
func (b Budget) Contains(d types.Date) bool {
	return d.Between(b.StartDate, b.EndDate)
}
