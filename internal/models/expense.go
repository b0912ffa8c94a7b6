package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spendwise-app/backend/internal/types"
	"gorm.io/gorm"
)

// PaymentMode is the way an expense was paid.
type PaymentMode string

const (
	PaymentModeCash   PaymentMode = "cash"
	PaymentModeUPI    PaymentMode = "upi"
	PaymentModeCredit PaymentMode = "credit"
	PaymentModeOther  PaymentMode = "other"
)

// Valid reports whether the payment mode is one of the known modes.
func (p PaymentMode) Valid() bool {
	switch p {
	case PaymentModeCash, PaymentModeUPI, PaymentModeCredit, PaymentModeOther:
		return true
	}
	return false
}

// Expense is a single expense of a user.
type Expense struct {
	DefaultModel
	UserID      string          `gorm:"index;not null"`
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	CategoryID  uuid.UUID       `gorm:"index"`
	Category    Category        `json:"-"`
	Date        types.Date      `gorm:"index"`
	PaymentMode PaymentMode
	Notes       string
	Location    string
}

// BeforeSave trims whitespace from string fields.
func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Notes = strings.TrimSpace(e.Notes)
	e.Location = strings.TrimSpace(e.Location)

	return nil
}

// Validate checks all fields that do not need a database lookup.
func (e Expense) Validate() error {
	if e.UserID == "" {
		return ErrUserMissing
	}

	if !e.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if e.CategoryID == uuid.Nil {
		return ErrCategoryMissing
	}

	if e.Date.IsZero() {
		return ErrDateMissing
	}

	if !e.PaymentMode.Valid() {
		return ErrPaymentModeInvalid
	}

	return nil
}
