package ledger

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spendwise-app/backend/internal/models"
	"github.com/spendwise-app/backend/internal/types"
)

// ExpenseInput holds the fields a user sets when recording an expense.
type ExpenseInput struct {
	Amount      decimal.Decimal
	CategoryID  uuid.UUID
	Date        types.Date
	PaymentMode models.PaymentMode
	Notes       string
	Location    string
}

// ExpensePatch is a partial update. Nil fields are left unchanged.
type ExpensePatch struct {
	Amount      *decimal.Decimal
	CategoryID  *uuid.UUID
	Date        *types.Date
	PaymentMode *models.PaymentMode
	Notes       *string
	Location    *string
}

// Filter restricts the expenses returned by List. Zero values do not filter.
type Filter struct {
	From        types.Date
	Until       types.Date
	CategoryID  uuid.UUID
	PaymentMode models.PaymentMode
	MinAmount   decimal.NullDecimal
	MaxAmount   decimal.NullDecimal

	// Note is a glob pattern matched case-insensitively against the notes
	Note string

	Offset uint
	Limit  uint
}

// DefaultLimit is the page size when the filter does not set one.
const DefaultLimit uint = 50

// Page is one page of a filtered expense list.
type Page struct {
	Expenses []models.Expense
	Total    int
	Offset   uint
	Limit    uint
}
