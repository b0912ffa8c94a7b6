package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spendwise-app/backend/internal/ledger"
	"github.com/spendwise-app/backend/internal/models"
	"github.com/spendwise-app/backend/internal/types"
	ez_uuid "github.com/spendwise-app/backend/internal/uuid"
	"golang.org/x/exp/slices"
)

type ExpenseEditable struct {
	Amount      decimal.Decimal    `json:"amount" example:"250.5" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount spent, must be positive
	CategoryID  uuid.UUID          `json:"categoryId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"`                                           // ID of the category of the expense
	Date        types.Date         `json:"date" swaggertype:"string" format:"date" example:"2024-03-15"`                                        // Day the money was spent
	PaymentMode models.PaymentMode `json:"paymentMode" example:"upi" enums:"cash,upi,credit,other"`                                             // How the expense was paid
	Notes       string             `json:"notes" example:"Vegetables from the market" default:""`                                               // Free text notes
	Location    string             `json:"location" example:"Guntur" default:""`                                                                // Where the money was spent
}

func (editable ExpenseEditable) input() ledger.ExpenseInput {
	return ledger.ExpenseInput{
		Amount:      editable.Amount,
		CategoryID:  editable.CategoryID,
		Date:        editable.Date,
		PaymentMode: editable.PaymentMode,
		Notes:       editable.Notes,
		Location:    editable.Location,
	}
}

// patch returns a patch that only contains the fields that are set
func (editable ExpenseEditable) patch(fields []string) ledger.ExpensePatch {
	var patch ledger.ExpensePatch

	if slices.Contains(fields, "Amount") {
		patch.Amount = &editable.Amount
	}

	if slices.Contains(fields, "CategoryID") {
		patch.CategoryID = &editable.CategoryID
	}

	if slices.Contains(fields, "Date") {
		patch.Date = &editable.Date
	}

	if slices.Contains(fields, "PaymentMode") {
		patch.PaymentMode = &editable.PaymentMode
	}

	if slices.Contains(fields, "Notes") {
		patch.Notes = &editable.Notes
	}

	if slices.Contains(fields, "Location") {
		patch.Location = &editable.Location
	}

	return patch
}

type ExpenseLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/expenses/c9ae7bd6-8e0c-4a9e-a5cb-1c6b4b1c8a05"`       // The expense itself
	Category string `json:"category" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"` // The category of the expense
}

// Expense is the API v1 representation of an Expense.
type Expense struct {
	models.DefaultModel
	ExpenseEditable
	CategoryName string       `json:"categoryName" example:"Groceries"` // Name of the category in the locale of the request
	Links        ExpenseLinks `json:"links"`
}

func newExpense(c *gin.Context, model models.Expense, categoryName string) Expense {
	url := baseURL(c)

	return Expense{
		DefaultModel: model.DefaultModel,
		ExpenseEditable: ExpenseEditable{
			Amount:      model.Amount,
			CategoryID:  model.CategoryID,
			Date:        model.Date,
			PaymentMode: model.PaymentMode,
			Notes:       model.Notes,
			Location:    model.Location,
		},
		CategoryName: categoryName,
		Links: ExpenseLinks{
			Self:     fmt.Sprintf("%s/v1/expenses/%s", url, model.ID),
			Category: fmt.Sprintf("%s/v1/categories/%s", url, model.CategoryID),
		},
	}
}

type ExpenseListResponse struct {
	Data       []Expense   `json:"data"`                                                         // List of expenses
	Error      *string     `json:"error" example:"the database is unavailable, try again later"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                   // Pagination information
}

type ExpenseResponse struct {
	Data  *Expense `json:"data"`                                                            // Data for the expense
	Error *string  `json:"error" example:"resource not found: expense matching your query"` // The error, if any occurred
}

type ExpenseQueryFilter struct {
	From              types.Date         `form:"from"`              // Only expenses on or after this day
	Until             types.Date         `form:"until"`             // Only expenses on or before this day
	CategoryID        ez_uuid.UUID       `form:"category"`          // ID of the category
	PaymentMode       models.PaymentMode `form:"paymentMode"`       // How the expense was paid
	AmountMoreOrEqual decimal.Decimal    `form:"amountMoreOrEqual"` // Amount more than or equal to
	AmountLessOrEqual decimal.Decimal    `form:"amountLessOrEqual"` // Amount less than or equal to
	Note              string             `form:"note"`              // Glob pattern for the notes
	Offset            uint               `form:"offset"`            // The offset of the first expense returned
	Limit             uint               `form:"limit"`             // Maximum number of expenses to return
}

// filter returns the ledger filter for the query. setFields are the fields
// set in the query string.
func (f ExpenseQueryFilter) filter(setFields []string) (ledger.Filter, error) {
	if f.PaymentMode != "" && !f.PaymentMode.Valid() {
		return ledger.Filter{}, models.ErrPaymentModeInvalid
	}

	filter := ledger.Filter{
		From:        f.From,
		Until:       f.Until,
		CategoryID:  f.CategoryID.UUID,
		PaymentMode: f.PaymentMode,
		Note:        f.Note,
		Offset:      f.Offset,
		Limit:       f.Limit,
	}

	if slices.Contains(setFields, "AmountMoreOrEqual") {
		filter.MinAmount = decimal.NewNullDecimal(f.AmountMoreOrEqual)
	}

	if slices.Contains(setFields, "AmountLessOrEqual") {
		filter.MaxAmount = decimal.NewNullDecimal(f.AmountLessOrEqual)
	}

	return filter, nil
}
