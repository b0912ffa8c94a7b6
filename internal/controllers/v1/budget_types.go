package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/spendwise-app/backend/internal/budget"
	"github.com/spendwise-app/backend/internal/i18n"
	"github.com/spendwise-app/backend/internal/models"
	"github.com/spendwise-app/backend/internal/types"
)

type BudgetEditable struct {
	Amount *decimal.Decimal `json:"amount" binding:"required" example:"15000" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount that can be spent in the window
	Cycle  models.Cycle     `json:"cycle" binding:"required,oneof=monthly weekly" example:"monthly" enums:"monthly,weekly"`                        // Length of the window
}

type BudgetLinks struct {
	Current  string `json:"current" example:"https://example.com/api/v1/budgets/current"`                            // Status of the active budget
	Expenses string `json:"expenses" example:"https://example.com/api/v1/expenses?from=2024-03-01&until=2024-03-31"` // Expenses in the window of the budget
}

// Budget is the API v1 representation of a Budget.
type Budget struct {
	models.DefaultModel
	Amount    decimal.Decimal `json:"amount" example:"15000"`                                            // The amount that can be spent in the window
	Cycle     models.Cycle    `json:"cycle" example:"monthly" enums:"monthly,weekly"`                    // Length of the window
	StartDate types.Date      `json:"startDate" swaggertype:"string" format:"date" example:"2024-03-01"` // First day of the window
	EndDate   types.Date      `json:"endDate" swaggertype:"string" format:"date" example:"2024-03-31"`   // Last day of the window
	Links     BudgetLinks     `json:"links"`
}

func newBudget(c *gin.Context, model models.Budget) Budget {
	url := baseURL(c)

	return Budget{
		DefaultModel: model.DefaultModel,
		Amount:       model.Amount,
		Cycle:        model.Cycle,
		StartDate:    model.StartDate,
		EndDate:      model.EndDate,
		Links: BudgetLinks{
			Current:  fmt.Sprintf("%s/v1/budgets/current", url),
			Expenses: fmt.Sprintf("%s/v1/expenses?from=%s&until=%s", url, model.StartDate, model.EndDate),
		},
	}
}

// BudgetStatus is the state of a budget at the time of the request.
type BudgetStatus struct {
	Budget      Budget              `json:"budget"`                                                            // The budget
	Spent       decimal.Decimal     `json:"spent" example:"8250.5"`                                            // Sum of all expenses in the window
	Remaining   decimal.Decimal     `json:"remaining" example:"6749.5"`                                        // Amount minus spent, negative when overspent
	PercentUsed decimal.NullDecimal `json:"percentUsed" swaggertype:"string" example:"55"`                     // Percentage of the amount spent, null for budgets of zero
	Level       budget.Level        `json:"level" example:"caution" enums:"onTrack,caution,critical,exceeded"` // Warning level
	Message     string              `json:"message" example:"50% of budget used"`                              // Warning message in the locale of the request
}

func newBudgetStatus(c *gin.Context, s budget.Status) BudgetStatus {
	return BudgetStatus{
		Budget:      newBudget(c, s.Budget),
		Spent:       s.Spent,
		Remaining:   s.Remaining,
		PercentUsed: s.PercentUsed,
		Level:       s.Level,
		Message:     i18n.T(locale(c), s.Level.Key()),
	}
}

type BudgetListResponse struct {
	Data  []Budget `json:"data"`                                                         // List of budgets
	Error *string  `json:"error" example:"the database is unavailable, try again later"` // The error, if any occurred
}

type BudgetStatusResponse struct {
	Data  *BudgetStatus `json:"data"`                                              // Status of the budget
	Error *string       `json:"error" example:"there already is an active budget"` // The error, if any occurred
}
