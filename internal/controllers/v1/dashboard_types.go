package v1

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spendwise-app/backend/internal/types"
)

type DashboardQuery struct {
	From  types.Date `form:"from"`  // First day of the period
	Until types.Date `form:"until"` // Last day of the period
}

// period returns the inclusive period to summarize. Missing bounds are
// filled with the month of the other bound, or the current month.
func (q DashboardQuery) period(today types.Date) (types.Date, types.Date) {
	from, until := q.From, q.Until

	switch {
	case from.IsZero() && until.IsZero():
		return today.FirstOfMonth(), today.LastOfMonth()
	case from.IsZero():
		return until.FirstOfMonth(), until
	case until.IsZero():
		return from, from.LastOfMonth()
	}

	return from, until
}

type CategoryTotal struct {
	CategoryID      uuid.UUID       `json:"categoryId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // ID of the category
	Name            string          `json:"name" example:"Groceries"`                                  // Name in the locale of the request
	Icon            string          `json:"icon" example:"🛒"`                                          // Icon of the category
	Amount          decimal.Decimal `json:"amount" example:"4200"`                                     // Sum of the expenses in the category
	AmountFormatted string          `json:"amountFormatted" example:"4,200.00"`                        // Amount formatted for the locale
	Percent         decimal.Decimal `json:"percent" example:"38.5"`                                    // Share of the total, in percent
}

type Dashboard struct {
	From                     types.Date      `json:"from" swaggertype:"string" format:"date" example:"2024-03-01"`  // First day of the period
	Until                    types.Date      `json:"until" swaggertype:"string" format:"date" example:"2024-03-31"` // Last day of the period
	TotalSpent               decimal.Decimal `json:"totalSpent" example:"10900"`                                    // Sum of all expenses in the period
	TotalSpentFormatted      string          `json:"totalSpentFormatted" example:"10,900.00"`                       // TotalSpent formatted for the locale
	RemainingBudget          decimal.Decimal `json:"remainingBudget" example:"4100"`                                // Remaining amount of the active budget, 0 without one
	RemainingBudgetFormatted string          `json:"remainingBudgetFormatted" example:"4,100.00"`                   // RemainingBudget formatted for the locale
	TopCategory              string          `json:"topCategory" example:"Groceries"`                               // Category with the highest total, "-" if there is none
	ExpenseCount             int             `json:"expenseCount" example:"23"`                                     // Number of expenses in the period
	Breakdown                []CategoryTotal `json:"breakdown"`                                                     // Totals per category, the largest first
	RecentExpenses           []Expense       `json:"recentExpenses"`                                                // The newest expenses of the period
}

type DashboardResponse struct {
	Data  *Dashboard `json:"data"`                                                              // Summary of the period
	Error *string    `json:"error" example:"the start of the period must not be after its end"` // The error, if any occurred
}
