package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spendwise-app/backend/internal/categories"
	"github.com/spendwise-app/backend/internal/httputil"
	"github.com/spendwise-app/backend/internal/i18n"
	"github.com/spendwise-app/backend/internal/types"
)

// RegisterDashboardRoutes registers the routes for the dashboard with
// the RouterGroup that is passed.
func (co Controller) RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsDashboard)
	r.GET("", co.GetDashboard)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Dashboard
// @Success		204
// @Router			/v1/dashboard [options]
func OptionsDashboard(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get dashboard
// @Description	Summarizes the spending in a period. Without parameters, the current month is used.
// @Tags			Dashboard
// @Produce		json
// @Success		200		{object}	DashboardResponse
// @Failure		400		{object}	DashboardResponse
// @Failure		503		{object}	DashboardResponse
// @Router			/v1/dashboard [get]
// @Param			from	query	string	false	"First day of the period, formatted as YYYY-MM-DD"
// @Param			until	query	string	false	"Last day of the period, formatted as YYYY-MM-DD"
func (co Controller) GetDashboard(c *gin.Context) {
	var query DashboardQuery
	err := httputil.BindQuery(c, &query)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &s,
		})
		return
	}

	l := locale(c)
	from, until := query.period(types.Today(co.now()))

	summary, err := co.Dashboard.Summarize(ctx(c), userID(c), from, until, l)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &s,
		})
		return
	}

	breakdown := make([]CategoryTotal, 0, len(summary.Breakdown))
	for _, t := range summary.Breakdown {
		breakdown = append(breakdown, CategoryTotal{
			CategoryID:      t.CategoryID,
			Name:            t.Name,
			Icon:            t.Icon,
			Amount:          t.Amount,
			AmountFormatted: i18n.FormatAmount(l, t.Amount),
			Percent:         t.Percent,
		})
	}

	names := categories.Names(co.Categories.List(ctx(c)), l)
	recent := make([]Expense, 0, len(summary.RecentExpenses))
	for _, e := range summary.RecentExpenses {
		recent = append(recent, newExpense(c, e, nameOrDash(names, e.CategoryID)))
	}

	c.JSON(http.StatusOK, DashboardResponse{
		Data: &Dashboard{
			From:                     summary.From,
			Until:                    summary.Until,
			TotalSpent:               summary.TotalSpent,
			TotalSpentFormatted:      i18n.FormatAmount(l, summary.TotalSpent),
			RemainingBudget:          summary.RemainingBudget,
			RemainingBudgetFormatted: i18n.FormatAmount(l, summary.RemainingBudget),
			TopCategory:              summary.TopCategory,
			ExpenseCount:             summary.ExpenseCount,
			Breakdown:                breakdown,
			RecentExpenses:           recent,
		},
	})
}
