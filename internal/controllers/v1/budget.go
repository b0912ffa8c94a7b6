package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spendwise-app/backend/internal/budget"
	"github.com/spendwise-app/backend/internal/httputil"
	"github.com/spendwise-app/backend/internal/i18n"
)

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBudgetList)
		r.GET("", co.GetBudgets)
		r.POST("", co.CreateBudget)
	}

	// Active budget
	{
		r.OPTIONS("/current", OptionsBudgetCurrent)
		r.GET("/current", co.GetCurrentBudget)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets [options]
func OptionsBudgetList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets/current [options]
func OptionsBudgetCurrent(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Create budget
// @Description	Establishes a budget for the current window. The window starts on the first day of the current month.
// @Description	Monthly budgets end on the last day of the month, weekly budgets six days after the start.
// @Tags			Budgets
// @Produce		json
// @Success		201		{object}	BudgetStatusResponse
// @Failure		400		{object}	BudgetStatusResponse
// @Failure		409		{object}	BudgetStatusResponse
// @Failure		503		{object}	BudgetStatusResponse
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budgets [post]
func (co Controller) CreateBudget(c *gin.Context) {
	var editable BudgetEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetStatusResponse{
			Error: &s,
		})
		return
	}

	s, err := co.Budgets.Establish(ctx(c), userID(c), *editable.Amount, editable.Cycle)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetStatusResponse{
			Error: &e,
		})
		return
	}

	data := newBudgetStatus(c, s)
	c.JSON(http.StatusCreated, BudgetStatusResponse{Data: &data})
}

// @Summary		Get budgets
// @Description	Returns all budgets of the user, the newest window first
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetListResponse
// @Failure		503	{object}	BudgetListResponse
// @Router			/v1/budgets [get]
func (co Controller) GetBudgets(c *gin.Context) {
	budgets, err := co.Budgets.List(ctx(c), userID(c))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetListResponse{
			Error: &s,
		})
		return
	}

	// When there are no resources, we want an empty list, not null
	data := make([]Budget, 0, len(budgets))
	for _, b := range budgets {
		data = append(data, newBudget(c, b))
	}

	c.JSON(http.StatusOK, BudgetListResponse{Data: data})
}

// @Summary		Get active budget
// @Description	Returns the status of the budget whose window contains today
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetStatusResponse
// @Failure		404	{object}	BudgetStatusResponse
// @Failure		503	{object}	BudgetStatusResponse
// @Router			/v1/budgets/current [get]
func (co Controller) GetCurrentBudget(c *gin.Context) {
	s, err := co.Budgets.CurrentStatus(ctx(c), userID(c))
	if err != nil {
		e := err.Error()

		// The absence of a budget is shown to users
		if errors.Is(err, budget.ErrNoActiveBudget) {
			e = i18n.T(locale(c), i18n.KeyNoBudget)
		}

		c.JSON(status(err), BudgetStatusResponse{
			Error: &e,
		})
		return
	}

	data := newBudgetStatus(c, s)
	c.JSON(http.StatusOK, BudgetStatusResponse{Data: &data})
}
