package v1

import (
	"bytes"
	"fmt"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spendwise-app/backend/internal/categories"
	"github.com/spendwise-app/backend/internal/dashboard"
	"github.com/spendwise-app/backend/internal/export"
	"github.com/spendwise-app/backend/internal/httputil"
)

// exportLimit is the maximum number of expenses in an export.
const exportLimit = math.MaxInt32

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func (co Controller) RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsExpenseList)
		r.GET("", co.GetExpenses)
		r.POST("", co.CreateExpense)
	}

	// Export
	{
		r.OPTIONS("/export", OptionsExpenseExport)
		r.GET("/export", co.ExportExpenses)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", co.OptionsExpenseDetail)
		r.GET("/:id", co.GetExpense)
		r.PATCH("/:id", co.UpdateExpense)
		r.DELETE("/:id", co.DeleteExpense)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/v1/expenses [options]
func OptionsExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/v1/expenses/export [options]
func OptionsExpenseExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		503	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [options]
func (co Controller) OptionsExpenseDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = co.Ledger.Get(ctx(c), userID(c), uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create expense
// @Description	Records a new expense
// @Tags			Expenses
// @Produce		json
// @Success		201		{object}	ExpenseResponse
// @Failure		400		{object}	ExpenseResponse
// @Failure		503		{object}	ExpenseResponse
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/v1/expenses [post]
func (co Controller) CreateExpense(c *gin.Context) {
	var editable ExpenseEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	expense, err := co.Ledger.Create(ctx(c), userID(c), editable.input())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	data := newExpense(c, expense, co.categoryName(c, expense.CategoryID))
	c.JSON(http.StatusCreated, ExpenseResponse{Data: &data})
}

// @Summary		Get expenses
// @Description	Returns a list of expenses, newest first
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseListResponse
// @Failure		400	{object}	ExpenseListResponse
// @Failure		503	{object}	ExpenseListResponse
// @Router			/v1/expenses [get]
// @Param			from				query	string	false	"Only expenses on or after this day, formatted as YYYY-MM-DD"
// @Param			until				query	string	false	"Only expenses on or before this day, formatted as YYYY-MM-DD"
// @Param			category			query	string	false	"Filter by category ID"
// @Param			paymentMode			query	string	false	"Filter by payment mode"
// @Param			amountMoreOrEqual	query	string	false	"Amount more than or equal to"
// @Param			amountLessOrEqual	query	string	false	"Amount less than or equal to"
// @Param			note				query	string	false	"Glob pattern for the notes, e.g. *milk*"
// @Param			offset				query	uint	false	"The offset of the first expense returned. Defaults to 0."
// @Param			limit				query	uint	false	"Maximum number of expenses to return. Defaults to 50."
func (co Controller) GetExpenses(c *gin.Context) {
	var query ExpenseQueryFilter
	err := httputil.BindQuery(c, &query)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseListResponse{
			Error: &s,
		})
		return
	}

	filter, err := query.filter(httputil.GetURLFields(c.Request.URL, query))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseListResponse{
			Error: &s,
		})
		return
	}

	page, err := co.Ledger.List(ctx(c), userID(c), filter)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseListResponse{
			Error: &s,
		})
		return
	}

	names := categories.Names(co.Categories.List(ctx(c)), locale(c))

	// When there are no resources, we want an empty list, not null
	data := make([]Expense, 0, len(page.Expenses))
	for _, expense := range page.Expenses {
		data = append(data, newExpense(c, expense, nameOrDash(names, expense.CategoryID)))
	}

	c.JSON(http.StatusOK, ExpenseListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Offset: page.Offset,
			Limit:  page.Limit,
			Total:  page.Total,
		},
	})
}

// @Summary		Get expense
// @Description	Returns a specific expense
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseResponse
// @Failure		400	{object}	ExpenseResponse
// @Failure		404	{object}	ExpenseResponse
// @Failure		503	{object}	ExpenseResponse
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/expenses/{id} [get]
func (co Controller) GetExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	expense, err := co.Ledger.Get(ctx(c), userID(c), uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	data := newExpense(c, expense, co.categoryName(c, expense.CategoryID))
	c.JSON(http.StatusOK, ExpenseResponse{Data: &data})
}

// @Summary		Update expense
// @Description	Updates an expense. Only values to be updated need to be specified.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		200		{object}	ExpenseResponse
// @Failure		400		{object}	ExpenseResponse
// @Failure		404		{object}	ExpenseResponse
// @Failure		503		{object}	ExpenseResponse
// @Param			id		path		URIID			true	"ID formatted as string"
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/v1/expenses/{id} [patch]
func (co Controller) UpdateExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ExpenseEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	var editable ExpenseEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	expense, err := co.Ledger.Update(ctx(c), userID(c), uri.ID.UUID, editable.patch(updateFields))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	data := newExpense(c, expense, co.categoryName(c, expense.CategoryID))
	c.JSON(http.StatusOK, ExpenseResponse{Data: &data})
}

// @Summary		Delete expense
// @Description	Deletes an expense
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		503	{object}	httpError
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/expenses/{id} [delete]
func (co Controller) DeleteExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = co.Ledger.Delete(ctx(c), userID(c), uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Export expenses
// @Description	Exports all expenses matching the filter as a spreadsheet.
// @Description	Column headers, category names and payment modes are in the locale of the request.
// @Tags			Expenses
// @Produce		text/csv
// @Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success		200
// @Failure		400			{object}	httpError
// @Failure		503			{object}	httpError
// @Router			/v1/expenses/export [get]
// @Param			format		query	string	false	"Format of the file, 'csv' (default) or 'xlsx'"
// @Param			from		query	string	false	"Only expenses on or after this day, formatted as YYYY-MM-DD"
// @Param			until		query	string	false	"Only expenses on or before this day, formatted as YYYY-MM-DD"
// @Param			category	query	string	false	"Filter by category ID"
// @Param			paymentMode	query	string	false	"Filter by payment mode"
func (co Controller) ExportExpenses(c *gin.Context) {
	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var query ExpenseQueryFilter
	err = httputil.BindQuery(c, &query)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	filter, err := query.filter(httputil.GetURLFields(c.Request.URL, query))
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	// Exports always contain all matching expenses
	filter.Offset = 0
	filter.Limit = exportLimit

	page, err := co.Ledger.List(ctx(c), userID(c), filter)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	l := locale(c)
	rows := export.Rows(page.Expenses, categories.Names(co.Categories.List(ctx(c)), l), l)

	var buf bytes.Buffer
	err = export.Write(&buf, format, l, rows)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", format.Filename()))
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}

// categoryName returns the name of the category in the locale of the request.
func (co Controller) categoryName(c *gin.Context, id uuid.UUID) string {
	category, err := co.Categories.Get(ctx(c), id)
	if err != nil {
		return dashboard.NoCategory
	}

	return category.Name(locale(c))
}

func nameOrDash(names map[uuid.UUID]string, id uuid.UUID) string {
	name, ok := names[id]
	if !ok {
		return dashboard.NoCategory
	}

	return name
}
