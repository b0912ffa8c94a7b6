package v1_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spendwise-app/backend/internal/budget"
	v1 "github.com/spendwise-app/backend/internal/controllers/v1"
	"github.com/spendwise-app/backend/internal/models"
	"github.com/spendwise-app/backend/internal/types"
	"github.com/spendwise-app/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) createTestBudget(t *testing.T, amount string, cycle models.Cycle, expectedStatus ...int) v1.BudgetStatusResponse {
	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := suite.request(t, http.MethodPost, "http://example.com/v1/budgets", map[string]any{"amount": amount, "cycle": cycle})
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.BudgetStatusResponse
	test.DecodeResponse(t, &r, &response)

	return response
}

func (suite *TestSuiteStandard) TestBudgetCreate() {
	b := suite.createTestBudget(suite.T(), "15000", models.CycleMonthly)

	suite.Require().NotNil(b.Data)
	suite.Assert().Equal(types.NewDate(2024, 3, 1), b.Data.Budget.StartDate)
	suite.Assert().Equal(types.NewDate(2024, 3, 31), b.Data.Budget.EndDate)
	suite.Assert().True(decimal.NewFromInt(15000).Equal(b.Data.Budget.Amount))
	suite.Assert().True(b.Data.Spent.IsZero())
	suite.Assert().True(decimal.NewFromInt(15000).Equal(b.Data.Remaining))
	suite.Assert().Equal(budget.LevelOnTrack, b.Data.Level)
	suite.Assert().Equal("Budget on track", b.Data.Message)
	suite.Assert().Equal("http://example.com/v1/budgets/current", b.Data.Budget.Links.Current)
}

func (suite *TestSuiteStandard) TestBudgetCreateFails() {
	tests := []struct {
		name    string
		body    any
		status  int
		message string
	}{
		{"Empty body", "", http.StatusBadRequest, "must not be empty"},
		{"Amount missing", map[string]any{"cycle": "monthly"}, http.StatusBadRequest, "Amount is required"},
		{"Cycle missing", map[string]any{"amount": "100"}, http.StatusBadRequest, "Cycle is required"},
		{"Invalid cycle", map[string]any{"amount": "100", "cycle": "daily"}, http.StatusBadRequest, "Cycle must be one of 'monthly', 'weekly'"},
		{"Negative amount", map[string]any{"amount": "-100", "cycle": "weekly"}, http.StatusBadRequest, models.ErrBudgetAmountNegative.Error()},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodPost, "http://example.com/v1/budgets", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.BudgetStatusResponse
			test.DecodeResponse(t, &r, &response)
			require.NotNil(t, response.Error)
			assert.Contains(t, *response.Error, tt.message)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetActiveConflict() {
	suite.createTestBudget(suite.T(), "15000", models.CycleMonthly)

	b := suite.createTestBudget(suite.T(), "5000", models.CycleWeekly, http.StatusConflict)
	suite.Require().NotNil(b.Error)
	suite.Assert().Equal(budget.ErrBudgetActive.Error(), *b.Error)
}

func (suite *TestSuiteStandard) TestBudgetCurrent() {
	tests := []struct {
		name    string
		amount  string
		spent   []string
		level   budget.Level
		percent string
		message string
	}{
		{"On track", "10000", []string{"1000", "3999.99"}, budget.LevelOnTrack, "50", "బడ్జెట్ సరిగ్గా ఉంది"},
		{"Caution", "10000", []string{"5000"}, budget.LevelCaution, "50", "బడ్జెట్‌లో 50% ఉపయోగించారు"},
		{"Critical", "10000", []string{"7000", "1000"}, budget.LevelCritical, "80", "బడ్జెట్‌లో 80% ఉపయోగించారు"},
		{"Exceeded", "10000", []string{"10000"}, budget.LevelExceeded, "100", "బడ్జెట్ మించిపోయింది!"},
		{"Zero budget", "0", nil, budget.LevelExceeded, "", "బడ్జెట్ మించిపోయింది!"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			// Every case needs a fresh database
			suite.TearDownTest()
			suite.SetupTest()

			suite.createTestBudget(t, tt.amount, models.CycleMonthly)
			for _, amount := range tt.spent {
				suite.createTestExpense(t, map[string]any{"amount": amount, "date": "2024-03-14"})
			}

			// Expenses outside of the window are not counted
			suite.createTestExpense(t, map[string]any{"amount": "99999", "date": "2024-02-29"})

			r := suite.request(t, http.MethodGet, "http://example.com/v1/budgets/current?locale=te", nil)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.BudgetStatusResponse
			test.DecodeResponse(t, &r, &response)
			require.NotNil(t, response.Data)

			assert.Equal(t, tt.level, response.Data.Level)
			assert.Equal(t, tt.message, response.Data.Message)

			if tt.percent == "" {
				assert.False(t, response.Data.PercentUsed.Valid)
			} else {
				assert.True(t, decimal.RequireFromString(tt.percent).Equal(response.Data.PercentUsed.Decimal), "Percent is %s", response.Data.PercentUsed.Decimal)
			}

			spent := decimal.Zero
			for _, amount := range tt.spent {
				spent = spent.Add(decimal.RequireFromString(amount))
			}
			assert.True(t, spent.Equal(response.Data.Spent))
			assert.True(t, decimal.RequireFromString(tt.amount).Sub(spent).Equal(response.Data.Remaining))
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetCurrentNone() {
	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/budgets/current?locale=hi", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	var response v1.BudgetStatusResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Error)
	suite.Assert().Equal("कोई सक्रिय बजट नहीं", *response.Error)
}

func (suite *TestSuiteStandard) TestBudgetWeeklyExpires() {
	suite.now = time.Date(2024, time.March, 3, 9, 0, 0, 0, time.UTC)

	b := suite.createTestBudget(suite.T(), "2000", models.CycleWeekly)
	suite.Assert().Equal(types.NewDate(2024, 3, 7), b.Data.Budget.EndDate)

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/budgets/current", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	suite.now = time.Date(2024, time.March, 8, 0, 0, 0, 0, time.UTC)
	r = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/budgets/current", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	// A new budget can be established after the window ended
	suite.createTestBudget(suite.T(), "2000", models.CycleMonthly)
}

func (suite *TestSuiteStandard) TestBudgetList() {
	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/budgets", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().NotNil(response.Data)
	suite.Assert().Len(response.Data, 0)

	suite.createTestBudget(suite.T(), "15000", models.CycleMonthly)
	suite.now = time.Date(2024, time.April, 2, 0, 0, 0, 0, time.UTC)
	suite.createTestBudget(suite.T(), "12000", models.CycleMonthly)

	r = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/budgets", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal(types.NewDate(2024, 4, 1), response.Data[0].StartDate)
	suite.Assert().Equal(types.NewDate(2024, 3, 1), response.Data[1].StartDate)
	suite.Assert().Equal("http://example.com/v1/expenses?from=2024-04-01&until=2024-04-30", response.Data[0].Links.Expenses)
}

func (suite *TestSuiteStandard) TestBudgetsDBClosed() {
	suite.CloseDB()

	for _, path := range []string{"http://example.com/v1/budgets", "http://example.com/v1/budgets/current"} {
		r := suite.request(suite.T(), http.MethodGet, path, nil)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusServiceUnavailable)
	}

	suite.createTestBudget(suite.T(), "100", models.CycleMonthly, http.StatusServiceUnavailable)
}
