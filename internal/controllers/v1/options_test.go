package v1_test

import (
	"net/http"
	"testing"

	"github.com/spendwise-app/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptions() {
	expense := suite.createTestExpense(suite.T(), map[string]any{})
	category := suite.categoryID("Rent")

	tests := []struct {
		path  string
		allow string
	}{
		{"/v1/categories", "OPTIONS, GET"},
		{"/v1/categories/" + category.String(), "OPTIONS, GET"},
		{"/v1/expenses", "OPTIONS, GET, POST"},
		{"/v1/expenses/export", "OPTIONS, GET"},
		{"/v1/expenses/" + expense.Data.ID.String(), "OPTIONS, GET, PATCH, DELETE"},
		{"/v1/budgets", "OPTIONS, GET, POST"},
		{"/v1/budgets/current", "OPTIONS, GET"},
		{"/v1/dashboard", "OPTIONS, GET"},
		{"/v1/locale", "OPTIONS, GET, PUT"},
		{"/v1/translations", "OPTIONS, GET"},
		{"/v1/profile", "OPTIONS, GET, PATCH"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.path, func(t *testing.T) {
			r := suite.request(t, http.MethodOptions, "http://example.com"+tt.path, nil)
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestOptionsDetailFails() {
	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"Category not a UUID", "/v1/categories/nope", http.StatusBadRequest},
		{"Category missing", "/v1/categories/4e2a8b6e-61ff-4bd7-a8cc-1d5b6a8a2a2f", http.StatusNotFound},
		{"Expense not a UUID", "/v1/expenses/nope", http.StatusBadRequest},
		{"Expense missing", "/v1/expenses/4e2a8b6e-61ff-4bd7-a8cc-1d5b6a8a2a2f", http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodOptions, "http://example.com"+tt.path, nil)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

// OPTIONS requests are answered without a user so that browsers can
// send preflight requests.
func (suite *TestSuiteStandard) TestOptionsWithoutUser() {
	r := test.Request(suite.T(), suite.router, http.MethodOptions, "http://example.com/v1/expenses", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}
