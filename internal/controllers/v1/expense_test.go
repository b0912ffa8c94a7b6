package v1_test

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	v1 "github.com/spendwise-app/backend/internal/controllers/v1"
	"github.com/spendwise-app/backend/internal/models"
	"github.com/spendwise-app/backend/internal/router"
	"github.com/spendwise-app/backend/internal/types"
	"github.com/spendwise-app/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func (suite *TestSuiteStandard) TestExpenseCreate() {
	groceries := suite.categoryID("Food & Groceries")

	e := suite.createTestExpense(suite.T(), map[string]any{
		"amount":      "250.75",
		"categoryId":  groceries.String(),
		"date":        "2024-03-12",
		"paymentMode": "upi",
		"notes":       " Vegetables ",
		"location":    "Guntur",
	})

	suite.Require().NotNil(e.Data)
	suite.Assert().True(decimal.RequireFromString("250.75").Equal(e.Data.Amount))
	suite.Assert().Equal(groceries, e.Data.CategoryID)
	suite.Assert().Equal(types.NewDate(2024, 3, 12), e.Data.Date)
	suite.Assert().Equal(models.PaymentModeUPI, e.Data.PaymentMode)
	suite.Assert().Equal("Vegetables", e.Data.Notes)
	suite.Assert().Equal("Guntur", e.Data.Location)
	suite.Assert().Equal("Food & Groceries", e.Data.CategoryName)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/expenses/%s", e.Data.ID), e.Data.Links.Self)

	// Read it back
	r := suite.request(suite.T(), http.MethodGet, e.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(e.Data.ID, response.Data.ID)
	suite.Assert().True(e.Data.Amount.Equal(response.Data.Amount))
}

func (suite *TestSuiteStandard) TestExpenseCreateFails() {
	tests := []struct {
		name    string
		expense any
		status  int
		message string
	}{
		{"Empty body", "", http.StatusBadRequest, "request body must not be empty"},
		{"Broken JSON", `{"amount": 12`, http.StatusBadRequest, "invalid or un-parseable data"},
		{"Zero amount", map[string]any{"amount": "0"}, http.StatusBadRequest, "amount"},
		{"Negative amount", map[string]any{"amount": "-5"}, http.StatusBadRequest, "amount"},
		{"Category missing", map[string]any{"categoryId": uuid.Nil.String()}, http.StatusBadRequest, "category"},
		{"Category does not exist", map[string]any{"categoryId": uuid.NewString()}, http.StatusBadRequest, "category"},
		{"Date missing", map[string]any{"date": nil}, http.StatusBadRequest, "date"},
		{"Invalid date", map[string]any{"date": "15.03.2024"}, http.StatusBadRequest, ""},
		{"Invalid payment mode", map[string]any{"paymentMode": "cheque"}, http.StatusBadRequest, "payment mode"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			body := tt.expense
			if m, ok := tt.expense.(map[string]any); ok {
				defaults := map[string]any{
					"amount":      "100",
					"categoryId":  suite.categoryID("Other").String(),
					"date":        "2024-03-10",
					"paymentMode": "cash",
				}
				for key, value := range m {
					defaults[key] = value
				}
				body = defaults
			}

			r := suite.request(t, http.MethodPost, "http://example.com/v1/expenses", body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.ExpenseResponse
			test.DecodeResponse(t, &r, &response)
			require.NotNil(t, response.Error)
			assert.Contains(t, *response.Error, tt.message)
		})
	}
}

func (suite *TestSuiteStandard) TestExpenseOtherUser() {
	e := suite.createTestExpense(suite.T(), map[string]any{})
	other := map[string]string{router.HeaderUserID: "user-2"}

	for _, method := range []string{http.MethodGet, http.MethodDelete, http.MethodOptions} {
		r := suite.request(suite.T(), method, e.Data.Links.Self, nil, other)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	}

	r := suite.request(suite.T(), http.MethodPatch, e.Data.Links.Self, map[string]any{"amount": "1"}, other)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	// The expense is unchanged for its owner
	r = suite.request(suite.T(), http.MethodGet, e.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(decimal.NewFromInt(100).Equal(response.Data.Amount))
}

func (suite *TestSuiteStandard) TestExpenseUpdate() {
	e := suite.createTestExpense(suite.T(), map[string]any{"notes": "Bus ticket", "location": "Vijayawada"})

	r := suite.request(suite.T(), http.MethodPatch, e.Data.Links.Self, map[string]any{
		"amount":     "42.5",
		"categoryId": suite.categoryID("Transport").String(),
		"location":   "",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(decimal.RequireFromString("42.5").Equal(response.Data.Amount))
	suite.Assert().Equal("Transport", response.Data.CategoryName)
	suite.Assert().Equal("", response.Data.Location, "Location was set to an empty string and must be updated")
	suite.Assert().Equal("Bus ticket", response.Data.Notes, "Notes were not in the body and must not be changed")
	suite.Assert().Equal(models.PaymentModeCash, response.Data.PaymentMode)
}

func (suite *TestSuiteStandard) TestExpenseUpdateFails() {
	e := suite.createTestExpense(suite.T(), map[string]any{})

	tests := []struct {
		name   string
		url    string
		body   any
		status int
	}{
		{"Invalid ID", "http://example.com/v1/expenses/nope", map[string]any{"amount": "5"}, http.StatusBadRequest},
		{"Not existing", "http://example.com/v1/expenses/" + uuid.NewString(), map[string]any{"amount": "5"}, http.StatusNotFound},
		{"Empty body", e.Data.Links.Self, "", http.StatusBadRequest},
		{"Broken JSON", e.Data.Links.Self, `{"amount": `, http.StatusBadRequest},
		{"Zero amount", e.Data.Links.Self, map[string]any{"amount": "0"}, http.StatusBadRequest},
		{"Unknown category", e.Data.Links.Self, map[string]any{"categoryId": uuid.NewString()}, http.StatusBadRequest},
		{"Invalid payment mode", e.Data.Links.Self, map[string]any{"paymentMode": "barter"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodPatch, tt.url, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestExpenseDelete() {
	e := suite.createTestExpense(suite.T(), map[string]any{})

	r := suite.request(suite.T(), http.MethodDelete, e.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(suite.T(), http.MethodDelete, e.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = suite.request(suite.T(), http.MethodGet, e.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestExpenseList() {
	groceries := suite.categoryID("Food & Groceries")
	transport := suite.categoryID("Transport")

	suite.createTestExpense(suite.T(), map[string]any{"amount": "120", "categoryId": groceries.String(), "date": "2024-03-01", "notes": "Milk and bread"})
	suite.createTestExpense(suite.T(), map[string]any{"amount": "35.5", "categoryId": transport.String(), "date": "2024-03-05", "paymentMode": "upi"})
	suite.createTestExpense(suite.T(), map[string]any{"amount": "800", "categoryId": groceries.String(), "date": "2024-03-09", "notes": "Rice bag"})
	suite.createTestExpense(suite.T(), map[string]any{"amount": "60", "categoryId": transport.String(), "date": "2024-02-27"})

	// Expenses of other users are never listed
	suite.request(suite.T(), http.MethodPost, "http://example.com/v1/expenses", map[string]any{
		"amount": "5", "categoryId": groceries.String(), "date": "2024-03-02", "paymentMode": "cash",
	}, map[string]string{router.HeaderUserID: "user-2"})

	tests := []struct {
		name    string
		query   string
		amounts []string
		total   int
		status  int
	}{
		{"All, newest first", "", []string{"800", "35.5", "120", "60"}, 4, http.StatusOK},
		{"From", "from=2024-03-01", []string{"800", "35.5", "120"}, 3, http.StatusOK},
		{"Until", "until=2024-03-01", []string{"120", "60"}, 2, http.StatusOK},
		{"Category", fmt.Sprintf("category=%s", transport), []string{"35.5", "60"}, 2, http.StatusOK},
		{"Payment mode", "paymentMode=upi", []string{"35.5"}, 1, http.StatusOK},
		{"Amount range", "amountMoreOrEqual=60&amountLessOrEqual=120", []string{"120", "60"}, 2, http.StatusOK},
		{"Note glob", "note=*RICE*", []string{"800"}, 1, http.StatusOK},
		{"Limit", "limit=2", []string{"800", "35.5"}, 4, http.StatusOK},
		{"Offset and limit", "offset=1&limit=2", []string{"35.5", "120"}, 4, http.StatusOK},
		{"Offset past the end", "offset=10", []string{}, 4, http.StatusOK},
		{"Limit at the end of the range", "offset=1&limit=18446744073709551615", []string{"35.5", "120", "60"}, 4, http.StatusOK},
		{"Offset at the end of the range", "offset=18446744073709551615", []string{}, 4, http.StatusOK},
		{"Invalid date", "from=yesterday", nil, 0, http.StatusBadRequest},
		{"Invalid category", "category=groceries", nil, 0, http.StatusBadRequest},
		{"Invalid payment mode", "paymentMode=gold", nil, 0, http.StatusBadRequest},
		{"Invalid amount", "amountMoreOrEqual=lots", nil, 0, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodGet, "http://example.com/v1/expenses?"+tt.query, nil)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.ExpenseListResponse
			test.DecodeResponse(t, &r, &response)

			if tt.status != http.StatusOK {
				assert.NotNil(t, response.Error)
				return
			}

			amounts := make([]string, 0, len(response.Data))
			for _, e := range response.Data {
				amounts = append(amounts, e.Amount.String())
			}
			assert.Equal(t, tt.amounts, amounts)
			assert.Equal(t, tt.total, response.Pagination.Total)
			assert.Equal(t, len(tt.amounts), response.Pagination.Count)
		})
	}
}

func (suite *TestSuiteStandard) TestExpenseListLocalized() {
	suite.createTestExpense(suite.T(), map[string]any{"categoryId": suite.categoryID("Rent").String()})

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/expenses?locale=te", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal("అద్దె", response.Data[0].CategoryName)
}

func (suite *TestSuiteStandard) TestExpensesDBClosed() {
	e := suite.createTestExpense(suite.T(), map[string]any{})
	suite.CloseDB()

	tests := []struct {
		name   string
		method string
		url    string
		body   any
	}{
		{"List", http.MethodGet, "http://example.com/v1/expenses", nil},
		{"Get", http.MethodGet, e.Data.Links.Self, nil},
		{"Create", http.MethodPost, "http://example.com/v1/expenses", map[string]any{"amount": "1", "categoryId": e.Data.CategoryID.String(), "date": "2024-03-10", "paymentMode": "cash"}},
		{"Update", http.MethodPatch, e.Data.Links.Self, map[string]any{"amount": "1"}},
		{"Delete", http.MethodDelete, e.Data.Links.Self, nil},
		{"Export", http.MethodGet, "http://example.com/v1/expenses/export", nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, tt.method, tt.url, tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusServiceUnavailable)
			assert.Contains(t, r.Body.String(), models.ErrStoreUnavailable.Error())
		})
	}
}

func (suite *TestSuiteStandard) TestExpenseExportCSV() {
	suite.createTestExpense(suite.T(), map[string]any{"amount": "120", "categoryId": suite.categoryID("Health").String(), "date": "2024-03-01", "notes": "Medicine"})
	suite.createTestExpense(suite.T(), map[string]any{"amount": "35.5", "categoryId": suite.categoryID("Transport").String(), "date": "2024-03-05", "paymentMode": "upi"})

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/expenses/export?locale=hi&from=2024-03-02", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().Equal("text/csv; charset=utf-8", r.Header().Get("Content-Type"))
	suite.Assert().Contains(r.Header().Get("Content-Disposition"), "expenses.csv")

	body := strings.TrimPrefix(r.Body.String(), "\ufeff")
	records, err := csv.NewReader(strings.NewReader(body)).ReadAll()
	suite.Require().Nil(err)
	suite.Require().Len(records, 2, "Header and one expense expected")
	suite.Assert().Equal("2024-03-05", records[1][0])
	suite.Assert().Equal("परिवहन", records[1][1])
	suite.Assert().Equal("35.50", records[1][2])
	suite.Assert().Equal("UPI", records[1][3])
}

func (suite *TestSuiteStandard) TestExpenseExportXLSX() {
	suite.createTestExpense(suite.T(), map[string]any{"amount": "99.99", "notes": "Seeds"})

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/expenses/export?format=xlsx", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().Contains(r.Header().Get("Content-Disposition"), "expenses.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(r.Body.Bytes()))
	suite.Require().Nil(err)
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	suite.Require().Nil(err)
	suite.Require().Len(rows, 2)
	suite.Assert().Equal("Other", rows[1][1])
	suite.Assert().Equal("Seeds", rows[1][4])
}

func (suite *TestSuiteStandard) TestExpenseExportInvalidFormat() {
	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/expenses/export?format=pdf", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
