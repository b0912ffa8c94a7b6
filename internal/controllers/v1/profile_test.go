package v1_test

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	v1 "github.com/spendwise-app/backend/internal/controllers/v1"
	"github.com/spendwise-app/backend/internal/i18n"
	"github.com/spendwise-app/backend/internal/models"
	"github.com/spendwise-app/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) patchProfile(t *testing.T, body any, expectedStatus int) v1.ProfileResponse {
	r := suite.request(t, http.MethodPatch, "http://example.com/v1/profile", body)
	test.AssertHTTPStatus(t, &r, expectedStatus)

	var response v1.ProfileResponse
	test.DecodeResponse(t, &r, &response)

	return response
}

func (suite *TestSuiteStandard) TestProfileEmpty() {
	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/profile", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ProfileResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)

	suite.Assert().Equal("", response.Data.Name)
	suite.Assert().False(response.Data.MonthlyIncome.Valid)
	suite.Assert().Equal(i18n.English, response.Data.Locale)
	suite.Assert().Equal("http://example.com/v1/profile", response.Data.Links.Self)
	suite.Assert().Equal("http://example.com/v1/locale", response.Data.Links.Locale)
}

func (suite *TestSuiteStandard) TestProfileUpdate() {
	p := suite.patchProfile(suite.T(), map[string]any{"name": "Ravi Kumar", "village": "Tenali", "monthlyIncome": "25000"}, http.StatusOK)
	suite.Require().NotNil(p.Data)
	suite.Assert().Equal("Ravi Kumar", p.Data.Name)
	suite.Assert().Equal("Tenali", p.Data.Village)
	suite.Assert().True(decimal.NewFromInt(25000).Equal(p.Data.MonthlyIncome.Decimal))

	// Only the phone is changed, the rest is kept
	p = suite.patchProfile(suite.T(), map[string]any{"phone": "9876543210"}, http.StatusOK)
	suite.Assert().Equal("Ravi Kumar", p.Data.Name)
	suite.Assert().Equal("9876543210", p.Data.Phone)
	suite.Assert().True(p.Data.MonthlyIncome.Valid)

	// Income can be removed again
	p = suite.patchProfile(suite.T(), map[string]any{"monthlyIncome": nil, "locale": "hi"}, http.StatusOK)
	suite.Assert().False(p.Data.MonthlyIncome.Valid)
	suite.Assert().Equal(i18n.Hindi, p.Data.Locale)
	suite.Assert().Equal("Tenali", p.Data.Village)

	// The locale set on the profile is the selection of the user
	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/locale", nil)
	var locale v1.LocaleResponse
	test.DecodeResponse(suite.T(), &r, &locale)
	suite.Assert().Equal(i18n.Hindi, locale.Data.Locale)
	suite.Assert().True(locale.Data.Selected)
}

func (suite *TestSuiteStandard) TestProfileUpdateFails() {
	tests := []struct {
		name    string
		body    any
		message string
	}{
		{"Negative income", map[string]any{"monthlyIncome": "-1"}, models.ErrIncomeNegative.Error()},
		{"Unsupported locale", map[string]any{"locale": "fr"}, models.ErrLocaleInvalid.Error()},
		{"Broken JSON", `{ "name": `, "invalid or un-parseable data"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			p := suite.patchProfile(t, tt.body, http.StatusBadRequest)
			require.NotNil(t, p.Error)
			assert.Contains(t, *p.Error, tt.message)
		})
	}

	// Nothing has been stored
	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/profile", nil)
	var response v1.ProfileResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().False(response.Data.MonthlyIncome.Valid)
	suite.Assert().Equal(i18n.English, response.Data.Locale)
}

func (suite *TestSuiteStandard) TestProfileDBClosed() {
	suite.CloseDB()

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/profile", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusServiceUnavailable)

	suite.patchProfile(suite.T(), map[string]any{"name": "Ravi"}, http.StatusServiceUnavailable)
}
