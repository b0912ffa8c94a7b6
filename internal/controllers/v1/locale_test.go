package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/spendwise-app/backend/internal/controllers/v1"
	"github.com/spendwise-app/backend/internal/i18n"
	"github.com/spendwise-app/backend/internal/models"
	"github.com/spendwise-app/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestLocaleDefault() {
	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/locale", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.LocaleResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)

	suite.Assert().Equal(i18n.English, response.Data.Locale)
	suite.Assert().False(response.Data.Selected)
	suite.Assert().Equal([]i18n.Locale{i18n.English, i18n.Telugu, i18n.Hindi}, response.Data.Supported)
}

func (suite *TestSuiteStandard) TestLocaleSet() {
	r := suite.request(suite.T(), http.MethodPut, "http://example.com/v1/locale", map[string]any{"locale": "te-IN"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.LocaleResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(i18n.Telugu, response.Data.Locale)
	suite.Assert().True(response.Data.Selected)

	r = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/locale", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(i18n.Telugu, response.Data.Locale)
	suite.Assert().True(response.Data.Selected)

	// The selection is used for all further requests of the user
	r = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/budgets/current", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	suite.Assert().Equal("te", r.Header().Get("Content-Language"))

	var budget v1.BudgetStatusResponse
	test.DecodeResponse(suite.T(), &r, &budget)
	suite.Require().NotNil(budget.Error)
	suite.Assert().Equal("క్రియాశీల బడ్జెట్ లేదు", *budget.Error)

	// Other users are not affected
	r = test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/locale", nil, map[string]string{"X-User-ID": "user-2"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(i18n.English, response.Data.Locale)
	suite.Assert().False(response.Data.Selected)
}

func (suite *TestSuiteStandard) TestLocaleSetFails() {
	tests := []struct {
		name    string
		body    any
		message string
	}{
		{"Empty body", "", "must not be empty"},
		{"Missing locale", map[string]any{"name": "te"}, "Locale is required"},
		{"Unsupported", map[string]any{"locale": "fr"}, models.ErrLocaleInvalid.Error()},
		{"Garbage", map[string]any{"locale": "not a locale!"}, models.ErrLocaleInvalid.Error()},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodPut, "http://example.com/v1/locale", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.LocaleResponse
			test.DecodeResponse(t, &r, &response)
			require.NotNil(t, response.Error)
			assert.Contains(t, *response.Error, tt.message)
		})
	}

	// A failed selection does not change the locale
	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/locale", nil)
	var response v1.LocaleResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().False(response.Data.Selected)
}

func (suite *TestSuiteStandard) TestLocaleDBClosed() {
	suite.CloseDB()

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/locale", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusServiceUnavailable)

	r = suite.request(suite.T(), http.MethodPut, "http://example.com/v1/locale", map[string]any{"locale": "hi"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusServiceUnavailable)
}

func (suite *TestSuiteStandard) TestTranslations() {
	tests := []struct {
		name      string
		url       string
		headers   map[string]string
		locale    i18n.Locale
		dashboard string
	}{
		{"Default", "http://example.com/v1/translations", nil, i18n.English, "Dashboard"},
		{"Query", "http://example.com/v1/translations?locale=hi", nil, i18n.Hindi, "डैशबोर्ड"},
		{"Accept-Language", "http://example.com/v1/translations", map[string]string{"Accept-Language": "te-IN,te;q=0.9,en;q=0.5"}, i18n.Telugu, "డాష్‌బోర్డ్"},
		{"Unsupported query", "http://example.com/v1/translations?locale=fr", nil, i18n.English, "Dashboard"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodGet, tt.url, nil, tt.headers)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.TranslationsResponse
			test.DecodeResponse(t, &r, &response)
			require.NotNil(t, response.Data)

			assert.Equal(t, tt.locale, response.Data.Locale)
			assert.Equal(t, tt.dashboard, response.Data.Translations["dashboard"])
			assert.Equal(t, i18n.Table(tt.locale), response.Data.Translations)
		})
	}
}
