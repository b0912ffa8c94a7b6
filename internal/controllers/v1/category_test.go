package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/spendwise-app/backend/internal/controllers/v1"
	"github.com/spendwise-app/backend/internal/models"
	"github.com/spendwise-app/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCategories() {
	tests := []struct {
		name     string
		headers  map[string]string
		query    string
		expected string
	}{
		{"English by default", nil, "", "Transport"},
		{"Telugu by query parameter", nil, "?locale=te", "రవాణా"},
		{"Hindi by Accept-Language", map[string]string{"Accept-Language": "hi-IN,hi;q=0.9"}, "", "परिवहन"},
	}

	id := suite.categoryID("Transport")

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			headers := []map[string]string{}
			if tt.headers != nil {
				headers = append(headers, tt.headers)
			}

			r := suite.request(t, http.MethodGet, "http://example.com/v1/categories"+tt.query, nil, headers...)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.CategoryListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, len(models.DefaultCategories))

			var found bool
			for _, c := range response.Data {
				if c.ID == id {
					found = true
					assert.Equal(t, tt.expected, c.Name)
					assert.Equal(t, "Transport", c.NameEN)
					assert.Equal(t, fmt.Sprintf("http://example.com/v1/categories/%s", id), c.Links.Self)
				}
			}
			assert.True(t, found, "Category not in list")
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesDBClosed() {
	suite.CloseDB()

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/categories", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Len(response.Data, 0)
	suite.Assert().NotNil(response.Data)
}

func (suite *TestSuiteStandard) TestCategory() {
	id := suite.categoryID("Health")

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Existing", id.String(), http.StatusOK},
		{"Not existing", uuid.NewString(), http.StatusNotFound},
		{"Invalid ID", "not-a-uuid", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodGet, "http://example.com/v1/categories/"+tt.id+"?locale=hi", nil)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.CategoryResponse
			test.DecodeResponse(t, &r, &response)

			if tt.status != http.StatusOK {
				assert.NotNil(t, response.Error)
				return
			}

			assert.Equal(t, "स्वास्थ्य", response.Data.Name)
			assert.Equal(t, "heart-pulse", response.Data.Icon)
		})
	}
}
