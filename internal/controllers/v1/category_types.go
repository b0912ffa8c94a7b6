package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/spendwise-app/backend/internal/i18n"
	"github.com/spendwise-app/backend/internal/models"
)

type CategoryLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"`            // The category itself
	Expenses string `json:"expenses" example:"https://example.com/api/v1/expenses?category=3b1ea324-d438-4419-882a-2fc91d71772f"` // Expenses in this category
}

// Category is the API v1 representation of a Category.
type Category struct {
	models.DefaultModel
	Name   string        `json:"name" example:"Groceries"`   // Name in the locale of the request
	NameEN string        `json:"nameEn" example:"Groceries"` // English name
	NameTE string        `json:"nameTe" example:"కిరాణా"`    // Telugu name
	NameHI string        `json:"nameHi" example:"किराना"`    // Hindi name
	Icon   string        `json:"icon" example:"🛒"`           // Icon for the category
	Links  CategoryLinks `json:"links"`
}

func newCategory(c *gin.Context, model models.Category, locale i18n.Locale) Category {
	url := baseURL(c)

	return Category{
		DefaultModel: model.DefaultModel,
		Name:         model.Name(locale),
		NameEN:       model.NameEN,
		NameTE:       model.NameTE,
		NameHI:       model.NameHI,
		Icon:         model.Icon,
		Links: CategoryLinks{
			Self:     fmt.Sprintf("%s/v1/categories/%s", url, model.ID),
			Expenses: fmt.Sprintf("%s/v1/expenses?category=%s", url, model.ID),
		},
	}
}

type CategoryListResponse struct {
	Data  []Category `json:"data"`                                                         // List of categories
	Error *string    `json:"error" example:"the database is unavailable, try again later"` // The error, if any occurred
}

type CategoryResponse struct {
	Data  *Category `json:"data"`                                                             // Data for the category
	Error *string   `json:"error" example:"resource not found: category matching your query"` // The error, if any occurred
}
