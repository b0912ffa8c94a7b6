package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/spendwise-app/backend/internal/i18n"
	"github.com/spendwise-app/backend/internal/models"
	"github.com/spendwise-app/backend/internal/profile"
	"golang.org/x/exp/slices"
)

type ProfileEditable struct {
	Name          string              `json:"name" example:"Ravi Kumar" default:""`               // Name of the user
	Phone         string              `json:"phone" example:"9876543210" default:""`              // Phone number
	Village       string              `json:"village" example:"Tenali" default:""`                // Village or town
	MonthlyIncome decimal.NullDecimal `json:"monthlyIncome" swaggertype:"string" example:"25000"` // Monthly income, null if not given
	Locale        i18n.Locale         `json:"locale" example:"te" enums:"en,te,hi"`               // Preferred language
}

// patch returns a patch that only contains the fields that are set
func (editable ProfileEditable) patch(fields []string) profile.Patch {
	var patch profile.Patch

	if slices.Contains(fields, "Name") {
		patch.Name = &editable.Name
	}

	if slices.Contains(fields, "Phone") {
		patch.Phone = &editable.Phone
	}

	if slices.Contains(fields, "Village") {
		patch.Village = &editable.Village
	}

	if slices.Contains(fields, "MonthlyIncome") {
		patch.MonthlyIncome = &editable.MonthlyIncome
	}

	if slices.Contains(fields, "Locale") {
		patch.Locale = &editable.Locale
	}

	return patch
}

type ProfileLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/profile"`  // The profile itself
	Locale string `json:"locale" example:"https://example.com/api/v1/locale"` // The locale selection
}

// Profile is the API v1 representation of a Profile.
type Profile struct {
	models.Timestamps
	ProfileEditable
	Links ProfileLinks `json:"links"`
}

func newProfile(c *gin.Context, model models.Profile) Profile {
	url := baseURL(c)

	return Profile{
		Timestamps: model.Timestamps,
		ProfileEditable: ProfileEditable{
			Name:          model.Name,
			Phone:         model.Phone,
			Village:       model.Village,
			MonthlyIncome: model.MonthlyIncome,
			Locale:        model.Locale,
		},
		Links: ProfileLinks{
			Self:   fmt.Sprintf("%s/v1/profile", url),
			Locale: fmt.Sprintf("%s/v1/locale", url),
		},
	}
}

type ProfileResponse struct {
	Data  *Profile `json:"data"`                                                    // The profile of the user
	Error *string  `json:"error" example:"the monthly income must not be negative"` // The error, if any occurred
}
