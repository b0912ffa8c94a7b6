package v1

import "github.com/spendwise-app/backend/internal/i18n"

type LocaleEditable struct {
	Locale string `json:"locale" binding:"required" example:"te"` // Locale code, BCP 47 tags with a supported language are accepted
}

type Locale struct {
	Locale    i18n.Locale   `json:"locale" example:"te" enums:"en,te,hi"` // The selected locale
	Selected  bool          `json:"selected" example:"true"`              // Is the locale an explicit selection of the user?
	Supported []i18n.Locale `json:"supported"`                            // All supported locales
}

type LocaleResponse struct {
	Data  *Locale `json:"data"`                                                                     // The locale of the user
	Error *string `json:"error" example:"the locale is not supported, use one of 'en', 'te', 'hi'"` // The error, if any occurred
}

type Translations struct {
	Locale       i18n.Locale       `json:"locale" example:"hi" enums:"en,te,hi"` // Locale of the translations
	Translations map[string]string `json:"translations"`                         // Display strings by key
}

type TranslationsResponse struct {
	Data *Translations `json:"data"` // The translation table
}
