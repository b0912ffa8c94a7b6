package models

import "github.com/spendwise-app/backend/internal/i18n"

// Category is a spending category.
//
// Categories are seeded externally and read-only for users.
type Category struct {
	DefaultModel
	NameEN string `gorm:"uniqueIndex"`
	NameTE string
	NameHI string
	Icon   string
}

// Name returns the display name for the locale.
//
// If the category has no name in the locale, the English name is used.
func (c Category) Name(locale i18n.Locale) string {
	var name string

	switch locale {
	case i18n.Telugu:
		name = c.NameTE
	case i18n.Hindi:
		name = c.NameHI
	case i18n.English:
		name = c.NameEN
	}

	if name == "" {
		return c.NameEN
	}

	return name
}
