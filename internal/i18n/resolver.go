package i18n

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// T returns the display string for key in the locale.
//
// If there is no translation, the key itself is returned. Locales outside
// of the supported set are resolved against the default locale.
func T(locale Locale, key string) string {
	if !locale.Valid() {
		locale = Default
	}

	if s, ok := translations[locale][key]; ok && s != "" {
		return s
	}

	return key
}

// Keys returns all translation keys in lexical order.
func Keys() []string {
	keys := maps.Keys(translations[Default])
	slices.Sort(keys)
	return keys
}

// Table returns a copy of all translations for the locale.
func Table(locale Locale) map[string]string {
	if !locale.Valid() {
		locale = Default
	}

	return maps.Clone(translations[locale])
}
