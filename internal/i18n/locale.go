// Package i18n resolves display strings for the supported locales.
//
// The locale is always passed in explicitly. Persisting a user's selection
// is handled by the profile package.
package i18n

import (
	"errors"
	"strings"

	"golang.org/x/text/language"
)

// Locale is one of the supported display languages.
type Locale string

const (
	English Locale = "en"
	Telugu  Locale = "te"
	Hindi   Locale = "hi"
)

// Default is used when no locale has been selected.
const Default = English

var ErrUnsupportedLocale = errors.New("the locale is not supported, use one of 'en', 'te', 'hi'")

var supported = []Locale{English, Telugu, Hindi}

// The matcher's first tag is its fallback, keep English first.
var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Make(string(Telugu)),
	language.Hindi,
})

// Supported returns all supported locales, the default first.
func Supported() []Locale {
	l := make([]Locale, len(supported))
	copy(l, supported)
	return l
}

// Valid reports whether l is a supported locale.
func (l Locale) Valid() bool {
	switch l {
	case English, Telugu, Hindi:
		return true
	}
	return false
}

// Tag returns the BCP 47 language tag for the locale.
func (l Locale) Tag() language.Tag {
	if !l.Valid() {
		return language.English
	}
	return language.Make(string(l))
}

// ParseLocale parses a locale code.
//
// Besides the plain codes, any BCP 47 tag with a supported base language
// is accepted, e.g. "hi-IN" parses to Hindi.
func ParseLocale(s string) (Locale, error) {
	s = strings.TrimSpace(s)

	if l := Locale(strings.ToLower(s)); l.Valid() {
		return l, nil
	}

	tag, err := language.Parse(s)
	if err != nil {
		return "", ErrUnsupportedLocale
	}

	base, _ := tag.Base()
	if l := Locale(base.String()); l.Valid() {
		return l, nil
	}

	return "", ErrUnsupportedLocale
}

// MatchAcceptLanguage picks the best supported locale for an
// Accept-Language header value. The second return value is false when
// nothing in the header matched.
func MatchAcceptLanguage(header string) (Locale, bool) {
	if header == "" {
		return Default, false
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return Default, false
	}

	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return Default, false
	}

	return supported[index], true
}
