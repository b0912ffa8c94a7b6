// Package types implements special types for SpendWise.
package types

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar day without a time component.
//
// It is always normalized to 00:00 UTC.
type Date time.Time

// NewDate returns a new Date.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the Date on which a time occurs in that time's location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return NewDate(year, month, day)
}

// Today returns the current date in UTC.
func Today(now time.Time) Date {
	return DateOf(now.In(time.UTC))
}

// ParseDate parses a string in RFC3339 full-date format.
//
// Full RFC3339 timestamps are accepted as well, the time of day is discarded.
func ParseDate(s string) (Date, error) {
	if len(s) == len(dateLayout) {
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			return Date{}, err
		}
		return DateOf(t), nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

// String returns the date formatted as YYYY-MM-DD.
func (d Date) String() string {
	return time.Time(d).Format(dateLayout)
}

// Time returns the date as time.Time at 00:00 UTC.
func (d Date) Time() time.Time {
	return time.Time(d)
}

// MarshalJSON implements the json.Marshaler interface.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// The value is expected to be a string in a format accepted by ParseDate.
func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	parsed, err := ParseDate(value)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// UnmarshalParam allows gin to bind the date from query strings and URIs.
func (d *Date) UnmarshalParam(param string) error {
	return d.UnmarshalJSON([]byte(param))
}

// Scan writes the value from the database.
//
// Depending on the driver, dates are returned as time.Time, string or []byte.
func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = Date{}
	case time.Time:
		*d = DateOf(v)
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Date", value)
	}

	return nil
}

func (d *Date) scanString(s string) error {
	if len(s) >= len(dateLayout) {
		s = s[:len(dateLayout)]
	}

	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return err
	}

	*d = DateOf(t)
	return nil
}

// Value returns the value for the SQL driver to write to the database.
//
// Dates are written as YYYY-MM-DD strings so that range comparisons
// work the same way on every supported database.
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

// GormDataType defines the data type used by gorm the type.
func (Date) GormDataType() string {
	return "date"
}

// IsZero reports if the date is the zero value.
func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}

// AddDate adds years, months and days.
func (d Date) AddDate(years, months, days int) Date {
	return DateOf(time.Time(d).AddDate(years, months, days))
}

// FirstOfMonth returns the first day of the month the date is in.
func (d Date) FirstOfMonth() Date {
	t := time.Time(d)
	return NewDate(t.Year(), t.Month(), 1)
}

// LastOfMonth returns the last day of the month the date is in.
func (d Date) LastOfMonth() Date {
	return d.FirstOfMonth().AddDate(0, 1, -1)
}

// Before reports whether d is before e.
func (d Date) Before(e Date) bool {
	return time.Time(d).Before(time.Time(e))
}

// After reports whether d is after e.
func (d Date) After(e Date) bool {
	return time.Time(d).After(time.Time(e))
}

// Equal reports whether d and e represent the same day.
func (d Date) Equal(e Date) bool {
	return time.Time(d).Equal(time.Time(e))
}

// DaysUntil returns the number of days from d to e.
func (d Date) DaysUntil(e Date) int {
	return int(time.Time(e).Sub(time.Time(d)).Hours() / 24)
}

// Between reports whether d is in the inclusive range [start, end].
func (d Date) Between(start, end Date) bool {
	return !d.Before(start) && !d.After(end)
}
