// Package export writes expense lists as CSV or XLSX spreadsheets.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/spendwise-app/backend/internal/i18n"
	"github.com/spendwise-app/backend/internal/models"
)

// Format is a file format for exports.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

var ErrFormatInvalid = fmt.Errorf("%w: the export format must be either 'csv' or 'xlsx'", models.ErrValidation)

// ParseFormat parses the format. The empty string is CSV.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	}

	return "", ErrFormatInvalid
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// Filename returns the name of an export file.
func (f Format) Filename() string {
	return "expenses." + string(f)
}

// columns are the translation keys of the column headers.
var columns = []string{"date", "category", "amount", "paymentMode", "notes", "location"}

// Header returns the column headers in the locale.
func Header(locale i18n.Locale) []string {
	header := make([]string, len(columns))
	for i, key := range columns {
		header[i] = i18n.T(locale, key)
	}

	return header
}

// Row is one expense as it is exported.
type Row struct {
	Date        string
	Category    string
	Amount      string
	PaymentMode string
	Notes       string
	Location    string
}

func (r Row) values() []string {
	return []string{r.Date, r.Category, r.Amount, r.PaymentMode, r.Notes, r.Location}
}

// Rows converts expenses into rows. Category and payment mode are rendered
// in the locale, unknown categories as "-".
func Rows(expenses []models.Expense, names map[uuid.UUID]string, locale i18n.Locale) []Row {
	rows := make([]Row, 0, len(expenses))

	for _, e := range expenses {
		name, ok := names[e.CategoryID]
		if !ok {
			name = "-"
		}

		rows = append(rows, Row{
			Date:        e.Date.String(),
			Category:    name,
			Amount:      e.Amount.StringFixed(2),
			PaymentMode: i18n.T(locale, string(e.PaymentMode)),
			Notes:       e.Notes,
			Location:    e.Location,
		})
	}

	return rows
}

// Write writes the rows in the format.
func Write(w io.Writer, format Format, locale i18n.Locale, rows []Row) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, locale, rows)
	case FormatXLSX:
		return WriteXLSX(w, locale, rows)
	}

	return ErrFormatInvalid
}
