package export

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/spendwise-app/backend/internal/i18n"
	"github.com/xuri/excelize/v2"
)

const sheet = "Sheet1"

// WriteXLSX writes the rows as a workbook with a single sheet.
// Amounts are written as numbers so that they can be summed.
func WriteXLSX(w io.Writer, locale i18n.Locale, rows []Row) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, value := range Header(locale) {
		if err := setCell(f, i+1, 1, value); err != nil {
			return err
		}
	}

	for r, row := range rows {
		for c, value := range row.values() {
			var cell any = value

			if c == 2 {
				if amount, err := decimal.NewFromString(value); err == nil {
					cell = amount.InexactFloat64()
				}
			}

			if err := setCell(f, c+1, r+2, cell); err != nil {
				return err
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("error writing workbook: %w", err)
	}

	return nil
}

func setCell(f *excelize.File, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}

	return f.SetCellValue(sheet, cell, value)
}
