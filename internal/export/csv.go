package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/spendwise-app/backend/internal/i18n"
)

// bom makes spreadsheet applications detect UTF-8, which Telugu and
// Hindi names need.
var bom = []byte{0xEF, 0xBB, 0xBF}

// WriteCSV writes the rows as CSV with a header line.
func WriteCSV(w io.Writer, locale i18n.Locale, rows []Row) error {
	if _, err := w.Write(bom); err != nil {
		return fmt.Errorf("error writing BOM: %w", err)
	}

	writer := csv.NewWriter(w)

	if err := writer.Write(Header(locale)); err != nil {
		return fmt.Errorf("error writing header: %w", err)
	}

	for _, row := range rows {
		if err := writer.Write(row.values()); err != nil {
			return fmt.Errorf("error writing row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("error flushing writer: %w", err)
	}

	return nil
}
