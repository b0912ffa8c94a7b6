package i18n

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatAmount renders an amount with two decimals and the digit
// grouping of the locale.
//
// Whole and fractional parts are formatted as integers so that large
// amounts keep every digit. Amounts beyond the int64 range fall back to
// float formatting.
//
// The result is meant for display only, never parse it back.
func FormatAmount(locale Locale, amount decimal.Decimal) string {
	p := message.NewPrinter(locale.Tag())

	rounded := amount.Round(2)
	abs := rounded.Abs()
	whole := abs.Truncate(0)
	if !whole.BigInt().IsInt64() {
		return p.Sprint(number.Decimal(rounded.InexactFloat64(), number.Scale(2)))
	}

	cents := abs.Sub(whole).Shift(2).IntPart()
	s := p.Sprint(number.Decimal(whole.IntPart())) + decimalSeparator(p) + p.Sprint(number.Decimal(cents, number.MinIntegerDigits(2)))
	if rounded.IsNegative() {
		s = "-" + s
	}

	return s
}

// decimalSeparator returns the separator the printer puts between whole
// and fractional digits.
func decimalSeparator(p *message.Printer) string {
	r := []rune(p.Sprint(number.Decimal(1.5, number.Scale(1))))
	if len(r) < 3 {
		return "."
	}

	return string(r[1 : len(r)-1])
}
