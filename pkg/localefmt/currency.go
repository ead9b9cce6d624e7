package localefmt

import (
	"math"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/message"
)

// Symbol returns the display symbol of an ISO 4217 code in locale, and
// whether x/text knows the currency. Unknown codes come back upper-cased.
func Symbol(locale, code string) (string, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	unit, err := currency.ParseISO(code)
	if err != nil || unit == currency.XXX {
		return code, false
	}
	sym := message.NewPrinter(styleFor(locale).tag).Sprint(currency.Symbol(unit))
	if sym == "" {
		return unit.String(), false
	}
	return sym, true
}

// FormatCurrency renders amount with two fraction digits (half-to-even) in
// the locale's grouping and the symbol of currency in front:
//
//	FormatCurrency("en", "USD", 1234.5)    // $1,234.50
//	FormatCurrency("pt-BR", "BRL", 1234.5) // R$ 1.234,50
func FormatCurrency(locale, code string, amount float64) string {
	st := styleFor(locale)
	rounded := roundHalfEven(amount, 2)

	var b strings.Builder
	if rounded < 0 {
		b.WriteByte('-')
	}
	symbol, known := Symbol(locale, code)
	b.WriteString(symbol)
	// bare ISO codes always get a gap
	if st.symbolGap || !known {
		b.WriteByte(' ')
	}
	b.WriteString(formatDecimal(st.tag, math.Abs(rounded), 2))
	return b.String()
}
