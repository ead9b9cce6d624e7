package localefmt

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// roundHalfEven rounds v to digits fraction digits, ties to even.
func roundHalfEven(v float64, digits int) float64 {
	pow := math.Pow10(digits)
	return math.RoundToEven(v*pow) / pow
}

func formatDecimal(tag language.Tag, v float64, digits int) string {
	p := message.NewPrinter(tag)
	return p.Sprintf("%v", number.Decimal(v, number.MinFractionDigits(digits), number.MaxFractionDigits(digits)))
}

// FormatNumber groups and rounds value with the locale's separators.
func FormatNumber(locale string, value float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	rounded := roundHalfEven(value, decimals)
	if rounded == 0 {
		rounded = 0 // drop negative zero
	}
	return formatDecimal(styleFor(locale).tag, rounded, decimals)
}

// FormatPercent renders value (already in 0..100 scale) with a trailing %.
func FormatPercent(locale string, value float64, decimals int) string {
	return FormatNumber(locale, value, decimals) + "%"
}
