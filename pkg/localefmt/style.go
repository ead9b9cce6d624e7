// Package localefmt renders numbers, money and dates for the dashboard's
// supported locales. Digits and separators come from golang.org/x/text; the
// small per-locale tables here cover what x/text does not ship (currency
// symbol placement, long month names).
package localefmt

import (
	"strings"

	"golang.org/x/text/language"
)

type style struct {
	tag language.Tag
	// symbolGap puts a space between the currency symbol and the amount.
	symbolGap bool
	months    [12]string
	// longDate uses {day}, {month} and {year} placeholders.
	longDate string
}

var styles = map[string]style{
	"en": {
		tag:       language.English,
		symbolGap: false,
		months: [12]string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		longDate: "{month} {day}, {year}",
	},
	"pt-BR": {
		tag:       language.BrazilianPortuguese,
		symbolGap: true,
		months: [12]string{
			"janeiro", "fevereiro", "março", "abril", "maio", "junho",
			"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
		},
		longDate: "{day} de {month} de {year}",
	},
}

// styleFor resolves exact codes first, then the base language, then en.
func styleFor(locale string) style {
	if s, ok := styles[locale]; ok {
		return s
	}
	if base, _, ok := strings.Cut(locale, "-"); ok {
		if base == "pt" {
			return styles["pt-BR"]
		}
		if s, ok := styles[base]; ok {
			return s
		}
	}
	return styles["en"]
}
