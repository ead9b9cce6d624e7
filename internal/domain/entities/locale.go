package entities

// LocaleDescriptor is one entry of the supported locale list.
type LocaleDescriptor struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Locale codes shipped with the dashboard.
const (
	LocaleEnglish   = "en"
	LocalePortugues = "pt-BR"

	// DefaultLocale is used when neither a stored preference nor the
	// runtime-reported language resolves to a supported locale. It is also
	// the translation fallback table.
	DefaultLocale = LocalePortugues
)

var supportedLocales = []LocaleDescriptor{
	{Code: LocaleEnglish, Name: "English"},
	{Code: LocalePortugues, Name: "Português (Brasil)"},
}

// SupportedLocales returns a copy of the supported locale list.
func SupportedLocales() []LocaleDescriptor {
	out := make([]LocaleDescriptor, len(supportedLocales))
	copy(out, supportedLocales)
	return out
}

// IsSupportedLocale reports whether code is an exact member of the list.
func IsSupportedLocale(code string) bool {
	for _, l := range supportedLocales {
		if l.Code == code {
			return true
		}
	}
	return false
}

// Currency codes selected by CurrencyForLocale.
const (
	CurrencyBRL = "BRL"
	CurrencyUSD = "USD"
)

// CurrencyForLocale applies the fixed two-way rule: pt-BR prices in BRL,
// every other locale in USD.
func CurrencyForLocale(code string) string {
	if code == LocalePortugues {
		return CurrencyBRL
	}
	return CurrencyUSD
}
