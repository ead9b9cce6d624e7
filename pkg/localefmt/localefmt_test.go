package localefmt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name     string
		locale   string
		currency string
		amount   float64
		want     string
	}{
		{"en usd", "en", "USD", 1234.5, "$1,234.50"},
		{"pt-BR brl", "pt-BR", "BRL", 1234.5, "R$ 1.234,50"},
		{"en small", "en", "USD", 0.5, "$0.50"},
		{"en negative", "en", "USD", -42, "-$42.00"},
		{"pt-BR millions", "pt-BR", "BRL", 1234567.891, "R$ 1.234.567,89"},
		{"half to even down", "en", "USD", 0.125, "$0.12"},
		{"negative rounds to zero", "en", "USD", -0.001, "$0.00"},
		{"euro", "en", "eur", 10, "€10.00"},
		{"unknown code", "en", "zzz", 10, "ZZZ 10.00"},
		{"unknown locale uses en", "fr", "USD", 3240.5, "$3,240.50"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency(tt.locale, tt.currency, tt.amount))
		})
	}
}

func TestSymbol(t *testing.T) {
	tests := []struct {
		locale, code, want string
		known              bool
	}{
		{"en", "USD", "$", true},
		{"pt-BR", "BRL", "R$", true},
		{"en", "EUR", "€", true},
		{"en", "XXX", "XXX", false},
		{"en", "nope", "NOPE", false},
	}
	for _, tt := range tests {
		t.Run(tt.locale+"/"+tt.code, func(t *testing.T) {
			got, known := Symbol(tt.locale, tt.code)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.known, known)
		})
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "64.8%", FormatPercent("en", 64.8, 1))
	assert.Equal(t, "64,8%", FormatPercent("pt-BR", 64.8, 1))
	assert.Equal(t, "100%", FormatPercent("en", 100, 0))
}

func TestFormatLongDate(t *testing.T) {
	d := time.Date(2024, time.March, 20, 15, 30, 0, 0, time.UTC)

	got, err := FormatLongDate("en", d, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, "March 20, 2024", got)

	got, err = FormatLongDate("pt-BR", d, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, "20 de março de 2024", got)

	_, err = FormatLongDate("en", time.Time{}, time.UTC)
	assert.ErrorIs(t, err, ErrZeroTime)
}

func TestFormatLongDate_ConvertsLocation(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	d := time.Date(2024, time.March, 21, 1, 0, 0, 0, time.UTC)

	got, err := FormatLongDate("en", d, loc)
	require.NoError(t, err)
	assert.Equal(t, "March 20, 2024", got)
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-03-25", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.March, 25, 0, 0, 0, 0, time.UTC), got)

	got, err = ParseDate("2024-03-20T15:30:00Z", nil)
	require.NoError(t, err)
	assert.Equal(t, 15, got.Hour())

	_, err = ParseDate("not a date", time.UTC)
	assert.Error(t, err)
	_, err = ParseDate("   ", time.UTC)
	assert.ErrorIs(t, err, ErrZeroTime)
}

func TestSince(t *testing.T) {
	now := time.Date(2024, time.March, 20, 15, 30, 0, 0, time.UTC)
	tests := []struct {
		ago  time.Duration
		want Elapsed
	}{
		{-time.Minute, Elapsed{Unit: ElapsedNow}},
		{30 * time.Second, Elapsed{Unit: ElapsedNow}},
		{5 * time.Minute, Elapsed{Unit: ElapsedMinutes, Count: 5}},
		{90 * time.Minute, Elapsed{Unit: ElapsedHours, Count: 1}},
		{30 * time.Hour, Elapsed{Unit: ElapsedYesterday, Count: 1}},
		{72 * time.Hour, Elapsed{Unit: ElapsedDays, Count: 3}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Since(now, now.Add(-tt.ago)), tt.ago.String())
	}
}
