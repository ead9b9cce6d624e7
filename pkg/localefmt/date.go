package localefmt

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// ErrZeroTime is returned for the zero time.Time, which has no meaningful
// calendar rendering.
var ErrZeroTime = errors.New("localefmt: zero time")

// FormatLongDate renders t as a long month/day/year date in loc:
// "March 20, 2024" for en, "20 de março de 2024" for pt-BR.
func FormatLongDate(locale string, t time.Time, loc *time.Location) (string, error) {
	if t.IsZero() {
		return "", ErrZeroTime
	}
	if loc != nil {
		t = t.In(loc)
	}
	st := styleFor(locale)
	r := strings.NewReplacer(
		"{day}", strconv.Itoa(t.Day()),
		"{month}", st.months[t.Month()-1],
		"{year}", strconv.Itoa(t.Year()),
	)
	return r.Replace(st.longDate), nil
}

// ParseDate accepts an ISO calendar date (2006-01-02) or an RFC 3339
// timestamp. Calendar dates are placed at midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrZeroTime
	}
	if loc == nil {
		loc = time.UTC
	}
	if t, err := time.ParseInLocation("2006-01-02", s, loc); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// Elapsed is a coarse "time ago" bucket.
type Elapsed struct {
	Unit  ElapsedUnit
	Count int
}

type ElapsedUnit string

const (
	ElapsedNow       ElapsedUnit = "now"
	ElapsedMinutes   ElapsedUnit = "minutes"
	ElapsedHours     ElapsedUnit = "hours"
	ElapsedYesterday ElapsedUnit = "yesterday"
	ElapsedDays      ElapsedUnit = "days"
)

// Since buckets the time between t and now. Future times count as now.
func Since(now, t time.Time) Elapsed {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return Elapsed{Unit: ElapsedNow}
	case d < time.Hour:
		return Elapsed{Unit: ElapsedMinutes, Count: int(d / time.Minute)}
	case d < 24*time.Hour:
		return Elapsed{Unit: ElapsedHours, Count: int(d / time.Hour)}
	case d < 48*time.Hour:
		return Elapsed{Unit: ElapsedYesterday, Count: 1}
	default:
		return Elapsed{Unit: ElapsedDays, Count: int(d / (24 * time.Hour))}
	}
}
