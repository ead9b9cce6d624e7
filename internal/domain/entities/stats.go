package entities

import (
	"strings"

	"storedash/internal/domain"
)

// Period is the three-bucket selector used by the stats cards.
type Period string

const (
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// Periods lists the selector values in display order.
func Periods() []Period { return []Period{PeriodToday, PeriodWeek, PeriodMonth} }

// ParsePeriod maps "" to today and rejects unknown buckets.
func ParsePeriod(s string) (Period, error) {
	switch p := Period(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PeriodToday, nil
	case PeriodToday, PeriodWeek, PeriodMonth:
		return p, nil
	}
	return "", domain.ErrInvalidPeriod
}

// Days is the number of days the bucket covers. The simulated stats source
// uses it as a plain multiplier.
func (p Period) Days() int {
	switch p {
	case PeriodWeek:
		return 7
	case PeriodMonth:
		return 30
	default:
		return 1
	}
}

// StatSnapshot is the raw numeric input of the stats cards.
type StatSnapshot struct {
	GrossRevenue    float64
	NetRevenue      float64
	SalesCount      int
	GoalProgress    float64
	Goal            float64
	SpendingTotal   float64
	AccountsPayable int
}
