package database

import (
	"context"
	"fmt"
	"time"

	"storedash/internal/domain/entities"
	"storedash/internal/ports/output"
	"storedash/pkg/tz"
)

var _ output.StatsSource = (*SalesStatsSource)(nil)

// SalesStatsSource builds stats snapshots from the sales ledger. The ledger
// only records sales, so spending and accounts payable stay zero.
type SalesStatsSource struct {
	sales     output.SalesRepository
	dailyGoal float64
	location  *time.Location
	now       func() time.Time
}

func NewSalesStatsSource(sales output.SalesRepository, dailyGoal float64, loc *time.Location) *SalesStatsSource {
	if loc == nil {
		loc = time.UTC
	}
	return &SalesStatsSource{
		sales:     sales,
		dailyGoal: dailyGoal,
		location:  loc,
		now:       time.Now,
	}
}

// Window returns the [from, to) range a period covers at now: today starts
// at local midnight, week and month reach back 7 and 30 days.
func Window(period entities.Period, now time.Time, loc *time.Location) (from, to time.Time) {
	to = now.In(loc)
	if period == entities.PeriodToday {
		return tz.StartOfDay(to, loc), to
	}
	return to.AddDate(0, 0, -period.Days()), to
}

func (s *SalesStatsSource) Snapshot(ctx context.Context, period entities.Period) (entities.StatSnapshot, error) {
	from, to := Window(period, s.now(), s.location)
	agg, err := s.sales.Aggregate(ctx, from, to)
	if err != nil {
		return entities.StatSnapshot{}, fmt.Errorf("sales snapshot: %w", err)
	}
	snap := entities.StatSnapshot{
		GrossRevenue: agg.Gross,
		NetRevenue:   agg.Net,
		SalesCount:   agg.Count,
		Goal:         s.dailyGoal * float64(period.Days()),
	}
	if snap.Goal > 0 {
		snap.GoalProgress = snap.GrossRevenue / snap.Goal * 100
	}
	return snap, nil
}
