package memory

import (
	"context"

	"storedash/internal/domain/entities"
	"storedash/internal/ports/output"
)

var _ output.StatsSource = (*SimulatedStatsSource)(nil)

// DailyBaseline is the mock day the simulated source scales from.
var DailyBaseline = entities.StatSnapshot{
	GrossRevenue:    3240.50,
	NetRevenue:      2592.40,
	SalesCount:      18,
	Goal:            5000,
	SpendingTotal:   1850.75,
	AccountsPayable: 4,
}

// SimulatedStatsSource is a placeholder for real aggregation: it multiplies
// a fixed daily baseline by the period length (today x1, week x7, month x30).
// The goal scales with it, so goal progress is the same for every period.
type SimulatedStatsSource struct {
	base entities.StatSnapshot
}

func NewSimulatedStatsSource(base entities.StatSnapshot) *SimulatedStatsSource {
	return &SimulatedStatsSource{base: base}
}

func (s *SimulatedStatsSource) Snapshot(_ context.Context, period entities.Period) (entities.StatSnapshot, error) {
	m := float64(period.Days())
	snap := entities.StatSnapshot{
		GrossRevenue:    s.base.GrossRevenue * m,
		NetRevenue:      s.base.NetRevenue * m,
		SalesCount:      s.base.SalesCount * period.Days(),
		Goal:            s.base.Goal * m,
		SpendingTotal:   s.base.SpendingTotal * m,
		AccountsPayable: s.base.AccountsPayable,
	}
	if snap.Goal > 0 {
		snap.GoalProgress = snap.GrossRevenue / snap.Goal * 100
	}
	return snap, nil
}
