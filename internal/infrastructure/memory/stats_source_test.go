package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storedash/internal/domain/entities"
)

func TestSimulatedStatsSource_Multipliers(t *testing.T) {
	src := NewSimulatedStatsSource(entities.StatSnapshot{
		GrossRevenue: 100, NetRevenue: 80, SalesCount: 2, Goal: 200, SpendingTotal: 10, AccountsPayable: 3,
	})

	for _, tc := range []struct {
		period entities.Period
		mult   float64
	}{
		{entities.PeriodToday, 1},
		{entities.PeriodWeek, 7},
		{entities.PeriodMonth, 30},
	} {
		snap, err := src.Snapshot(context.Background(), tc.period)
		require.NoError(t, err)
		assert.InDelta(t, 100*tc.mult, snap.GrossRevenue, 1e-9, tc.period)
		assert.InDelta(t, 80*tc.mult, snap.NetRevenue, 1e-9, tc.period)
		assert.Equal(t, int(2*tc.mult), snap.SalesCount, tc.period)
		assert.InDelta(t, 10*tc.mult, snap.SpendingTotal, 1e-9, tc.period)
		assert.InDelta(t, 50, snap.GoalProgress, 1e-9, tc.period)
		assert.Equal(t, 3, snap.AccountsPayable, tc.period)
	}
}

func TestAlertCatalog_ReturnsCopy(t *testing.T) {
	cat := NewAlertCatalog(SampleAlerts(time.Now()))
	first, err := cat.List(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 3)

	first[0].Product = "changed"
	second, _ := cat.List(context.Background())
	assert.Equal(t, "Smartphone X Pro", second[0].Product)
}
