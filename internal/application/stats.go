package application

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"storedash/internal/domain/entities"
	"storedash/internal/ports/input"
	"storedash/internal/ports/output"
	"storedash/pkg/localefmt"
)

var _ input.StatsUseCase = (*StatsPresenter)(nil)

// StatsPresenter turns a raw snapshot into the strings shown on the sales
// and spending cards.
type StatsPresenter struct {
	source output.StatsSource
	logger *zap.Logger
}

func NewStatsPresenter(source output.StatsSource, logger *zap.Logger) *StatsPresenter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatsPresenter{source: source, logger: logger}
}

// Present fetches the snapshot for period and formats it for locale.
func (p *StatsPresenter) Present(ctx context.Context, locale input.LocaleUseCase, period entities.Period) (input.StatsView, error) {
	snap, err := p.source.Snapshot(ctx, period)
	if err != nil {
		return input.StatsView{}, fmt.Errorf("stats snapshot (%s): %w", period, err)
	}
	progress := ClampPercent(snap.GoalProgress)
	if progress != snap.GoalProgress {
		p.logger.Debug("goal progress clamped",
			zap.Float64("raw", snap.GoalProgress),
			zap.Float64("clamped", progress))
	}

	return input.StatsView{
		Period:       period,
		GrossRevenue: locale.FormatCurrency(snap.GrossRevenue),
		NetRevenue:   locale.FormatCurrency(snap.NetRevenue),
		SalesCount:   snap.SalesCount,
		SalesLabel:   locale.T("statsCards.sales.sales", map[string]any{"count": snap.SalesCount}),
		Goal:         locale.FormatCurrency(snap.Goal),
		GoalLabel: locale.T("dashboard.stats.goal", map[string]any{
			"amount":     locale.FormatCurrency(snap.Goal),
			"percentage": localefmt.FormatPercent(locale.Current(), progress, 1),
		}),
		GoalProgress:  progress,
		GoalBarWidth:  BarWidth(progress),
		SpendingTotal: locale.FormatCurrency(snap.SpendingTotal),
		AccountsPayable: locale.T("statsCards.spending.accountsPayable", map[string]any{
			"count": snap.AccountsPayable,
		}),
	}, nil
}

// ClampPercent bounds a percentage to [0, 100]. NaN maps to 0.
func ClampPercent(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}

// BarWidth renders a clamped percentage as a CSS width. CSS always uses a
// dot decimal separator, whatever the locale.
func BarWidth(v float64) string {
	return fmt.Sprintf("%.1f%%", ClampPercent(v))
}
