package application

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"storedash/internal/domain/entities"
	"storedash/internal/ports/input"
	"storedash/internal/ports/output"
)

var _ input.AlertUseCase = (*AlertService)(nil)

type AlertService struct {
	source   output.AlertSource
	notifier output.Notifier
	logger   *zap.Logger
	metrics  output.Metrics
	now      func() time.Time
}

func NewAlertService(source output.AlertSource, notifier output.Notifier, logger *zap.Logger, metrics output.Metrics) *AlertService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &AlertService{
		source:   source,
		notifier: notifier,
		logger:   logger,
		metrics:  metrics,
		now:      time.Now,
	}
}

func (s *AlertService) List(ctx context.Context) ([]entities.Alert, error) {
	alerts, err := s.source.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	return alerts, nil
}

// CountCritical returns how many alerts are critical.
func CountCritical(alerts []entities.Alert) int {
	n := 0
	for _, a := range alerts {
		if a.IsCritical() {
			n++
		}
	}
	return n
}

// Digest localizes the open alerts for the caller. An empty digest means
// there is nothing to report.
func (s *AlertService) Digest(ctx context.Context, locale input.LocaleUseCase) (entities.AlertDigest, error) {
	alerts, err := s.List(ctx)
	if err != nil {
		return entities.AlertDigest{}, err
	}

	now := s.now()
	digest := entities.AlertDigest{
		Locale:   locale.Current(),
		Title:    locale.T("alerts.digestTitle", nil),
		Summary:  locale.T("alerts.summary", map[string]any{"count": len(alerts)}),
		Critical: CountCritical(alerts),
		Lines:    make([]string, 0, len(alerts)),
	}
	if len(alerts) == 0 {
		digest.Summary = locale.T("alerts.none", nil)
	}
	for _, a := range alerts {
		line := locale.T("alerts.lowStockLine", map[string]any{
			"product": a.Product,
			"current": a.CurrentStock,
			"min":     a.MinStock,
		})
		digest.Lines = append(digest.Lines, line+" · "+locale.FormatRelative(now, a.CreatedAt))
	}
	return digest, nil
}

// Dispatch sends the digest to the notifier. It returns the number of alerts
// sent; nothing is sent when there are none.
func (s *AlertService) Dispatch(ctx context.Context, locale input.LocaleUseCase) (int, error) {
	digest, err := s.Digest(ctx, locale)
	if err != nil {
		return 0, err
	}
	if digest.Empty() {
		return 0, nil
	}

	if err := s.notifier.Notify(ctx, digest); err != nil {
		return 0, fmt.Errorf("notify alerts: %w", err)
	}
	s.metrics.AlertsDispatched()
	s.logger.Info("alert digest dispatched",
		zap.Int("alerts", len(digest.Lines)),
		zap.Int("critical", digest.Critical),
		zap.String("locale", digest.Locale))
	return len(digest.Lines), nil
}
