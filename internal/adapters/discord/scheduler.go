package discord

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// RunScheduledDigest dispatches the alert digest in locale every interval
// until ctx is done.
func (h *Handler) RunScheduledDigest(ctx context.Context, interval time.Duration, locale string) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			n, err := h.alerts.Dispatch(ctx, h.locales(ctx, locale))
			if err != nil {
				h.logger.Warn("scheduled alert digest failed", zap.Error(err))
				continue
			}
			h.logger.Debug("scheduled alert digest", zap.Int("alerts", n))
		}
	}
}
