package observability

import (
	"context"

	"go.uber.org/zap"

	"storedash/internal/domain/entities"
	"storedash/internal/ports/output"
)

var _ output.Notifier = (*LogNotifier)(nil)

// LogNotifier writes alert digests to the log. It stands in for Discord
// when no bot token is configured.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(_ context.Context, d entities.AlertDigest) error {
	n.logger.Info(d.Title,
		zap.String("summary", d.Summary),
		zap.Strings("alerts", d.Lines),
		zap.Int("critical", d.Critical),
		zap.String("locale", d.Locale))
	return nil
}
