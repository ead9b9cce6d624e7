package memory

import (
	"context"
	"time"

	"storedash/internal/domain/entities"
	"storedash/internal/ports/output"
)

var _ output.AlertSource = (*AlertCatalog)(nil)

// AlertCatalog serves a fixed list of alerts.
type AlertCatalog struct {
	alerts []entities.Alert
}

func NewAlertCatalog(alerts []entities.Alert) *AlertCatalog {
	return &AlertCatalog{alerts: alerts}
}

func (c *AlertCatalog) List(_ context.Context) ([]entities.Alert, error) {
	out := make([]entities.Alert, len(c.alerts))
	copy(out, c.alerts)
	return out, nil
}

// SampleAlerts mirrors the mock low-stock alerts shown on the dashboard,
// timestamped relative to now.
func SampleAlerts(now time.Time) []entities.Alert {
	return []entities.Alert{
		{ID: "a1", Kind: entities.AlertLowStock, Severity: entities.SeverityCritical, Product: "Smartphone X Pro", CurrentStock: 2, MinStock: 5, CreatedAt: now.Add(-15 * time.Minute)},
		{ID: "a2", Kind: entities.AlertLowStock, Severity: entities.SeverityCritical, Product: "Fone Bluetooth Z", CurrentStock: 0, MinStock: 3, CreatedAt: now.Add(-30 * time.Minute)},
		{ID: "a3", Kind: entities.AlertLowStock, Severity: entities.SeverityWarning, Product: "Carregador USB-C", CurrentStock: 3, MinStock: 4, CreatedAt: now.Add(-2 * time.Hour)},
	}
}
