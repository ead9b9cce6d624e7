package entities

import "time"

// Alert severities.
const (
	SeverityCritical = "critical"
	SeverityWarning  = "warning"
)

// Alert kinds.
const (
	AlertLowStock = "low_stock"
	AlertOverdue  = "overdue_payable"
)

// Alert is an item on the /alerts view.
type Alert struct {
	ID           string    `json:"id"`
	Kind         string    `json:"kind"`
	Severity     string    `json:"severity"`
	Product      string    `json:"product"`
	CurrentStock int       `json:"currentStock"`
	MinStock     int       `json:"minStock"`
	CreatedAt    time.Time `json:"createdAt"`
}

// IsCritical reports whether the alert needs immediate attention.
func (a Alert) IsCritical() bool { return a.Severity == SeverityCritical }

// AlertDigest is a localized summary of the open alerts, ready to be pushed
// to a notifier or rendered as a chat message.
type AlertDigest struct {
	Locale   string
	Title    string
	Summary  string
	Lines    []string
	Critical int
}

// Empty reports whether the digest carries no alerts.
func (d AlertDigest) Empty() bool { return len(d.Lines) == 0 }
