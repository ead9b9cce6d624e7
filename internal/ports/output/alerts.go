package output

import (
	"context"

	"storedash/internal/domain/entities"
)

// AlertSource lists the currently open alerts.
type AlertSource interface {
	List(ctx context.Context) ([]entities.Alert, error)
}

// Notifier pushes an already localized alert digest to an external channel.
type Notifier interface {
	Notify(ctx context.Context, digest entities.AlertDigest) error
}
