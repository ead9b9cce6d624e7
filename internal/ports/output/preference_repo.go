package output

import (
	"context"

	"storedash/internal/domain/entities"
)

// PreferenceRepository persists per-client preferences.
// Get returns domain.ErrPreferenceNotFound when the key was never written.
type PreferenceRepository interface {
	Get(ctx context.Context, clientID string, key entities.PreferenceKey) (string, error)
	Set(ctx context.Context, clientID string, key entities.PreferenceKey, value string) error
	Remove(ctx context.Context, clientID string, key entities.PreferenceKey) error
}
