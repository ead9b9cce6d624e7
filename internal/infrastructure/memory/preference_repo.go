package memory

import (
	"context"
	"sync"

	"storedash/internal/domain"
	"storedash/internal/domain/entities"
	"storedash/internal/ports/output"
)

var _ output.PreferenceRepository = (*PreferenceRepository)(nil)

type prefKey struct {
	clientID string
	key      entities.PreferenceKey
}

// PreferenceRepository keeps preferences in process memory. Values are lost
// on restart; it backs tests and PREFERENCE_BACKEND=memory.
type PreferenceRepository struct {
	mu     sync.RWMutex
	values map[prefKey]string
}

func NewPreferenceRepository() *PreferenceRepository {
	return &PreferenceRepository{values: make(map[prefKey]string)}
}

func (r *PreferenceRepository) Get(_ context.Context, clientID string, key entities.PreferenceKey) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[prefKey{clientID, key}]
	if !ok {
		return "", domain.ErrPreferenceNotFound
	}
	return v, nil
}

func (r *PreferenceRepository) Set(_ context.Context, clientID string, key entities.PreferenceKey, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[prefKey{clientID, key}] = value
	return nil
}

func (r *PreferenceRepository) Remove(_ context.Context, clientID string, key entities.PreferenceKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.values, prefKey{clientID, key})
	return nil
}
