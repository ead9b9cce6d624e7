package application

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"storedash/internal/domain"
	"storedash/internal/domain/entities"
	"storedash/internal/ports/output"
)

// PreferenceStore binds a PreferenceRepository to one client and never
// fails: unreadable values read as absent and failed writes are logged and
// counted, so a broken store degrades to defaults instead of blocking the UI.
type PreferenceStore struct {
	repo     output.PreferenceRepository
	clientID string
	logger   *zap.Logger
	metrics  output.Metrics
}

func NewPreferenceStore(repo output.PreferenceRepository, clientID string, logger *zap.Logger, metrics output.Metrics) *PreferenceStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &PreferenceStore{
		repo:     repo,
		clientID: clientID,
		logger:   logger,
		metrics:  metrics,
	}
}

// ClientID returns the client the store is scoped to.
func (s *PreferenceStore) ClientID() string { return s.clientID }

// Get returns the stored value and whether one exists.
func (s *PreferenceStore) Get(ctx context.Context, key entities.PreferenceKey) (string, bool) {
	v, err := s.repo.Get(ctx, s.clientID, key)
	if err == nil {
		return v, true
	}
	if !errors.Is(err, domain.ErrPreferenceNotFound) {
		s.unavailable("get", key, err)
	}
	return "", false
}

// Set writes value, best effort.
func (s *PreferenceStore) Set(ctx context.Context, key entities.PreferenceKey, value string) {
	if err := s.repo.Set(ctx, s.clientID, key, value); err != nil {
		s.unavailable("set", key, err)
	}
}

// Remove deletes the stored value, best effort.
func (s *PreferenceStore) Remove(ctx context.Context, key entities.PreferenceKey) {
	if err := s.repo.Remove(ctx, s.clientID, key); err != nil {
		s.unavailable("remove", key, err)
	}
}

func (s *PreferenceStore) unavailable(op string, key entities.PreferenceKey, err error) {
	s.logger.Warn("preference store unavailable",
		zap.String("op", op),
		zap.String("key", string(key)),
		zap.String("client_id", s.clientID),
		zap.String("code", domain.Code(domain.ErrPreferenceUnavailable)),
		zap.Error(err))
	s.metrics.PreferenceFailure(op)
}

type nopMetrics struct{}

func (nopMetrics) TranslationMiss(string)           {}
func (nopMetrics) PreferenceFailure(string)         {}
func (nopMetrics) PreferenceChanged(string, string) {}
func (nopMetrics) AlertsDispatched()                {}
