package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"storedash/internal/domain"
	"storedash/internal/domain/entities"
	"storedash/internal/infrastructure/database/sqlc_generated"
	"storedash/internal/ports/output"
)

var _ output.PreferenceRepository = (*PreferenceRepository)(nil)

// PreferenceRepository implements output.PreferenceRepository using sqlc + pgx.
type PreferenceRepository struct {
	q *sqlc_generated.Queries
}

// NewPreferenceRepository creates a PreferenceRepository.
func NewPreferenceRepository(q *sqlc_generated.Queries) *PreferenceRepository {
	return &PreferenceRepository{q: q}
}

func (r *PreferenceRepository) Get(ctx context.Context, clientID string, key entities.PreferenceKey) (string, error) {
	value, err := r.q.GetPreference(ctx, sqlc_generated.GetPreferenceParams{
		ClientID: clientID,
		Key:      string(key),
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return "", domain.ErrPreferenceNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get preference: %w", err)
	}
	return value, nil
}

func (r *PreferenceRepository) Set(ctx context.Context, clientID string, key entities.PreferenceKey, value string) error {
	err := r.q.UpsertPreference(ctx, sqlc_generated.UpsertPreferenceParams{
		ClientID: clientID,
		Key:      string(key),
		Value:    value,
	})
	if err != nil {
		return fmt.Errorf("upsert preference: %w", err)
	}
	return nil
}

func (r *PreferenceRepository) Remove(ctx context.Context, clientID string, key entities.PreferenceKey) error {
	err := r.q.DeletePreference(ctx, sqlc_generated.DeletePreferenceParams{
		ClientID: clientID,
		Key:      string(key),
	})
	if err != nil {
		return fmt.Errorf("delete preference: %w", err)
	}
	return nil
}
