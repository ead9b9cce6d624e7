package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"storedash/internal/domain"
	"storedash/internal/domain/entities"
	"storedash/internal/ports/output"
)

var _ output.PreferenceRepository = (*SQLitePreferenceRepository)(nil)

// SQLitePreferenceRepository stores preferences in a local SQLite file. It
// is the default backend for single-node deployments.
type SQLitePreferenceRepository struct {
	db  *sql.DB
	now func() time.Time
}

// OpenSQLite migrates and opens the SQLite file at path.
func OpenSQLite(path string, logger *zap.Logger) (*SQLitePreferenceRepository, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("sqlite path is required")
	}
	clean := filepath.Clean(path)
	if err := RunSQLiteMigrations(clean, logger); err != nil {
		return nil, err
	}

	dsn := clean + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	logger.Info("sqlite preference store opened", zap.String("path", clean))
	return &SQLitePreferenceRepository{db: db, now: time.Now}, nil
}

// Close releases the underlying connection.
func (r *SQLitePreferenceRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

func (r *SQLitePreferenceRepository) Get(ctx context.Context, clientID string, key entities.PreferenceKey) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM preferences WHERE client_id = ? AND key = ?`,
		clientID, string(key),
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.ErrPreferenceNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get preference: %w", err)
	}
	return value, nil
}

func (r *SQLitePreferenceRepository) Set(ctx context.Context, clientID string, key entities.PreferenceKey, value string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO preferences (client_id, key, value, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (client_id, key) DO UPDATE
		 SET value = excluded.value, updated_at = excluded.updated_at`,
		clientID, string(key), value, r.now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("upsert preference: %w", err)
	}
	return nil
}

func (r *SQLitePreferenceRepository) Remove(ctx context.Context, clientID string, key entities.PreferenceKey) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM preferences WHERE client_id = ? AND key = ?`,
		clientID, string(key),
	)
	if err != nil {
		return fmt.Errorf("delete preference: %w", err)
	}
	return nil
}
