package database

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed migrations
var migrationsFS embed.FS

// RunMigrations applies all pending PostgreSQL migrations.
func RunMigrations(dsn string, logger *zap.Logger) error {
	return runMigrations("migrations/postgres", dsn, logger)
}

// RunSQLiteMigrations applies all pending migrations to the SQLite file at
// path.
func RunSQLiteMigrations(path string, logger *zap.Logger) error {
	return runMigrations("migrations/sqlite", "sqlite://"+path, logger)
}

func runMigrations(dir, databaseURL string, logger *zap.Logger) error {
	src, err := iofs.New(migrationsFS, dir)
	if err != nil {
		return fmt.Errorf("migration source: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, databaseURL)
	if err != nil {
		return fmt.Errorf("migration init: %w", err)
	}
	defer m.Close()

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up: %w", err)
	}

	version, dirty, _ := m.Version()
	logger.Info("migrations applied",
		zap.String("set", dir),
		zap.Uint("version", version),
		zap.Bool("dirty", dirty))
	return nil
}
