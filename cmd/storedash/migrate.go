package main

import (
	"github.com/spf13/cobra"

	"storedash/internal/config"
	"storedash/internal/infrastructure/database"
	"storedash/internal/infrastructure/observability"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations for the configured backends",
		RunE: func(*cobra.Command, []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger, err := observability.NewLogger(cfg.LogLevel)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			if cfg.PreferenceBackend == config.BackendSQLite {
				if err := database.RunSQLiteMigrations(cfg.SQLitePath, logger); err != nil {
					return err
				}
			}
			if cfg.DatabaseURL != "" {
				return database.RunMigrations(cfg.DatabaseURL, logger)
			}
			return nil
		},
	}
}
