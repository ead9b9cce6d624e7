package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"storedash/internal/adapters/discord"
	"storedash/internal/adapters/web"
	"storedash/internal/application"
	"storedash/internal/config"
	"storedash/internal/infrastructure/database"
	"storedash/internal/infrastructure/database/sqlc_generated"
	"storedash/internal/infrastructure/i18n"
	"storedash/internal/infrastructure/memory"
	"storedash/internal/infrastructure/observability"
	"storedash/internal/ports/input"
	"storedash/internal/ports/output"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the dashboard web server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx)
		},
	}
}

func serve(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	metrics := observability.NewMetrics()
	translator := i18n.NewTranslator(cfg.DefaultLocale,
		i18n.WithLogger(logger),
		i18n.WithMetrics(metrics),
		i18n.WithOverrideDir(cfg.TranslationsDir))

	var pool *pgxpool.Pool
	if cfg.PreferenceBackend == config.BackendPostgres || cfg.StatsSource == config.StatsDatabase {
		if err := database.RunMigrations(cfg.DatabaseURL, logger); err != nil {
			return err
		}
		pool, err = database.NewPool(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			return err
		}
		defer pool.Close()
	}

	var repo output.PreferenceRepository
	switch cfg.PreferenceBackend {
	case config.BackendMemory:
		repo = memory.NewPreferenceRepository()
	case config.BackendPostgres:
		repo = database.NewPreferenceRepository(sqlc_generated.New(pool))
	default:
		sqlite, err := database.OpenSQLite(cfg.SQLitePath, logger)
		if err != nil {
			return err
		}
		defer sqlite.Close()
		repo = sqlite
	}

	var stats output.StatsSource = memory.NewSimulatedStatsSource(memory.DailyBaseline)
	if cfg.StatsSource == config.StatsDatabase {
		sales := database.NewSalesRepository(sqlc_generated.New(pool))
		stats = database.NewSalesStatsSource(sales, cfg.DailyGoal, cfg.Location())
	}

	localeCfg := application.LocaleConfig{
		DefaultLocale: cfg.DefaultLocale,
		Location:      cfg.Location(),
		Logger:        logger,
		Metrics:       metrics,
	}

	var (
		bot      *discord.Bot
		notifier output.Notifier = observability.NewLogNotifier(logger)
	)
	if cfg.DiscordEnabled() {
		bot, err = discord.NewBot(cfg.DiscordToken, cfg.AlertChannelID, translator, logger)
		if err != nil {
			return err
		}
		notifier = bot
	}

	alerts := application.NewAlertService(memory.NewAlertCatalog(memory.SampleAlerts(time.Now())), notifier, logger, metrics)
	presenter := application.NewStatsPresenter(stats, logger)

	sessions := web.NewSessions(web.SessionConfig{
		Repo:        repo,
		Translator:  translator,
		Locale:      localeCfg,
		IdleTimeout: cfg.SessionIdleTimeout,
		Logger:      logger,
		Metrics:     metrics,
	})
	server := web.NewServer(cfg.HTTPAddr, web.NewHandler(sessions, presenter, alerts, metrics, logger).Routes(), logger)

	// Discord users get a throwaway locale context built from their client
	// locale; nothing is persisted for them.
	discordLocales := func(ctx context.Context, clientLocale string) input.LocaleUseCase {
		store := application.NewPreferenceStore(memory.NewPreferenceRepository(), "discord", logger, metrics)
		l := application.NewLocaleService(store, translator, localeCfg)
		l.Initialize(ctx, clientLocale)
		return l
	}
	alertHandler := discord.NewHandler(alerts, discordLocales, logger)

	logger.Info("storedash starting",
		zap.String("version", version),
		zap.String("addr", cfg.HTTPAddr),
		zap.String("preferences", cfg.PreferenceBackend),
		zap.String("stats", cfg.StatsSource),
		zap.Bool("discord", bot != nil))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return server.ListenAndServe(ctx) })
	g.Go(func() error { return sessions.Run(ctx) })
	g.Go(func() error { return translator.Watch(ctx) })
	if bot != nil {
		bot.Serve(alertHandler)
		g.Go(func() error { return bot.Start(ctx) })
	}
	if cfg.AlertDigestInterval > 0 {
		g.Go(func() error {
			return alertHandler.RunScheduledDigest(ctx, cfg.AlertDigestInterval, cfg.DefaultLocale)
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	logger.Info("storedash stopped")
	return nil
}
