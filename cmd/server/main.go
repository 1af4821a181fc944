package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ndewijer/fund-analytics/internal/analytics"
	"github.com/ndewijer/fund-analytics/internal/api"
	"github.com/ndewijer/fund-analytics/internal/config"
	"github.com/ndewijer/fund-analytics/internal/database"
	"github.com/ndewijer/fund-analytics/internal/eastmoney"
	"github.com/ndewijer/fund-analytics/internal/logging"
	"github.com/ndewijer/fund-analytics/internal/repository"
	"github.com/ndewijer/fund-analytics/internal/scheduler"
	"github.com/ndewijer/fund-analytics/internal/service"
	"github.com/ndewijer/fund-analytics/internal/version"
)

// snapshotJobTimeout bounds a single run of the watchlist snapshot job.
const snapshotJobTimeout = 30 * time.Minute

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		// Logger config is not known yet
		bootstrap := logging.New(logging.Config{Level: "info"})
		bootstrap.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger := logging.New(logging.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})
	logging.SetGlobalLogger(logger)
	logger.Info().Str("version", version.Version).Msg("Starting fund-analytics")

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.Database.Path).Msg("Failed to open database")
	}
	defer db.Close()

	applied, err := database.Migrate(context.Background(), db)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to migrate database")
	}
	logger.Info().Str("path", cfg.Database.Path).Int("migrations_applied", applied).Msg("Connected to database")

	// Data provider
	client := eastmoney.NewClient(
		eastmoney.WithBaseURL(cfg.Eastmoney.BaseURL),
		eastmoney.WithArchiveURL(cfg.Eastmoney.ArchiveURL),
		eastmoney.WithTimeout(cfg.Eastmoney.Timeout),
		eastmoney.WithRateLimit(cfg.Eastmoney.RateLimit),
		eastmoney.WithLogger(logger),
	)

	// Create repositories
	watchlistRepo := repository.NewWatchlistRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)

	// Create services
	systemService := service.NewSystemService(db)
	fundService := service.NewFundService(
		client,
		service.FundSettings{
			NAVWindowDays: cfg.Analytics.NAVWindowDays,
			Risk: analytics.RiskParams{
				RiskFreeRate:    cfg.Analytics.RiskFreeRate,
				TradingDays:     cfg.Analytics.TradingDays,
				MinObservations: cfg.Analytics.MinObservations,
			},
		},
		logger,
	)
	watchlistService := service.NewWatchlistService(watchlistRepo)
	snapshotService := service.NewSnapshotService(
		fundService,
		watchlistRepo,
		snapshotRepo,
		cfg.Snapshot.Concurrency,
		logger,
	)

	// Background snapshots
	var sched *scheduler.Scheduler
	if cfg.Snapshot.Enabled {
		sched = scheduler.New(eastmoney.Shanghai, logger)
		if err := sched.AddJob(cfg.Snapshot.Schedule, scheduler.NewSnapshotJob(snapshotService, snapshotJobTimeout)); err != nil {
			logger.Fatal().Err(err).Msg("Failed to schedule snapshot job")
		}
		sched.Start()
	}

	// Create router
	router := api.NewRouter(api.Services{
		System:    systemService,
		Fund:      fundService,
		Watchlist: watchlistService,
		Snapshot:  snapshotService,
	}, cfg, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second, // report fetches three upstream pages
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info().Str("addr", cfg.Server.Addr).Msg("Starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server...")

	if sched != nil {
		sched.Stop()
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
		return
	}

	logger.Info().Msg("Server exited")
}
