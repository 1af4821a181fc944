package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/ndewijer/fund-analytics/internal/api/handlers"
	custommiddleware "github.com/ndewijer/fund-analytics/internal/api/middleware"
	"github.com/ndewijer/fund-analytics/internal/config"
	"github.com/ndewijer/fund-analytics/internal/service"
)

// Services groups the services the router exposes.
type Services struct {
	System    *service.SystemService
	Fund      *service.FundService
	Watchlist *service.WatchlistService
	Snapshot  *service.SnapshotService
}

// NewRouter creates and configures the HTTP router
func NewRouter(services Services, cfg *config.Config, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger(logger))
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	systemHandler := handlers.NewSystemHandler(services.System)
	fundHandler := handlers.NewFundHandler(services.Fund)
	watchlistHandler := handlers.NewWatchlistHandler(services.Watchlist)
	snapshotHandler := handlers.NewSnapshotHandler(services.Snapshot)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/fund/{code}", func(r chi.Router) {
			r.Use(custommiddleware.ValidateFundCodeMiddleware)
			r.Get("/nav", fundHandler.NAV)
			r.Get("/returns", fundHandler.Returns)
			r.Get("/risk", fundHandler.Risk)
			r.Get("/holdings", fundHandler.Holdings)
			r.Get("/info", fundHandler.Info)
			r.Get("/report", fundHandler.Report)
			r.Get("/snapshots", snapshotHandler.Snapshots)
			r.Post("/snapshots", snapshotHandler.TakeSnapshot)
		})

		r.Route("/watchlist", func(r chi.Router) {
			r.Get("/", watchlistHandler.Watchlist)
			r.Post("/", watchlistHandler.AddFund)
			r.With(custommiddleware.ValidateFundCodeMiddleware).Delete("/{code}", watchlistHandler.RemoveFund)
		})
	})

	return r
}
