package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/ndewijer/fund-analytics/internal/model"
	"github.com/ndewijer/fund-analytics/internal/repository"
)

// SnapshotService archives computed analytics for funds.
// Snapshots are written for history only; FundService never reads them back.
type SnapshotService struct {
	fundService   *FundService
	watchlistRepo *repository.WatchlistRepository
	snapshotRepo  *repository.SnapshotRepository
	concurrency   int
	logger        zerolog.Logger
	now           func() time.Time
}

// NewSnapshotService creates a new SnapshotService.
// concurrency bounds how many funds RefreshAll processes at once; values below 1 mean 1.
func NewSnapshotService(
	fundService *FundService,
	watchlistRepo *repository.WatchlistRepository,
	snapshotRepo *repository.SnapshotRepository,
	concurrency int,
	logger zerolog.Logger,
) *SnapshotService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &SnapshotService{
		fundService:   fundService,
		watchlistRepo: watchlistRepo,
		snapshotRepo:  snapshotRepo,
		concurrency:   concurrency,
		logger:        logger.With().Str("component", "snapshot_service").Logger(),
		now:           time.Now,
	}
}

// TakeSnapshot loads a fresh NAV series for a fund, computes its analytics and stores the result.
func (s *SnapshotService) TakeSnapshot(ctx context.Context, fundCode string) (*model.Snapshot, error) {
	series := s.fundService.GetNAVSeries(ctx, fundCode)
	returns, risk := s.fundService.Analyze(series)

	snapshot := buildSnapshot(uuid.New().String(), series, returns, risk, s.now())

	if err := s.snapshotRepo.InsertSnapshot(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("failed to create snapshot: %w", err)
	}

	return &snapshot, nil
}

// GetSnapshots returns stored snapshots for a fund, newest first.
// A limit of zero or less returns all of them.
func (s *SnapshotService) GetSnapshots(ctx context.Context, fundCode string, limit int) ([]model.Snapshot, error) {
	return s.snapshotRepo.GetSnapshots(ctx, fundCode, limit)
}

// RefreshAll takes a snapshot of every watched fund.
//
// Funds are processed concurrently, bounded by the configured concurrency. A failure for one
// fund is logged and does not stop the others. Returns the number of snapshots stored; the
// error is only set when the watchlist itself cannot be read.
func (s *SnapshotService) RefreshAll(ctx context.Context) (int, error) {
	entries, err := s.watchlistRepo.GetWatchlist(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load watchlist: %w", err)
	}

	var stored atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for _, entry := range entries {
		fundCode := entry.FundCode
		g.Go(func() error {
			if _, err := s.TakeSnapshot(gctx, fundCode); err != nil {
				s.logger.Error().Err(err).Str("fund_code", fundCode).Msg("snapshot failed")
				return nil
			}
			stored.Add(1)
			return nil
		})
	}

	// Workers never return errors.
	_ = g.Wait()

	s.logger.Info().
		Int("funds", len(entries)).
		Int64("stored", stored.Load()).
		Msg("snapshot refresh complete")

	return int(stored.Load()), nil
}
