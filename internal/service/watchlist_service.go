package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ndewijer/fund-analytics/internal/api/request"
	"github.com/ndewijer/fund-analytics/internal/model"
	"github.com/ndewijer/fund-analytics/internal/repository"
)

// WatchlistService manages the funds tracked by the snapshot job.
type WatchlistService struct {
	watchlistRepo *repository.WatchlistRepository
	now           func() time.Time
}

// NewWatchlistService creates a new WatchlistService with the provided repository dependency.
func NewWatchlistService(watchlistRepo *repository.WatchlistRepository) *WatchlistService {
	return &WatchlistService{
		watchlistRepo: watchlistRepo,
		now:           time.Now,
	}
}

// GetWatchlist returns every watched fund ordered by fund code.
func (s *WatchlistService) GetWatchlist(ctx context.Context) ([]model.WatchlistEntry, error) {
	return s.watchlistRepo.GetWatchlist(ctx)
}

// IsWatched reports whether a fund is on the watchlist.
func (s *WatchlistService) IsWatched(ctx context.Context, fundCode string) (bool, error) {
	_, err := s.watchlistRepo.GetEntry(ctx, fundCode)
	if err == nil {
		return true, nil
	}
	if isNotWatched(err) {
		return false, nil
	}
	return false, err
}

// AddFund puts a fund on the watchlist.
// The request is expected to be validated already.
// Returns apperrors.ErrDuplicateEntry if the fund is already watched.
func (s *WatchlistService) AddFund(ctx context.Context, req request.AddWatchlistRequest) (*model.WatchlistEntry, error) {
	entry := &model.WatchlistEntry{
		FundCode: req.FundCode,
		Note:     strings.TrimSpace(req.Note),
		AddedAt:  s.now().UTC(),
	}

	if err := s.watchlistRepo.InsertEntry(ctx, *entry); err != nil {
		return nil, fmt.Errorf("failed to add fund to watchlist: %w", err)
	}

	return entry, nil
}

// RemoveFund takes a fund off the watchlist.
// Returns apperrors.ErrFundNotWatched if the fund is not watched.
func (s *WatchlistService) RemoveFund(ctx context.Context, fundCode string) error {
	if err := s.watchlistRepo.DeleteEntry(ctx, fundCode); err != nil {
		return fmt.Errorf("failed to remove fund from watchlist: %w", err)
	}
	return nil
}
