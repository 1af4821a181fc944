package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ndewijer/fund-analytics/internal/apperrors"
	"github.com/ndewijer/fund-analytics/internal/model"
)

// WatchlistRepository provides data access methods for the watchlist table.
type WatchlistRepository struct {
	db *sql.DB
}

// NewWatchlistRepository creates a new WatchlistRepository with the provided database connection.
func NewWatchlistRepository(db *sql.DB) *WatchlistRepository {
	return &WatchlistRepository{db: db}
}

// GetWatchlist returns all watched funds ordered by fund code.
// Returns an empty slice if nothing is watched.
func (r *WatchlistRepository) GetWatchlist(ctx context.Context) ([]model.WatchlistEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT fund_code, note, added_at
		FROM watchlist
		ORDER BY fund_code ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query watchlist table: %w", err)
	}
	defer rows.Close()

	entries := []model.WatchlistEntry{}
	for rows.Next() {
		var e model.WatchlistEntry
		var addedAt string
		if err := rows.Scan(&e.FundCode, &e.Note, &addedAt); err != nil {
			return nil, fmt.Errorf("failed to scan watchlist table results: %w", err)
		}
		if e.AddedAt, err = ParseTime(addedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating watchlist table: %w", err)
	}

	return entries, nil
}

// GetEntry returns a single watchlist entry.
// Returns apperrors.ErrFundNotWatched if the fund is not on the watchlist.
func (r *WatchlistRepository) GetEntry(ctx context.Context, fundCode string) (model.WatchlistEntry, error) {
	var e model.WatchlistEntry
	var addedAt string
	err := r.db.QueryRowContext(ctx, `
		SELECT fund_code, note, added_at
		FROM watchlist
		WHERE fund_code = ?
	`, fundCode).Scan(&e.FundCode, &e.Note, &addedAt)
	if err == sql.ErrNoRows {
		return model.WatchlistEntry{}, apperrors.ErrFundNotWatched
	}
	if err != nil {
		return model.WatchlistEntry{}, fmt.Errorf("failed to query watchlist entry: %w", err)
	}

	if e.AddedAt, err = ParseTime(addedAt); err != nil {
		return model.WatchlistEntry{}, err
	}
	return e, nil
}

// InsertEntry adds a fund to the watchlist.
// Returns apperrors.ErrDuplicateEntry if the fund is already watched.
func (r *WatchlistRepository) InsertEntry(ctx context.Context, entry model.WatchlistEntry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO watchlist (fund_code, note, added_at)
		VALUES (?, ?, ?)
	`, entry.FundCode, entry.Note, formatTime(entry.AddedAt))
	if isUniqueViolation(err) {
		return apperrors.ErrDuplicateEntry
	}
	if err != nil {
		return fmt.Errorf("failed to insert watchlist entry: %w", err)
	}
	return nil
}

// DeleteEntry removes a fund from the watchlist.
// Returns apperrors.ErrFundNotWatched if nothing was deleted.
func (r *WatchlistRepository) DeleteEntry(ctx context.Context, fundCode string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM watchlist WHERE fund_code = ?`, fundCode)
	if err != nil {
		return fmt.Errorf("failed to delete watchlist entry: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrFundNotWatched
	}
	return nil
}
