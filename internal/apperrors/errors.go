package apperrors

import "errors"

// Domain entity errors represent missing entities in the system.
var (
	// ErrFundNotWatched indicates that a fund code is not on the watchlist.
	ErrFundNotWatched = errors.New("fund not on watchlist")

	// ErrSnapshotNotFound indicates that no snapshot exists for the requested fund.
	ErrSnapshotNotFound = errors.New("snapshot not found")
)

// Business logic errors represent validation failures or constraint violations.
var (
	// ErrInvalidFundCode indicates that a fund code is not six ASCII digits.
	ErrInvalidFundCode = errors.New("invalid fund code")

	// ErrDuplicateEntry indicates that an entity with the same unique constraint already exists.
	ErrDuplicateEntry = errors.New("duplicate entry")
)

// Operation failure errors represent system-level failures when retrieving or storing data.
var (
	ErrFailedToRetrieveWatchlist = errors.New("failed to retrieve watchlist")
	ErrFailedToUpdateWatchlist   = errors.New("failed to update watchlist")
	ErrFailedToRetrieveSnapshots = errors.New("failed to retrieve snapshots")
	ErrFailedToCreateSnapshot    = errors.New("failed to create snapshot")
	ErrFailedToGetVersionInfo    = errors.New("failed to get version information")
)
