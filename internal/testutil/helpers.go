package testutil

import (
	"database/sql"
	"fmt"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ndewijer/fund-analytics/internal/repository"
	"github.com/ndewijer/fund-analytics/internal/service"
)

// NewTestFundService creates a FundService over the given data source with default settings
// and a silent logger.
func NewTestFundService(t *testing.T, source service.FundDataSource) *service.FundService {
	t.Helper()

	return service.NewFundService(source, service.DefaultFundSettings(), zerolog.Nop())
}

// NewTestFundServiceAt is NewTestFundService with a fixed clock.
func NewTestFundServiceAt(t *testing.T, source service.FundDataSource, now time.Time) *service.FundService {
	t.Helper()

	settings := service.DefaultFundSettings()
	settings.Now = func() time.Time { return now }
	return service.NewFundService(source, settings, zerolog.Nop())
}

func NewTestWatchlistService(t *testing.T, db *sql.DB) *service.WatchlistService {
	t.Helper()

	return service.NewWatchlistService(repository.NewWatchlistRepository(db))
}

func NewTestSnapshotService(t *testing.T, db *sql.DB, source service.FundDataSource) *service.SnapshotService {
	t.Helper()

	return service.NewSnapshotService(
		NewTestFundService(t, source),
		repository.NewWatchlistRepository(db),
		repository.NewSnapshotRepository(db),
		4,
		zerolog.Nop(),
	)
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()
	return service.NewSystemService(db)
}

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}

var fundCodeSeq atomic.Int64

func init() {
	//nolint:gosec // G404: Using math/rand for test data generation is acceptable
	fundCodeSeq.Store(int64(rand.Intn(500000)))
}

// MakeFundCode generates a six digit fund code that is unique within the test binary.
//
// Example usage:
//
//	code := testutil.MakeFundCode()
//	// Returns: "318204"
func MakeFundCode() string {
	return fmt.Sprintf("%06d", fundCodeSeq.Add(1)%1000000)
}
