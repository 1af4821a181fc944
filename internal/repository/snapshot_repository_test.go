package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndewijer/fund-analytics/internal/model"
	"github.com/ndewijer/fund-analytics/internal/repository"
	"github.com/ndewijer/fund-analytics/internal/testutil"
)

func sampleSnapshot(fundCode string, takenAt time.Time) model.Snapshot {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	nav := 1.2345
	return model.Snapshot{
		ID:         testutil.MakeID(),
		FundCode:   fundCode,
		TakenAt:    takenAt,
		LatestDate: &date,
		LatestNAV:  &nav,
		Returns: model.PeriodReturns{
			{Label: model.PeriodOneWeek, Metric: model.NewMetric(1.5, "1.50%")},
			{Label: model.PeriodOneYear, Metric: model.MissingMetric(model.StatusInsufficientData)},
		},
		MaxDrawdown: model.NewMetric(-3.21, "-3.21%"),
		Sharpe:      model.MissingMetric(model.StatusInsufficientData),
	}
}

func TestSnapshotRepository(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 3, 2, 13, 30, 0, 0, time.UTC)

	t.Run("round-trips metrics and latest NAV", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewSnapshotRepository(db)
		want := sampleSnapshot("000001", base)

		require.NoError(t, repo.InsertSnapshot(ctx, want))

		got, err := repo.GetSnapshots(ctx, "000001", 0)
		require.NoError(t, err)
		require.Len(t, got, 1)

		assert.Equal(t, want.ID, got[0].ID)
		assert.True(t, got[0].TakenAt.Equal(base))
		require.NotNil(t, got[0].LatestNAV)
		assert.InDelta(t, 1.2345, *got[0].LatestNAV, 1e-12)
		require.NotNil(t, got[0].LatestDate)
		assert.Equal(t, "2026-03-02", got[0].LatestDate.Format("2006-01-02"))
		assert.Equal(t, want.Returns, got[0].Returns)
		assert.Equal(t, want.MaxDrawdown, got[0].MaxDrawdown)
		assert.Equal(t, model.StatusInsufficientData, got[0].Sharpe.Status)
	})

	t.Run("returns newest first and honours the limit", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewSnapshotRepository(db)
		// Whole and fractional seconds mixed to check ordering of stored timestamps.
		first := sampleSnapshot("000001", base)
		second := sampleSnapshot("000001", base.Add(1500*time.Millisecond))
		third := sampleSnapshot("000001", base.Add(2*time.Second))
		other := sampleSnapshot("110022", base.Add(time.Hour))
		for _, s := range []model.Snapshot{second, first, other, third} {
			require.NoError(t, repo.InsertSnapshot(ctx, s))
		}

		all, err := repo.GetSnapshots(ctx, "000001", 0)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, []string{third.ID, second.ID, first.ID}, []string{all[0].ID, all[1].ID, all[2].ID})

		limited, err := repo.GetSnapshots(ctx, "000001", 2)
		require.NoError(t, err)
		assert.Len(t, limited, 2)
	})

	t.Run("snapshot without NAV keeps nil pointers", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewSnapshotRepository(db)
		s := sampleSnapshot("000001", base)
		s.LatestDate = nil
		s.LatestNAV = nil

		require.NoError(t, repo.InsertSnapshot(ctx, s))

		got, err := repo.GetSnapshots(ctx, "000001", 0)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Nil(t, got[0].LatestDate)
		assert.Nil(t, got[0].LatestNAV)
	})

	t.Run("unknown fund returns an empty slice", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewSnapshotRepository(db)

		got, err := repo.GetSnapshots(ctx, "999999", 0)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}
