package service

import (
	"errors"
	"time"

	"github.com/ndewijer/fund-analytics/internal/apperrors"
	"github.com/ndewijer/fund-analytics/internal/model"
)

func isNotWatched(err error) bool {
	return errors.Is(err, apperrors.ErrFundNotWatched)
}

// buildSnapshot captures the analytics of a series at a point in time.
func buildSnapshot(id string, series model.NAVSeries, returns model.PeriodReturns, risk model.RiskMetrics, takenAt time.Time) model.Snapshot {
	snapshot := model.Snapshot{
		ID:          id,
		FundCode:    series.FundCode,
		TakenAt:     takenAt.UTC(),
		Returns:     returns,
		MaxDrawdown: risk.MaxDrawdown,
		Sharpe:      risk.Sharpe,
	}

	if latest, ok := series.Latest(); ok {
		date := latest.Date
		nav := latest.Value.InexactFloat64()
		snapshot.LatestDate = &date
		snapshot.LatestNAV = &nav
	}

	return snapshot
}
