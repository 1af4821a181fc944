package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/fund-analytics/internal/model"
)

var shanghai = time.FixedZone("CST", 8*60*60)

func day(offset int) time.Time {
	return time.Date(2025, time.March, 3, 0, 0, 0, 0, shanghai).AddDate(0, 0, offset)
}

// seriesOf builds a series with one point per day starting at day(0).
func seriesOf(t *testing.T, values ...string) model.NAVSeries {
	t.Helper()
	points := make([]model.NAVPoint, len(values))
	for i, v := range values {
		points[i] = model.NAVPoint{Date: day(i), Value: decimal.RequireFromString(v)}
	}
	return model.NAVSeries{FundCode: "000001", Points: points}
}

// sparseSeries builds a series from day offsets and values.
func sparseSeries(t *testing.T, offsets []int, values []string) model.NAVSeries {
	t.Helper()
	if len(offsets) != len(values) {
		t.Fatalf("offsets and values differ in length: %d vs %d", len(offsets), len(values))
	}
	points := make([]model.NAVPoint, len(values))
	for i := range values {
		points[i] = model.NAVPoint{Date: day(offsets[i]), Value: decimal.RequireFromString(values[i])}
	}
	return model.NAVSeries{FundCode: "000001", Points: points}
}
