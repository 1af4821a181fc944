package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/fund-analytics/internal/model"
)

var hundred = decimal.NewFromInt(100)

// Window is a trailing lookback measured in calendar days.
type Window struct {
	Label        string
	LookbackDays int
}

// DefaultWindows are the standard trailing periods, in display order.
var DefaultWindows = []Window{
	{Label: model.PeriodOneWeek, LookbackDays: 7},
	{Label: model.PeriodOneMonth, LookbackDays: 30},
	{Label: model.PeriodThreeMonth, LookbackDays: 90},
	{Label: model.PeriodOneYear, LookbackDays: 365},
}

// ComputePeriodReturns calculates the percentage change between the latest NAV and
// the last NAV at or before referenceDate minus each window's lookback.
//
// A zero referenceDate means the latest date in the series. The latest value is always
// taken at the series' maximum date, independent of referenceDate.
//
// Outcomes per window:
//   - no_data: the series is empty
//   - insufficient_data: no observation reaches back to the cutoff
//   - invalid_data: the baseline NAV is zero or negative
func ComputePeriodReturns(series model.NAVSeries, referenceDate time.Time, windows []Window) model.PeriodReturns {
	result := make(model.PeriodReturns, 0, len(windows))

	latest, ok := series.Latest()
	if !ok {
		for _, w := range windows {
			result = append(result, model.PeriodReturn{Label: w.Label, Metric: model.MissingMetric(model.StatusNoData)})
		}
		return result
	}

	if referenceDate.IsZero() {
		referenceDate = latest.Date
	}

	for _, w := range windows {
		cutoff := referenceDate.Add(-time.Duration(w.LookbackDays) * 24 * time.Hour)
		result = append(result, model.PeriodReturn{
			Label:  w.Label,
			Metric: periodReturn(series, latest.Value, cutoff),
		})
	}

	return result
}

func periodReturn(series model.NAVSeries, latestValue decimal.Decimal, cutoff time.Time) model.Metric {
	baseline, ok := series.ValueOnOrBefore(cutoff)
	if !ok {
		return model.MissingMetric(model.StatusInsufficientData)
	}
	if !baseline.Value.IsPositive() {
		return model.MissingMetric(model.StatusInvalidData)
	}

	pct := latestValue.Sub(baseline.Value).Div(baseline.Value).Mul(hundred)
	return percentMetric(pct)
}

func percentMetric(pct decimal.Decimal) model.Metric {
	return model.NewMetric(pct.InexactFloat64(), pct.StringFixed(2)+"%")
}
