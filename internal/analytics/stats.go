package analytics

import (
	"gonum.org/v1/gonum/stat"

	"github.com/ndewijer/fund-analytics/internal/model"
)

// DailyReturns converts consecutive NAVs into simple returns, r[i] = (v[i+1] - v[i]) / v[i].
// The result has one element fewer than the series. ok is false if any divisor is not positive.
func DailyReturns(series model.NAVSeries) ([]float64, bool) {
	if series.Len() < 2 {
		return []float64{}, true
	}

	returns := make([]float64, series.Len()-1)
	prev := series.Points[0].Value.InexactFloat64()
	for i := 1; i < series.Len(); i++ {
		if prev <= 0 {
			return nil, false
		}
		cur := series.Points[i].Value.InexactFloat64()
		returns[i-1] = (cur - prev) / prev
		prev = cur
	}

	return returns, true
}

// Mean is the arithmetic mean. Empty input yields 0.
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.Mean(data, nil)
}

// SampleStdDev is the unbiased (n-1) standard deviation. Fewer than two values yield 0.
func SampleStdDev(data []float64) float64 {
	if len(data) < 2 {
		return 0
	}
	return stat.StdDev(data, nil)
}
