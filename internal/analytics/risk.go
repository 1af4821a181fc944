package analytics

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/fund-analytics/internal/model"
)

// RiskParams controls the Sharpe ratio calculation.
type RiskParams struct {
	RiskFreeRate    float64 // annual, as a decimal
	TradingDays     int     // periods per year used for annualization
	MinObservations int     // minimum number of daily returns
}

// DefaultRiskParams uses a 3% annual risk-free rate, 252 trading days and 30 observations.
func DefaultRiskParams() RiskParams {
	return RiskParams{
		RiskFreeRate:    0.03,
		TradingDays:     252,
		MinObservations: 30,
	}
}

// ComputeRiskMetrics returns the maximum drawdown and Sharpe ratio of a series.
func ComputeRiskMetrics(series model.NAVSeries, params RiskParams) model.RiskMetrics {
	if series.IsEmpty() {
		return model.RiskMetrics{
			MaxDrawdown: model.MissingMetric(model.StatusNoData),
			Sharpe:      model.MissingMetric(model.StatusNoData),
		}
	}

	return model.RiskMetrics{
		MaxDrawdown: MaxDrawdown(series),
		Sharpe:      SharpeRatio(series, params),
	}
}

// MaxDrawdown is the most negative percentage decline from the running maximum.
// A series that never falls below its running maximum yields 0.
func MaxDrawdown(series model.NAVSeries) model.Metric {
	if series.IsEmpty() {
		return model.MissingMetric(model.StatusNoData)
	}

	runningMax := series.Points[0].Value
	worst := decimal.Zero
	for _, p := range series.Points {
		if p.Value.GreaterThan(runningMax) {
			runningMax = p.Value
		}
		if !runningMax.IsPositive() {
			return model.MissingMetric(model.StatusInvalidData)
		}
		drawdown := p.Value.Sub(runningMax).Div(runningMax).Mul(hundred)
		if drawdown.LessThan(worst) {
			worst = drawdown
		}
	}

	return percentMetric(worst)
}

// SharpeRatio annualizes the mean and volatility of simple daily returns:
//
//	(mean * T - rf) / (stddev * sqrt(T))
//
// The risk-free rate is subtracted from the annualized mean as is, not scaled per period.
// A flat series (zero volatility) yields 0.
func SharpeRatio(series model.NAVSeries, params RiskParams) model.Metric {
	if series.IsEmpty() {
		return model.MissingMetric(model.StatusNoData)
	}

	returns, ok := DailyReturns(series)
	if !ok {
		return model.MissingMetric(model.StatusInvalidData)
	}
	if len(returns) < params.MinObservations || len(returns) < 2 {
		return model.MissingMetric(model.StatusInsufficientData)
	}

	mean := Mean(returns)
	stdDev := SampleStdDev(returns)

	sharpe := 0.0
	if stdDev != 0 {
		days := float64(params.TradingDays)
		sharpe = (mean*days - params.RiskFreeRate) / (stdDev * math.Sqrt(days))
	}

	return model.NewMetric(sharpe, fmt.Sprintf("%.2f", sharpe))
}
