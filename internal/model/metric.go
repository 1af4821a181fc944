package model

// Status tags the outcome of a derived value.
type Status string

const (
	StatusOK               Status = "ok"
	StatusNoData           Status = "no_data"
	StatusInsufficientData Status = "insufficient_data"
	StatusUnknown          Status = "unknown"
	StatusFailed           Status = "failed"
	StatusInvalidData      Status = "invalid_data"
)

// Placeholder is the text shown in place of a value that could not be produced.
func (s Status) Placeholder() string {
	switch s {
	case StatusNoData:
		return "no data"
	case StatusInsufficientData:
		return "insufficient data"
	case StatusUnknown:
		return "unknown"
	case StatusFailed:
		return "failed"
	case StatusInvalidData:
		return "invalid data"
	default:
		return ""
	}
}

// Metric is a computed value or the reason it is missing.
// Value is only set when Status is StatusOK. Display always holds printable text.
type Metric struct {
	Status  Status   `json:"status"`
	Value   *float64 `json:"value,omitempty"`
	Display string   `json:"display"`
}

// OK reports whether the metric carries a value.
func (m Metric) OK() bool {
	return m.Status == StatusOK
}

// NewMetric builds a successful metric.
func NewMetric(value float64, display string) Metric {
	return Metric{Status: StatusOK, Value: &value, Display: display}
}

// MissingMetric builds a metric without a value.
func MissingMetric(status Status) Metric {
	return Metric{Status: status, Display: status.Placeholder()}
}

// Period labels used for trailing returns.
const (
	PeriodOneWeek    = "1-week"
	PeriodOneMonth   = "1-month"
	PeriodThreeMonth = "3-month"
	PeriodOneYear    = "1-year"
)

// PeriodReturn is the trailing return for one lookback window.
type PeriodReturn struct {
	Label  string `json:"label"`
	Metric Metric `json:"metric"`
}

// PeriodReturns is the ordered set of trailing returns.
type PeriodReturns []PeriodReturn

// Get returns the metric for a label.
func (p PeriodReturns) Get(label string) (Metric, bool) {
	for _, r := range p {
		if r.Label == label {
			return r.Metric, true
		}
	}
	return Metric{}, false
}

// RiskMetrics holds maximum drawdown (percent, non-positive) and the Sharpe ratio.
type RiskMetrics struct {
	MaxDrawdown Metric `json:"maxDrawdown"`
	Sharpe      Metric `json:"sharpe"`
}
