package model

import "time"

// Snapshot is an archived analytics result for a fund.
type Snapshot struct {
	ID          string        `json:"id"`
	FundCode    string        `json:"fundCode"`
	TakenAt     time.Time     `json:"takenAt"`
	LatestDate  *time.Time    `json:"latestDate,omitempty"`
	LatestNAV   *float64      `json:"latestNav,omitempty"`
	Returns     PeriodReturns `json:"returns"`
	MaxDrawdown Metric        `json:"maxDrawdown"`
	Sharpe      Metric        `json:"sharpe"`
}

// WatchlistEntry is a fund tracked by the snapshot job.
type WatchlistEntry struct {
	FundCode string    `json:"fundCode"`
	Note     string    `json:"note"`
	AddedAt  time.Time `json:"addedAt"`
}

// FundReport bundles every analytical result for one fund.
type FundReport struct {
	FundCode    string        `json:"fundCode"`
	GeneratedAt time.Time     `json:"generatedAt"`
	Info        BasicInfo     `json:"info"`
	Series      NAVSeries     `json:"series"`
	Returns     PeriodReturns `json:"returns"`
	Risk        RiskMetrics   `json:"risk"`
	Holdings    Holdings      `json:"holdings"`
}
