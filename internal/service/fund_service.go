package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/ndewijer/fund-analytics/internal/analytics"
	"github.com/ndewijer/fund-analytics/internal/eastmoney"
	"github.com/ndewijer/fund-analytics/internal/model"
)

// topHoldingsLimit is the number of holdings rows returned by GetTopHoldings.
const topHoldingsLimit = 5

// FundDataSource retrieves raw fund data from a market-data provider.
// *eastmoney.Client satisfies it; tests use testutil.MockDataSource.
type FundDataSource interface {
	FetchNAVHistory(ctx context.Context, fundCode string) ([]eastmoney.RawNAV, error)
	FetchBasicInfo(ctx context.Context, fundCode string) (map[string]string, error)
	FetchHoldings(ctx context.Context, fundCode string) ([]eastmoney.HoldingRow, error)
}

// FundSettings tunes the analytical operations of FundService.
type FundSettings struct {
	// NAVWindowDays is how far back from now the NAV series reaches.
	NAVWindowDays int
	Risk          analytics.RiskParams
	Windows       []analytics.Window
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// DefaultFundSettings returns a one-year NAV window with the default return windows and risk parameters.
func DefaultFundSettings() FundSettings {
	return FundSettings{
		NAVWindowDays: 365,
		Risk:          analytics.DefaultRiskParams(),
		Windows:       analytics.DefaultWindows,
		Now:           time.Now,
	}
}

// FundService exposes the analytical operations over a fund's data.
//
// Every operation fetches fresh data from the source and never returns an error:
// upstream failures are logged and degraded to empty series, "unknown" info or
// "failed" holdings, and the derived metrics carry the reason in their Status.
type FundService struct {
	source   FundDataSource
	settings FundSettings
	logger   zerolog.Logger
}

// NewFundService creates a new FundService with the provided data source.
// Zero-valued settings fields fall back to DefaultFundSettings.
func NewFundService(source FundDataSource, settings FundSettings, logger zerolog.Logger) *FundService {
	defaults := DefaultFundSettings()
	if settings.NAVWindowDays <= 0 {
		settings.NAVWindowDays = defaults.NAVWindowDays
	}
	if settings.Risk == (analytics.RiskParams{}) {
		settings.Risk = defaults.Risk
	}
	if len(settings.Windows) == 0 {
		settings.Windows = defaults.Windows
	}
	if settings.Now == nil {
		settings.Now = defaults.Now
	}

	return &FundService{
		source:   source,
		settings: settings,
		logger:   logger.With().Str("component", "fund_service").Logger(),
	}
}

// GetNAVSeries loads a fund's NAV history for the trailing window.
//
// Entries whose value cannot be parsed, or is zero or negative, are dropped. The result is
// sorted ascending by date with one point per date (the last reported value wins).
// A failed fetch yields an empty series.
func (s *FundService) GetNAVSeries(ctx context.Context, fundCode string) model.NAVSeries {
	series := model.NAVSeries{FundCode: fundCode, Points: []model.NAVPoint{}}

	raw, err := s.source.FetchNAVHistory(ctx, fundCode)
	if err != nil {
		s.logger.Warn().Err(err).Str("fund_code", fundCode).Str("op", "nav_series").Msg("failed to fetch NAV history")
		return series
	}

	cutoff := s.settings.Now().Add(-time.Duration(s.settings.NAVWindowDays) * 24 * time.Hour)

	dropped := 0
	byDate := make(map[time.Time]int, len(raw))
	for _, entry := range raw {
		if entry.Date.Before(cutoff) {
			continue
		}

		value, err := decimal.NewFromString(strings.TrimSpace(entry.Value))
		if err != nil || !value.IsPositive() {
			dropped++
			continue
		}

		point := model.NAVPoint{Date: entry.Date, Value: value}
		if idx, seen := byDate[entry.Date]; seen {
			series.Points[idx] = point
			continue
		}
		byDate[entry.Date] = len(series.Points)
		series.Points = append(series.Points, point)
	}

	if dropped > 0 {
		s.logger.Debug().Str("fund_code", fundCode).Int("dropped", dropped).Msg("dropped unusable NAV entries")
	}

	sort.Slice(series.Points, func(i, j int) bool {
		return series.Points[i].Date.Before(series.Points[j].Date)
	})

	return series
}

// GetPeriodReturns computes trailing returns from a fresh NAV series, relative to its latest date.
func (s *FundService) GetPeriodReturns(ctx context.Context, fundCode string) model.PeriodReturns {
	series := s.GetNAVSeries(ctx, fundCode)
	return analytics.ComputePeriodReturns(series, time.Time{}, s.settings.Windows)
}

// GetRiskMetrics computes maximum drawdown and the Sharpe ratio from a fresh NAV series.
func (s *FundService) GetRiskMetrics(ctx context.Context, fundCode string) model.RiskMetrics {
	series := s.GetNAVSeries(ctx, fundCode)
	return analytics.ComputeRiskMetrics(series, s.settings.Risk)
}

// Analyze derives returns and risk metrics from an already loaded series.
func (s *FundService) Analyze(series model.NAVSeries) (model.PeriodReturns, model.RiskMetrics) {
	returns := analytics.ComputePeriodReturns(series, time.Time{}, s.settings.Windows)
	risk := analytics.ComputeRiskMetrics(series, s.settings.Risk)
	return returns, risk
}

// GetBasicInfo returns a fund's full name and type.
// Missing fields read "unknown"; a failed fetch marks the result failed with both fields unknown.
func (s *FundService) GetBasicInfo(ctx context.Context, fundCode string) model.BasicInfo {
	unknown := model.StatusUnknown.Placeholder()
	info := model.BasicInfo{
		FundCode: fundCode,
		FullName: unknown,
		FundType: unknown,
	}

	fields, err := s.source.FetchBasicInfo(ctx, fundCode)
	if err != nil {
		s.logger.Warn().Err(err).Str("fund_code", fundCode).Str("op", "basic_info").Msg("failed to fetch basic info")
		info.Status = model.StatusFailed
		return info
	}

	info.Status = model.StatusOK
	if v := strings.TrimSpace(fields[eastmoney.FieldFullName]); v != "" {
		info.FullName = v
	}
	if v := strings.TrimSpace(fields[eastmoney.FieldFundType]); v != "" {
		info.FundType = v
	}
	if info.FullName == unknown && info.FundType == unknown {
		info.Status = model.StatusUnknown
	}

	return info
}

// GetTopHoldings returns the first five holdings of the latest reported quarter as rows
// and as a fixed-width text table.
func (s *FundService) GetTopHoldings(ctx context.Context, fundCode string) model.Holdings {
	holdings := model.Holdings{FundCode: fundCode, Rows: []model.Holding{}}

	rows, err := s.source.FetchHoldings(ctx, fundCode)
	if err != nil {
		s.logger.Warn().Err(err).Str("fund_code", fundCode).Str("op", "top_holdings").Msg("failed to fetch holdings")
		holdings.Status = model.StatusFailed
		holdings.Table = model.StatusFailed.Placeholder()
		return holdings
	}

	if len(rows) == 0 {
		holdings.Status = model.StatusNoData
		holdings.Table = model.StatusNoData.Placeholder()
		return holdings
	}

	if len(rows) > topHoldingsLimit {
		rows = rows[:topHoldingsLimit]
	}
	for _, row := range rows {
		holdings.Rows = append(holdings.Rows, model.Holding{
			StockCode: strings.TrimSpace(row.StockCode),
			StockName: strings.TrimSpace(row.StockName),
			PctOfNAV:  strings.TrimSpace(row.PctOfNAV),
		})
	}

	holdings.Status = model.StatusOK
	holdings.Table = renderHoldingsTable(holdings.Rows)
	return holdings
}

// GetFundReport gathers info, returns, risk and holdings for a fund.
// The NAV series is fetched once and shared by the return and risk calculations.
func (s *FundService) GetFundReport(ctx context.Context, fundCode string) model.FundReport {
	series := s.GetNAVSeries(ctx, fundCode)
	returns, risk := s.Analyze(series)

	return model.FundReport{
		FundCode:    fundCode,
		GeneratedAt: s.settings.Now().UTC(),
		Info:        s.GetBasicInfo(ctx, fundCode),
		Series:      series,
		Returns:     returns,
		Risk:        risk,
		Holdings:    s.GetTopHoldings(ctx, fundCode),
	}
}
