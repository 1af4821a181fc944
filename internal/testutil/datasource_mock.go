package testutil

import (
	"context"
	"sync"

	"github.com/ndewijer/fund-analytics/internal/eastmoney"
)

// MockDataSource is an in-memory service.FundDataSource.
// Data and errors are keyed by fund code; unknown codes return empty results.
// It is safe for concurrent use.
type MockDataSource struct {
	mu sync.Mutex

	NAV      map[string][]eastmoney.RawNAV
	Info     map[string]map[string]string
	Holdings map[string][]eastmoney.HoldingRow

	// NAVError, InfoError and HoldingsError are returned for every fund when set.
	NAVError      error
	InfoError     error
	HoldingsError error

	NAVCalls      int
	InfoCalls     int
	HoldingsCalls int
}

// NewMockDataSource creates an empty mock data source.
func NewMockDataSource() *MockDataSource {
	return &MockDataSource{
		NAV:      make(map[string][]eastmoney.RawNAV),
		Info:     make(map[string]map[string]string),
		Holdings: make(map[string][]eastmoney.HoldingRow),
	}
}

// WithNAV sets the NAV history returned for a fund.
func (m *MockDataSource) WithNAV(fundCode string, rows []eastmoney.RawNAV) *MockDataSource {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.NAV[fundCode] = rows
	return m
}

// WithInfo sets the overview fields returned for a fund.
func (m *MockDataSource) WithInfo(fundCode string, fields map[string]string) *MockDataSource {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Info[fundCode] = fields
	return m
}

// WithHoldings sets the holdings rows returned for a fund.
func (m *MockDataSource) WithHoldings(fundCode string, rows []eastmoney.HoldingRow) *MockDataSource {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Holdings[fundCode] = rows
	return m
}

// WithError makes every fetch fail with err.
func (m *MockDataSource) WithError(err error) *MockDataSource {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.NAVError = err
	m.InfoError = err
	m.HoldingsError = err
	return m
}

// FetchNAVHistory returns the configured NAV history.
func (m *MockDataSource) FetchNAVHistory(_ context.Context, fundCode string) ([]eastmoney.RawNAV, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.NAVCalls++
	if m.NAVError != nil {
		return nil, m.NAVError
	}
	return append([]eastmoney.RawNAV(nil), m.NAV[fundCode]...), nil
}

// FetchBasicInfo returns the configured overview fields.
func (m *MockDataSource) FetchBasicInfo(_ context.Context, fundCode string) (map[string]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InfoCalls++
	if m.InfoError != nil {
		return nil, m.InfoError
	}
	fields := make(map[string]string, len(m.Info[fundCode]))
	for k, v := range m.Info[fundCode] {
		fields[k] = v
	}
	return fields, nil
}

// FetchHoldings returns the configured holdings rows.
func (m *MockDataSource) FetchHoldings(_ context.Context, fundCode string) ([]eastmoney.HoldingRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.HoldingsCalls++
	if m.HoldingsError != nil {
		return nil, m.HoldingsError
	}
	return append([]eastmoney.HoldingRow(nil), m.Holdings[fundCode]...), nil
}

// Calls returns the number of fetches per kind.
func (m *MockDataSource) Calls() (nav, info, holdings int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.NAVCalls, m.InfoCalls, m.HoldingsCalls
}
