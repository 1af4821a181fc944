package testutil

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/ndewijer/fund-analytics/internal/eastmoney"
	"github.com/ndewijer/fund-analytics/internal/model"
)

// WatchlistEntryBuilder provides a fluent interface for creating watched funds.
//
// Example usage:
//
//	// Simple creation with defaults
//	entry := testutil.NewWatchlistEntry().Build(t, db)
//
//	// Customized entry
//	entry := testutil.NewWatchlistEntry().
//	    WithFundCode("110022").
//	    WithNote("consumer").
//	    Build(t, db)
type WatchlistEntryBuilder struct {
	FundCode string
	Note     string
	AddedAt  time.Time
}

// NewWatchlistEntry creates a WatchlistEntryBuilder with sensible defaults.
func NewWatchlistEntry() *WatchlistEntryBuilder {
	return &WatchlistEntryBuilder{
		FundCode: MakeFundCode(),
		Note:     "Test note",
		AddedAt:  time.Now().UTC().Truncate(time.Second),
	}
}

// WithFundCode sets a custom fund code.
func (b *WatchlistEntryBuilder) WithFundCode(code string) *WatchlistEntryBuilder {
	b.FundCode = code
	return b
}

// WithNote sets a custom note.
func (b *WatchlistEntryBuilder) WithNote(note string) *WatchlistEntryBuilder {
	b.Note = note
	return b
}

// WithAddedAt sets when the fund was added.
func (b *WatchlistEntryBuilder) WithAddedAt(addedAt time.Time) *WatchlistEntryBuilder {
	b.AddedAt = addedAt.UTC()
	return b
}

// Build inserts the watchlist entry into the database and returns it.
func (b *WatchlistEntryBuilder) Build(t *testing.T, db *sql.DB) model.WatchlistEntry {
	t.Helper()

	query := `
		INSERT INTO watchlist (fund_code, note, added_at)
		VALUES (?, ?, ?)
	`

	_, err := db.Exec(query, b.FundCode, b.Note, b.AddedAt.Format("2006-01-02T15:04:05.000000000Z07:00"))
	if err != nil {
		t.Fatalf("Failed to create test watchlist entry: %v", err)
	}

	return model.WatchlistEntry{
		FundCode: b.FundCode,
		Note:     b.Note,
		AddedAt:  b.AddedAt,
	}
}

// WatchFund puts a fund code on the watchlist with default values.
//
// Example usage:
//
//	testutil.WatchFund(t, db, "000001")
func WatchFund(t *testing.T, db *sql.DB, fundCode string) model.WatchlistEntry {
	t.Helper()
	return NewWatchlistEntry().WithFundCode(fundCode).Build(t, db)
}

// DailyNAV builds one raw NAV entry per calendar day starting at start.
//
// Example usage:
//
//	rows := testutil.DailyNAV(testutil.Today().AddDate(0, 0, -2), "1.00", "1.01", "1.02")
func DailyNAV(start time.Time, values ...string) []eastmoney.RawNAV {
	rows := make([]eastmoney.RawNAV, 0, len(values))
	for i, v := range values {
		rows = append(rows, eastmoney.RawNAV{Date: start.AddDate(0, 0, i), Value: v})
	}
	return rows
}

// TrendingNAV builds days consecutive entries ending at end, growing by step each day from base.
func TrendingNAV(end time.Time, days int, base, step float64) []eastmoney.RawNAV {
	rows := make([]eastmoney.RawNAV, 0, days)
	start := end.AddDate(0, 0, -(days - 1))
	for i := 0; i < days; i++ {
		rows = append(rows, eastmoney.RawNAV{
			Date:  start.AddDate(0, 0, i),
			Value: fmt.Sprintf("%.4f", base+step*float64(i)),
		})
	}
	return rows
}

// Today returns midnight of the current day in the provider's time zone.
func Today() time.Time {
	now := time.Now().In(eastmoney.Shanghai)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, eastmoney.Shanghai)
}

// SampleInfo returns overview fields for a typical fund.
func SampleInfo() map[string]string {
	return map[string]string{
		eastmoney.FieldFullName: "华夏成长证券投资基金",
		eastmoney.FieldFundType: "混合型-偏股",
		"基金代码":                  "000001（前端）",
	}
}

// SampleHoldings returns count holdings rows with distinct stock codes.
func SampleHoldings(count int) []eastmoney.HoldingRow {
	names := []string{"贵州茅台", "宁德时代", "招商银行", "中国平安", "美的集团", "五粮液", "腾讯控股", "比亚迪"}
	rows := make([]eastmoney.HoldingRow, 0, count)
	for i := 0; i < count; i++ {
		rows = append(rows, eastmoney.HoldingRow{
			StockCode: fmt.Sprintf("%06d", 600000+i),
			StockName: names[i%len(names)],
			PctOfNAV:  fmt.Sprintf("%.2f%%", 9.5-float64(i)),
		})
	}
	return rows
}
