package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/ndewijer/fund-analytics/internal/model"
)

// SnapshotRepository provides data access methods for the fund_snapshot table.
// Snapshots are append-only.
type SnapshotRepository struct {
	db *sql.DB
}

// NewSnapshotRepository creates a new SnapshotRepository with the provided database connection.
func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// InsertSnapshot stores a snapshot. Metrics are stored as JSON documents.
func (r *SnapshotRepository) InsertSnapshot(ctx context.Context, s model.Snapshot) error {
	returns, err := json.Marshal(s.Returns)
	if err != nil {
		return fmt.Errorf("failed to encode returns: %w", err)
	}
	drawdown, err := json.Marshal(s.MaxDrawdown)
	if err != nil {
		return fmt.Errorf("failed to encode max drawdown: %w", err)
	}
	sharpe, err := json.Marshal(s.Sharpe)
	if err != nil {
		return fmt.Errorf("failed to encode sharpe: %w", err)
	}

	var latestDate sql.NullString
	if s.LatestDate != nil {
		latestDate = sql.NullString{String: s.LatestDate.Format("2006-01-02"), Valid: true}
	}
	var latestNAV sql.NullFloat64
	if s.LatestNAV != nil {
		latestNAV = sql.NullFloat64{Float64: *s.LatestNAV, Valid: true}
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO fund_snapshot (id, fund_code, taken_at, latest_date, latest_nav, returns, max_drawdown, sharpe)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, s.ID, s.FundCode, formatTime(s.TakenAt), latestDate, latestNAV, string(returns), string(drawdown), string(sharpe))
	if err != nil {
		return fmt.Errorf("failed to insert snapshot: %w", err)
	}
	return nil
}

// GetSnapshots returns the most recent snapshots of a fund, newest first.
// A limit of zero or less returns all snapshots.
func (r *SnapshotRepository) GetSnapshots(ctx context.Context, fundCode string, limit int) ([]model.Snapshot, error) {
	query := `
		SELECT id, fund_code, taken_at, latest_date, latest_nav, returns, max_drawdown, sharpe
		FROM fund_snapshot
		WHERE fund_code = ?
		ORDER BY taken_at DESC
	`
	args := []any{fundCode}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query fund_snapshot table: %w", err)
	}
	defer rows.Close()

	snapshots := []model.Snapshot{}
	for rows.Next() {
		s, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fund_snapshot table: %w", err)
	}

	return snapshots, nil
}

func scanSnapshot(rows *sql.Rows) (model.Snapshot, error) {
	var (
		s                         model.Snapshot
		takenAt                   string
		latestDate                sql.NullString
		latestNAV                 sql.NullFloat64
		returns, drawdown, sharpe string
	)

	if err := rows.Scan(&s.ID, &s.FundCode, &takenAt, &latestDate, &latestNAV, &returns, &drawdown, &sharpe); err != nil {
		return model.Snapshot{}, fmt.Errorf("failed to scan fund_snapshot table results: %w", err)
	}

	var err error
	if s.TakenAt, err = ParseTime(takenAt); err != nil {
		return model.Snapshot{}, err
	}
	if latestDate.Valid {
		d, err := ParseTime(latestDate.String)
		if err != nil {
			return model.Snapshot{}, err
		}
		s.LatestDate = &d
	}
	if latestNAV.Valid {
		v := latestNAV.Float64
		s.LatestNAV = &v
	}

	if err := json.Unmarshal([]byte(returns), &s.Returns); err != nil {
		return model.Snapshot{}, fmt.Errorf("failed to decode returns: %w", err)
	}
	if err := json.Unmarshal([]byte(drawdown), &s.MaxDrawdown); err != nil {
		return model.Snapshot{}, fmt.Errorf("failed to decode max drawdown: %w", err)
	}
	if err := json.Unmarshal([]byte(sharpe), &s.Sharpe); err != nil {
		return model.Snapshot{}, fmt.Errorf("failed to decode sharpe: %w", err)
	}

	return s, nil
}
