package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// NAVPoint is the unit net asset value of a fund on a single trading day.
type NAVPoint struct {
	Date  time.Time       `json:"date"`
	Value decimal.Decimal `json:"value"`
}

// NAVSeries is a date-ordered NAV history. Dates are unique and ascending.
type NAVSeries struct {
	FundCode string     `json:"fundCode"`
	Points   []NAVPoint `json:"points"`
}

// Len returns the number of points in the series.
func (s NAVSeries) Len() int {
	return len(s.Points)
}

// IsEmpty reports whether the series has no points.
func (s NAVSeries) IsEmpty() bool {
	return len(s.Points) == 0
}

// Latest returns the point with the greatest date.
// The boolean is false for an empty series.
func (s NAVSeries) Latest() (NAVPoint, bool) {
	if len(s.Points) == 0 {
		return NAVPoint{}, false
	}
	return s.Points[len(s.Points)-1], true
}

// ValueOnOrBefore returns the last observation dated at or before target.
// Assumes points are sorted ASC.
func (s NAVSeries) ValueOnOrBefore(target time.Time) (NAVPoint, bool) {
	var found NAVPoint
	ok := false
	for _, p := range s.Points {
		if p.Date.After(target) {
			break
		}
		found = p
		ok = true
	}
	return found, ok
}

// BasicInfo holds the descriptive fields of a fund.
type BasicInfo struct {
	FundCode string `json:"fundCode"`
	FullName string `json:"fullName"`
	FundType string `json:"fundType"`
	Status   Status `json:"status"`
}
