package validation

import (
	"strings"

	"github.com/ndewijer/fund-analytics/internal/api/request"
)

// ValidateAddWatchlist validates a request to watch a fund.
func ValidateAddWatchlist(req request.AddWatchlistRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.FundCode) == "" {
		errors["fundCode"] = "fund code is required"
	} else if err := ValidateFundCode(req.FundCode); err != nil {
		errors["fundCode"] = "fund code must be 6 digits"
	}

	// optional
	if len(req.Note) > 200 {
		errors["note"] = "note must be 200 characters or less"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
