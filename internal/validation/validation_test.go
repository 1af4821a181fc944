package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ndewijer/fund-analytics/internal/api/request"
	"github.com/ndewijer/fund-analytics/internal/apperrors"
)

func TestValidateFundCode(t *testing.T) {
	valid := []string{"000001", "110022", "519736"}
	for _, code := range valid {
		assert.NoError(t, ValidateFundCode(code), code)
	}

	invalid := []string{"", "00001", "0000011", "00000a", " 000001", "１２３４５６"}
	for _, code := range invalid {
		err := ValidateFundCode(code)
		assert.True(t, errors.Is(err, apperrors.ErrInvalidFundCode), code)
	}
}

func TestValidateAddWatchlist(t *testing.T) {
	t.Run("accepts a valid request", func(t *testing.T) {
		assert.NoError(t, ValidateAddWatchlist(request.AddWatchlistRequest{FundCode: "000001", Note: "core"}))
	})

	t.Run("reports every invalid field", func(t *testing.T) {
		err := ValidateAddWatchlist(request.AddWatchlistRequest{FundCode: "abc", Note: strings.Repeat("x", 201)})

		var verr *Error
		if assert.ErrorAs(t, err, &verr) {
			assert.Contains(t, verr.Fields, "fundCode")
			assert.Contains(t, verr.Fields, "note")
		}
	})

	t.Run("missing fund code is required", func(t *testing.T) {
		err := ValidateAddWatchlist(request.AddWatchlistRequest{})

		var verr *Error
		if assert.ErrorAs(t, err, &verr) {
			assert.Equal(t, "fund code is required", verr.Fields["fundCode"])
		}
	})
}
