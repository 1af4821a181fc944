package validation

import (
	"fmt"
	"regexp"

	"github.com/ndewijer/fund-analytics/internal/apperrors"
)

var fundCodePattern = regexp.MustCompile(`^[0-9]{6}$`)

// ValidateFundCode checks that a fund code is six ASCII digits.
func ValidateFundCode(code string) error {
	if !fundCodePattern.MatchString(code) {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidFundCode, code)
	}
	return nil
}
