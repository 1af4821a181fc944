package eastmoney

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrNoNAVData is returned when the NAV script carries no Data_netWorthTrend array.
var ErrNoNAVData = errors.New("no net worth trend in response")

var netWorthVar = []byte("Data_netWorthTrend")

// FetchNAVHistory returns the complete unit NAV history of a fund, oldest first as published.
func (c *Client) FetchNAVHistory(ctx context.Context, fundCode string) ([]RawNAV, error) {
	url := fmt.Sprintf("%s/pingzhongdata/%s.js?v=%d", c.baseURL, fundCode, c.now().Unix())
	body, err := c.get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch nav history for %s: %w", fundCode, err)
	}

	navs, err := ParseNetWorthTrend(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse nav history for %s: %w", fundCode, err)
	}

	return navs, nil
}

// ParseNetWorthTrend extracts the Data_netWorthTrend array from a pingzhongdata script.
// Each element's x is an epoch-millisecond timestamp, converted to a date in Shanghai time.
func ParseNetWorthTrend(script []byte) ([]RawNAV, error) {
	raw, err := extractJSArray(script, netWorthVar)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var points []netWorthPoint
	if err := dec.Decode(&points); err != nil {
		return nil, fmt.Errorf("failed to decode net worth trend: %w", err)
	}

	navs := make([]RawNAV, 0, len(points))
	for _, p := range points {
		navs = append(navs, RawNAV{
			Date:  tradingDate(p.X),
			Value: valueText(p.Y),
		})
	}

	return navs, nil
}

// extractJSArray returns the bracketed literal assigned to name in a script like
// `var name = [ ... ];`.
func extractJSArray(script, name []byte) ([]byte, error) {
	idx := bytes.Index(script, name)
	if idx < 0 {
		return nil, ErrNoNAVData
	}
	rest := script[idx+len(name):]

	start := bytes.IndexByte(rest, '[')
	if start < 0 {
		return nil, ErrNoNAVData
	}
	if eq := bytes.IndexByte(rest, '='); eq < 0 || eq > start {
		return nil, ErrNoNAVData
	}

	depth := 0
	inString := false
	for i := start; i < len(rest); i++ {
		ch := rest[i]
		switch {
		case inString:
			if ch == '\\' {
				i++
			} else if ch == '"' {
				inString = false
			}
		case ch == '"':
			inString = true
		case ch == '[':
			depth++
		case ch == ']':
			depth--
			if depth == 0 {
				return rest[start : i+1], nil
			}
		}
	}

	return nil, fmt.Errorf("%w: unterminated array", ErrNoNAVData)
}

func tradingDate(epochMillis int64) time.Time {
	t := time.UnixMilli(epochMillis).In(Shanghai)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, Shanghai)
}

func valueText(v any) string {
	switch val := v.(type) {
	case json.Number:
		return val.String()
	case string:
		return val
	default:
		return ""
	}
}
