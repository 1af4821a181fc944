package eastmoney

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrMalformedHoldings is returned when the archive response has no content field.
var ErrMalformedHoldings = errors.New("holdings response has no content")

// FetchHoldings returns the stock holdings of the most recent reported quarter.
// The current year's archive is tried first, then the previous year's, since
// the first quarterly report of a year appears weeks after the quarter closes.
// An empty slice means the fund reported no stock positions.
func (c *Client) FetchHoldings(ctx context.Context, fundCode string) ([]HoldingRow, error) {
	year := c.now().In(Shanghai).Year()

	for _, y := range []int{year, year - 1} {
		url := fmt.Sprintf("%s/FundArchivesDatas.aspx?type=jjcc&code=%s&topline=10&year=%d&month=", c.archiveURL, fundCode, y)
		body, err := c.get(ctx, url)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch holdings for %s: %w", fundCode, err)
		}

		rows, err := ParseHoldings(body)
		if err != nil {
			return nil, fmt.Errorf("failed to parse holdings for %s: %w", fundCode, err)
		}
		if len(rows) > 0 {
			return rows, nil
		}
		c.logger.Debug().Str("fund_code", fundCode).Int("year", y).Msg("no holdings reported for year")
	}

	return []HoldingRow{}, nil
}

// ParseHoldings reads the first (latest quarter) table of an archive response of the form
//
//	var apidata={ content:"<div>...</div>",arryear:[...],curyear:2024};
//
// Columns are located by header text so layout changes in unrelated columns are tolerated.
func ParseHoldings(script []byte) ([]HoldingRow, error) {
	content, err := extractContent(script)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(content) == "" {
		return []HoldingRow{}, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, err
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return []HoldingRow{}, nil
	}

	codeCol, nameCol, pctCol := -1, -1, -1
	table.Find("th").Each(func(i int, th *goquery.Selection) {
		switch strings.Join(strings.Fields(th.Text()), "") {
		case columnStockCode:
			codeCol = i
		case columnStockName:
			nameCol = i
		case columnPctOfNAV:
			pctCol = i
		}
	})
	if codeCol < 0 || nameCol < 0 || pctCol < 0 {
		return nil, fmt.Errorf("holdings table is missing expected columns")
	}

	rows := []HoldingRow{}
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("td")
		cell := func(i int) string {
			return strings.TrimSpace(cells.Eq(i).Text())
		}
		if cells.Length() <= max(codeCol, nameCol, pctCol) {
			return
		}
		rows = append(rows, HoldingRow{
			StockCode: cell(codeCol),
			StockName: cell(nameCol),
			PctOfNAV:  cell(pctCol),
		})
	})

	return rows, nil
}

// extractContent returns the unescaped string literal of the content field.
func extractContent(script []byte) (string, error) {
	marker := []byte(`content:"`)
	idx := bytes.Index(script, marker)
	if idx < 0 {
		return "", ErrMalformedHoldings
	}
	rest := script[idx+len(marker):]

	var b strings.Builder
	for i := 0; i < len(rest); i++ {
		ch := rest[i]
		switch ch {
		case '\\':
			if i+1 < len(rest) {
				i++
				b.WriteByte(rest[i])
			}
		case '"':
			return b.String(), nil
		default:
			b.WriteByte(ch)
		}
	}

	return "", fmt.Errorf("%w: unterminated content", ErrMalformedHoldings)
}
