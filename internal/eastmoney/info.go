package eastmoney

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// FetchBasicInfo returns the key/value pairs of a fund's overview table,
// keyed by the Chinese field label (see FieldFullName, FieldFundType).
func (c *Client) FetchBasicInfo(ctx context.Context, fundCode string) (map[string]string, error) {
	url := fmt.Sprintf("%s/jbgk_%s.html", c.archiveURL, fundCode)
	body, err := c.get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch basic info for %s: %w", fundCode, err)
	}

	info, err := ParseBasicInfo(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse basic info for %s: %w", fundCode, err)
	}

	return info, nil
}

// ParseBasicInfo reads th/td pairs from the overview page's info table.
func ParseBasicInfo(page []byte) (map[string]string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return nil, err
	}

	info := make(map[string]string)
	doc.Find("table.info th").Each(func(_ int, th *goquery.Selection) {
		key := strings.TrimSpace(th.Text())
		if key == "" {
			return
		}
		td := th.NextFiltered("td")
		if td.Length() == 0 {
			return
		}
		info[key] = strings.TrimSpace(td.Text())
	})

	return info, nil
}
