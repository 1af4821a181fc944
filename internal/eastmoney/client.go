// Package eastmoney fetches open-end fund data from Eastmoney's public fund pages.
//
// Three resources are used:
//   - pingzhongdata/{code}.js: a JavaScript file whose Data_netWorthTrend variable holds the unit NAV history
//   - jbgk_{code}.html: the fund overview page with a key/value info table
//   - FundArchivesDatas.aspx?type=jjcc: quarterly stock holdings as an HTML fragment wrapped in JavaScript
//
// None of these endpoints require authentication.
package eastmoney

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL serves the NAV history scripts.
	DefaultBaseURL = "https://fund.eastmoney.com"

	// DefaultArchiveURL serves the overview pages and holdings archives.
	DefaultArchiveURL = "https://fundf10.eastmoney.com"

	// DefaultTimeout is the per-request HTTP timeout.
	DefaultTimeout = 15 * time.Second

	maxBodyBytes = 16 << 20
)

// Shanghai is the time zone Eastmoney dates are reported in.
var Shanghai = time.FixedZone("Asia/Shanghai", 8*60*60)

// Client fetches fund data from Eastmoney.
type Client struct {
	baseURL    string
	archiveURL string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     zerolog.Logger
	now        func() time.Time
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithBaseURL sets the host serving pingzhongdata scripts.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithArchiveURL sets the host serving overview pages and holdings.
func WithArchiveURL(archiveURL string) ClientOption {
	return func(c *Client) {
		c.archiveURL = archiveURL
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the HTTP timeout of the default client.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithRateLimit caps outgoing requests per second. Zero or less disables the limit.
func WithRateLimit(requestsPerSecond float64) ClientOption {
	return func(c *Client) {
		if requestsPerSecond <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		burst := int(requestsPerSecond)
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), burst)
	}
}

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithClock overrides the clock used to pick the holdings report year.
func WithClock(now func() time.Time) ClientOption {
	return func(c *Client) {
		c.now = now
	}
}

// NewClient creates a new Eastmoney client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		archiveURL: DefaultArchiveURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Inf, 0),
		logger:     zerolog.Nop(),
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// APIError is returned when Eastmoney answers with a non-200 status.
type APIError struct {
	StatusCode int
	URL        string
	Preview    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("eastmoney returned %d for %s: %s", e.StatusCode, e.URL, e.Preview)
}

// get performs a GET request and returns the response body.
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Referer", c.baseURL+"/")
	req.Header.Set("Accept", "*/*")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug().
		Str("url", url).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Int("bytes", len(body)).
		Msg("eastmoney request")

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, URL: url, Preview: preview(body)}
	}

	return body, nil
}

func preview(body []byte) string {
	if len(body) > 120 {
		return string(body[:120])
	}
	return string(body)
}
