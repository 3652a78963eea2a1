// Package yahoo is a minimal client for the public Yahoo Finance JSON
// endpoints used by the comparison dashboard: quoteSummary for company
// info and fundamentals, chart for price history.
package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ternarybob/arbor"
)

const (
	defaultBaseURL = "https://query1.finance.yahoo.com"
	defaultTimeout = 30 * time.Second

	// Yahoo rejects requests without a browser user agent.
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
)

// Client calls the Yahoo Finance API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     arbor.ILogger
}

// NewClient creates a Yahoo Finance client with the given options.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// get performs a GET request against path and decodes the JSON body
// into out. Non-2xx responses become an *APIError.
func (c *Client) get(ctx context.Context, path string, out interface{}, opts ...QueryOption) error {
	params := url.Values{}
	for _, opt := range opts {
		opt(params)
	}

	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	if c.logger != nil {
		c.logger.Debug().
			Str("endpoint", path).
			Msg("Yahoo Finance API request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
			Endpoint:   path,
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// GetQuoteSummary fetches the quoteSummary modules for a symbol.
// Returns an *APIError when the API reports an error for the symbol.
func (c *Client) GetQuoteSummary(ctx context.Context, symbol string, opts ...QueryOption) (*QuoteSummaryResult, error) {
	path := "/v10/finance/quoteSummary/" + url.PathEscape(symbol)

	var resp QuoteSummaryResponse
	if err := c.get(ctx, path, &resp, opts...); err != nil {
		return nil, err
	}

	if resp.QuoteSummary.Error != nil {
		return nil, &APIError{
			StatusCode: http.StatusNotFound,
			Message:    resp.QuoteSummary.Error.Description,
			Endpoint:   path,
		}
	}
	if len(resp.QuoteSummary.Result) == 0 {
		return nil, &APIError{
			StatusCode: http.StatusNotFound,
			Message:    "no result for symbol " + symbol,
			Endpoint:   path,
		}
	}
	return &resp.QuoteSummary.Result[0], nil
}

// GetChart fetches price history bars for a symbol. Range and interval
// are set through WithRange and WithInterval.
func (c *Client) GetChart(ctx context.Context, symbol string, opts ...QueryOption) (*ChartResult, error) {
	path := "/v8/finance/chart/" + url.PathEscape(symbol)

	var resp ChartResponse
	if err := c.get(ctx, path, &resp, opts...); err != nil {
		return nil, err
	}

	if resp.Chart.Error != nil {
		return nil, &APIError{
			StatusCode: http.StatusNotFound,
			Message:    resp.Chart.Error.Description,
			Endpoint:   path,
		}
	}
	if len(resp.Chart.Result) == 0 {
		return nil, &APIError{
			StatusCode: http.StatusNotFound,
			Message:    "no chart data for symbol " + symbol,
			Endpoint:   path,
		}
	}
	return &resp.Chart.Result[0], nil
}
