package yahoo

import (
	"fmt"
	"net/url"
	"time"

	"github.com/ternarybob/arbor"
)

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithBaseURL overrides the API base URL. Used by tests to point the
// client at a local server.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithLogger sets a logger.
func WithLogger(logger arbor.ILogger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// QueryOption adds a query parameter to an API request.
type QueryOption func(url.Values)

// WithRange sets the history range (e.g. "1mo", "6mo", "1y").
func WithRange(rng string) QueryOption {
	return func(v url.Values) {
		v.Set("range", rng)
	}
}

// WithInterval sets the bar interval (e.g. "1d", "1wk", "1mo").
func WithInterval(interval string) QueryOption {
	return func(v url.Values) {
		v.Set("interval", interval)
	}
}

// WithModules sets the quoteSummary modules to fetch.
func WithModules(modules string) QueryOption {
	return func(v url.Values) {
		v.Set("modules", modules)
	}
}

// APIError represents an error response from the Yahoo Finance API.
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("yahoo api error: %s returned %d: %s", e.Endpoint, e.StatusCode, e.Message)
}
