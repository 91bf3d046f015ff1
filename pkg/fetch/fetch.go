// Package fetch downloads wiki pages and artwork over HTTP with polite pacing.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dixieflatline76/Starpaper/util/log"
	"golang.org/x/time/rate"
)

// DefaultMaxBodySize caps a single response. Character art tops out around 10 MB.
const DefaultMaxBodySize = 64 << 20

// ErrTooLarge is returned when a body exceeds the configured cap.
var ErrTooLarge = errors.New("response body too large")

// StatusError is returned for any non-200 response.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: status %d", e.URL, e.StatusCode)
}

// Getter downloads a URL into memory.
type Getter interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Options configures a Client.
type Options struct {
	Interval    time.Duration // minimum spacing between requests, 0 disables pacing
	MaxBodySize int64
}

// Client is a Getter backed by an http.Client.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	maxBody    int64
}

// NewClient creates a Client. A nil httpClient uses http.DefaultClient;
// see NewHTTPClient for one that identifies itself.
func NewClient(httpClient *http.Client, opts Options) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	limiter := rate.NewLimiter(rate.Inf, 1)
	if opts.Interval > 0 {
		limiter = rate.NewLimiter(rate.Every(opts.Interval), 1)
	}
	maxBody := opts.MaxBodySize
	if maxBody <= 0 {
		maxBody = DefaultMaxBodySize
	}
	return &Client{
		httpClient: httpClient,
		limiter:    limiter,
		maxBody:    maxBody,
	}
}

// Get fetches url and returns the whole body.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	log.Debugf("GET %s", url)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", url, err)
	}
	if int64(len(body)) > c.maxBody {
		return nil, fmt.Errorf("%s: %w", url, ErrTooLarge)
	}
	return body, nil
}
