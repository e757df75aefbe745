package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// DefaultUserAgent is the desktop browser User-Agent the NetEase API expects.
const DefaultUserAgent = "Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:61.0) Gecko/20100101 Firefox/61.0"

// ErrRetriesExhausted is returned when a status retry loop gives up.
var ErrRetriesExhausted = errors.New("retries exhausted")

// StatusError is returned for any response other than 200 OK.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s (%s)", e.StatusCode, e.Status, e.URL)
}

// Options configures a Client.
type Options struct {
	// Headers are sent with every request. A User-Agent entry overrides
	// DefaultUserAgent.
	Headers http.Header

	// RetryCount is how many extra attempts GetWithRetry makes after the
	// first non-200 response.
	RetryCount int

	// RetryDelay is the fixed pause between attempts.
	RetryDelay time.Duration

	// Timeout bounds a single request. Zero means no timeout.
	Timeout time.Duration

	Logger *slog.Logger
}

// Client wraps HTTP operations with NetEase-specific configuration.
//
// Client provides:
//   - Configured headers (User-Agent) on every request
//   - A fixed-delay retry loop for non-200 responses
//   - Byte downloads for cover art
//
// Example usage:
//
//	client := NewClient(Options{RetryCount: 10, RetryDelay: time.Second})
//
//	// Fetch JSON, retrying on non-200 status
//	body, err := client.GetWithRetry(ctx, songDetailURL)
//
//	// Download cover art
//	jpeg, err := client.DownloadBytes(ctx, picURL)
type Client struct {
	httpClient *http.Client
	headers    http.Header
	retryCount int
	retryDelay time.Duration
	logger     *slog.Logger
}

// NewClient creates a new HTTP client from opts.
func NewClient(opts Options) *Client {
	headers := opts.Headers.Clone()
	if headers == nil {
		headers = make(http.Header)
	}
	if headers.Get("User-Agent") == "" {
		headers.Set("User-Agent", DefaultUserAgent)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: opts.Timeout,
		},
		headers:    headers,
		retryCount: opts.RetryCount,
		retryDelay: opts.RetryDelay,
		logger:     logger,
	}
}

// Get performs a single GET request and returns the response body.
//
// Returns a *StatusError if the response status is not 200 OK.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for k, vs := range c.headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused by the next attempt.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	return io.ReadAll(resp.Body)
}

// GetWithRetry performs a GET request, repeating it up to RetryCount more
// times while the server answers with a non-200 status.
//
// Only *StatusError responses are retried. Transport errors and
// cancellation are returned at once. When every attempt fails the last
// *StatusError is returned wrapped with ErrRetriesExhausted.
func (c *Client) GetWithRetry(ctx context.Context, url string) ([]byte, error) {
	body, err := c.Get(ctx, url)
	for remaining := c.retryCount; remaining > 0; remaining-- {
		var statusErr *StatusError
		if !errors.As(err, &statusErr) {
			break
		}

		c.logger.Warn("response status is not 200, retrying",
			"url", url, "status", statusErr.StatusCode, "retries_left", remaining)

		if !sleep(ctx, c.retryDelay) {
			return nil, ctx.Err()
		}
		body, err = c.Get(ctx, url)
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return nil, fmt.Errorf("%w after %d attempts: %w", ErrRetriesExhausted, c.retryCount+1, err)
	}
	return body, err
}

// DownloadBytes downloads a file and returns the bytes in memory.
//
// Use this for small files like cover art images.
func (c *Client) DownloadBytes(ctx context.Context, url string) ([]byte, error) {
	return c.Get(ctx, url)
}

// sleep waits for d or until ctx is cancelled.
// Returns false if ctx was cancelled first.
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
