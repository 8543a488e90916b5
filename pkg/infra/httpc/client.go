package httpc

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/bulkget/pkg/domain/model"
)

// Client is a retrying HTTP fetcher. One Client is shared by all download
// workers; the underlying http.Client and its connection pool are safe for
// concurrent use, so connections are reused across tasks.
type Client struct {
	httpClient *http.Client
	policy     model.RetryPolicy
}

// Option customizes a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// New creates a Client applying policy to every Fetch call
func New(policy model.RetryPolicy, opts ...Option) *Client {
	transport := &http.Transport{
		MaxIdleConns:        model.DefaultConcurrency * 2,
		MaxIdleConnsPerHost: model.DefaultConcurrency,
		IdleConnTimeout:     90 * time.Second,
	}

	c := &Client{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   30 * time.Second,
		},
		policy: policy,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Fetch issues a GET request for url with up to policy.MaxAttempts total
// attempts. Transport failures and retryable status codes are retried with
// exponential backoff; any other response ends the loop immediately. The
// result of the last attempt is returned as-is: a response of any status
// becomes a FetchResult, a transport failure becomes an error.
func (c *Client) Fetch(ctx context.Context, url string) (*model.FetchResult, error) {
	logger := ctxlog.From(ctx)

	var lastErr error
	for attempt := 1; attempt <= c.policy.MaxAttempts; attempt++ {
		if attempt > 1 {
			if err := c.wait(ctx, c.policy.Delay(attempt-1)); err != nil {
				return nil, err
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create request", goerr.V("url", url))
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			logger.Debug("transport failure, will retry",
				"url", url,
				"attempt", attempt,
				"error", err,
			)
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			logger.Debug("failed to read response body, will retry",
				"url", url,
				"attempt", attempt,
				"error", err,
			)
			continue
		}

		result := &model.FetchResult{
			StatusCode: resp.StatusCode,
			Body:       body,
			Attempts:   attempt,
		}

		if c.policy.Retryable(resp.StatusCode) && attempt < c.policy.MaxAttempts {
			logger.Debug("retryable status, will retry",
				"url", url,
				"attempt", attempt,
				"status", resp.StatusCode,
			)
			continue
		}

		return result, nil
	}

	return nil, goerr.Wrap(lastErr, "request failed",
		goerr.V("url", url),
		goerr.V("attempts", c.policy.MaxAttempts),
	)
}

// wait sleeps for d or until ctx is cancelled
func (c *Client) wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
