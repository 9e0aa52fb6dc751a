// Package api implements the Lingua API client: one request dispatcher with
// a fixed per-attempt timeout and bounded retry, plus thin facades for
// progress, shop, leaderboard, and script-preference operations.
//
// Every facade follows the same pipeline: auth gate (before any network
// activity), retry loop, one dispatch per attempt, classification of
// failures, and reconciliation of the success body. Reconciliation runs
// inside the retry loop, so a malformed success response is retried like a
// server error.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alnah/go-lingua/internal/apierr"
	"github.com/alnah/go-lingua/internal/auth"
	"github.com/alnah/go-lingua/internal/reconcile"
)

const (
	defaultBaseURL = "https://api.lingua-app.dev"

	// Per-attempt request timeout, fixed across all endpoints.
	defaultTimeout = 30 * time.Second

	// Response size limit to prevent OOM from malformed responses (4MB).
	maxResponseSize = 4 * 1024 * 1024
)

// httpDoer abstracts the HTTP client for testing.
type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is the Lingua API client. All module facades are methods on it.
// Safe for concurrent use; independent calls run independent retry loops.
type Client struct {
	baseURL    string
	gate       *auth.Gate
	retry      apierr.RetryConfig
	timeout    time.Duration
	httpClient httpDoer
	catalog    reconcile.Catalog
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing or self-hosted backends).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		if url != "" {
			c.baseURL = strings.TrimSuffix(url, "/")
		}
	}
}

// WithTimeout sets the per-attempt request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithMaxRetries sets the maximum number of retry attempts after the first.
func WithMaxRetries(n int) Option {
	return func(c *Client) {
		if n >= 0 {
			c.retry.MaxRetries = n
		}
	}
}

// WithRetryDelays sets the base and max delays for exponential backoff.
func WithRetryDelays(base, max time.Duration) Option {
	return func(c *Client) {
		if base > 0 {
			c.retry.BaseDelay = base
		}
		if max > 0 {
			c.retry.MaxDelay = max
		}
	}
}

// WithCatalog overrides the embedded power-up catalog.
func WithCatalog(catalog reconcile.Catalog) Option {
	return func(c *Client) {
		if catalog != nil {
			c.catalog = catalog
		}
	}
}

// withHTTPClient sets a custom HTTP client (for testing).
func withHTTPClient(client httpDoer) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// NewClient creates a Lingua API client. gate must not be nil: it is the
// single process-wide credential holder shared by every facade.
func NewClient(gate *auth.Gate, opts ...Option) *Client {
	c := &Client{
		baseURL: defaultBaseURL,
		gate:    gate,
		retry:   apierr.DefaultRetryConfig(),
		timeout: defaultTimeout,
		catalog: reconcile.DefaultCatalog(),
	}
	for _, opt := range opts {
		opt(c)
	}
	// Create the HTTP client after options are applied (timeout may be
	// customized).
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.timeout}
	}
	return c
}

// attempt performs exactly one HTTP round trip. Transport failures and
// non-2xx statuses come back already classified, so the retry loop can act
// on them without re-deriving anything.
func (c *Client) attempt(ctx context.Context, op, method, path string, payload []byte) (_ []byte, err error) {
	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.gate.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apierr.Classify(op, 0, nil, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close response body: %w", closeErr)
		}
	}()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, apierr.Classify(op, 0, nil, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apierr.Classify(op, resp.StatusCode, respBody, nil)
	}

	return respBody, nil
}

// send runs one logical operation through the retry loop: marshal once,
// then per attempt dispatch, classify, and reconcile. rec maps the raw
// success body to the caller's type; its parse failures are retryable.
func send[T any](ctx context.Context, c *Client, op, method, path string, reqBody any, rec func([]byte) (T, error)) (T, error) {
	var zero T

	var payload []byte
	if reqBody != nil {
		var err error
		payload, err = json.Marshal(reqBody)
		if err != nil {
			return zero, fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	return apierr.RetryWithBackoff(ctx, c.retry, func() (T, error) {
		body, err := c.attempt(ctx, op, method, path, payload)
		if err != nil {
			return zero, err
		}
		return rec(body)
	}, apierr.ShouldRetry)
}

// fetch is send for GET operations.
func fetch[T any](ctx context.Context, c *Client, op, path string, rec func([]byte) (T, error)) (T, error) {
	return send(ctx, c, op, http.MethodGet, path, nil, rec)
}

// asJSON returns a decode func for plain DTO responses. Malformed bodies are
// classified as retryable server errors, matching the reconciler's policy.
func asJSON[T any](op string) func([]byte) (T, error) {
	return func(body []byte) (T, error) {
		var v T
		if err := json.Unmarshal(body, &v); err != nil {
			return v, &apierr.ServerError{
				Message: "malformed " + op + " response",
				Err:     err,
			}
		}
		return v, nil
	}
}
