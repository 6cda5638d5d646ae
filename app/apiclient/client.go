// Package apiclient provides typed request wrappers for the billing
// backend's REST surface: schools, students, invoices, payments and account
// statements, plus authentication. It is pure HTTP plumbing; no aggregation
// or currency math happens here.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TokenSource yields the current bearer token, or "" when no session exists.
// It is invoked at request time so a token cleared elsewhere is never sent.
type TokenSource func() string

type bearerKey struct{}

// WithBearer returns a context whose requests are decorated with
// "Authorization: Bearer <token>" as supplied by ts.
func WithBearer(ctx context.Context, ts TokenSource) context.Context {
	return context.WithValue(ctx, bearerKey{}, ts)
}

func bearerFrom(ctx context.Context) string {
	ts, ok := ctx.Value(bearerKey{}).(TokenSource)
	if !ok || ts == nil {
		return ""
	}
	return ts()
}

// Options configures a Client.
type Options struct {
	// BaseURL is the origin for resource calls, e.g. "http://localhost:8000".
	BaseURL string
	// AuthBaseURL is the origin for /auth calls. Defaults to BaseURL.
	AuthBaseURL string
	Timeout     time.Duration
	Logger      *zap.Logger
}

// Client is the typed HTTP client for the billing backend.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	authBaseURL string
	logger      *zap.Logger
}

// New creates a Client. The base URL must parse; auth calls default to the
// same origin as resource calls.
func New(opts Options) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if _, err := url.Parse(opts.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if opts.AuthBaseURL == "" {
		opts.AuthBaseURL = opts.BaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		httpClient:  &http.Client{Timeout: opts.Timeout},
		baseURL:     opts.BaseURL,
		authBaseURL: opts.AuthBaseURL,
		logger:      logger,
	}, nil
}

// do executes one JSON round trip against base+path. body is marshaled when
// non-nil; the response is decoded into out when out is non-nil and the
// status is 2xx. Non-2xx statuses become *APIError.
func (c *Client) do(ctx context.Context, base, method, path string, query url.Values, body, out interface{}) error {
	u := base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, bodyReader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token := bearerFrom(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("backend request failed",
			zap.String("method", method), zap.String("path", path), zap.Error(err))
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := parseAPIError(resp.StatusCode, data)
		c.logger.Warn("backend rejected request",
			zap.String("method", method), zap.String("path", path),
			zap.Int("status", resp.StatusCode), zap.String("detail", apiErr.Detail))
		return apiErr
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decoding response body: %w", err)
		}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, c.baseURL, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, c.baseURL, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, c.baseURL, http.MethodPut, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, c.baseURL, http.MethodDelete, path, nil, nil, nil)
}
