// Package supabase contains the thin HTTP adapters for the managed backend:
// the GoTrue auth API and the PostgREST relational API. All durable state of
// the service lives behind these adapters.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultTimeout = 10 * time.Second

// Client is one configured handle to the backend: base URL plus a single API
// key. Two variants exist per process: the anon key for user-scoped calls
// and the service-role key for elevated writes that bypass row-level
// policies. Both are immutable after construction and safe for concurrent
// use across requests.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewAnonClient returns the user-scoped client.
func NewAnonClient(baseURL, anonKey string) *Client {
	return newClient(baseURL, anonKey)
}

// NewServiceClient returns the elevated-privilege client.
func NewServiceClient(baseURL, serviceKey string) *Client {
	return newClient(baseURL, serviceKey)
}

func newClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// Health probes the auth API's health endpoint. Used by the readiness check.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, "auth.health", request{method: http.MethodGet, path: "/auth/v1/health"}, nil)
}

// request describes one backend call. When token is empty the client's own
// API key doubles as the bearer credential, which is how both GoTrue admin
// calls and service-role PostgREST calls authenticate.
type request struct {
	method string
	path   string
	token  string
	prefer string
	body   any
}

// do executes the request and decodes a 2xx JSON body into out (skipped when
// out is nil). Non-2xx responses are parsed into a *domain.BackendError
// carrying the backend's own message.
func (c *Client) do(ctx context.Context, op string, req request, out any) error {
	var body io.Reader
	if req.body != nil {
		buf, err := json.Marshal(req.body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		body = bytes.NewReader(buf)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, c.baseURL+req.path, body)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}

	token := req.token
	if token == "" {
		token = c.apiKey
	}
	httpReq.Header.Set("apikey", c.apiKey)
	httpReq.Header.Set("Authorization", "Bearer "+token)
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.prefer != "" {
		httpReq.Header.Set("Prefer", req.prefer)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("%s: read response: %w", op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return backendError(op, resp.StatusCode, raw)
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}
