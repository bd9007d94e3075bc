// Package gateway is the single choke point for all backend HTTP calls. It
// builds requests against a fixed origin, always sends JSON, and attaches the
// stored bearer token for authenticated calls. It never retries, never
// refreshes tokens and never touches the credential store beyond reading the
// current snapshot.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"stocklink-lite/internal/credentials"
)

// Client issues JSON requests against the configured backend origin.
type Client struct {
	baseURL string
	creds   credentials.Store
	http    *http.Client
}

// New builds a Client. baseURL includes the /api prefix.
func New(baseURL string, creds credentials.Store, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		creds:   creds,
		http:    &http.Client{Timeout: timeout},
	}
}

// Get issues an authenticated GET.
func (c *Client) Get(ctx context.Context, path string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, path, nil, true)
}

// GetPublic issues a GET without an Authorization header.
func (c *Client) GetPublic(ctx context.Context, path string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, path, nil, false)
}

// Post issues an authenticated POST with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, path, body, true)
}

// PostPublic issues a POST without an Authorization header (login, register).
func (c *Client) PostPublic(ctx context.Context, path string, body interface{}) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, path, body, false)
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, authed bool) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	if authed {
		sess, err := c.creds.Get(ctx)
		if err != nil {
			return nil, err
		}
		if sess.AccessToken == "" {
			// Fail fast instead of forwarding a "Bearer null" header for the
			// backend to reject.
			return nil, ErrNoSession
		}
		req.Header.Set("Authorization", "Bearer "+sess.AccessToken)
	}

	traceID := uuid.New().String()
	req.Header.Set("X-Trace-Id", traceID)

	start := time.Now()
	log.Debug().Str("trace_id", traceID).Str("method", method).Str("path", path).Msg("Sending request")

	res, err := c.http.Do(req)
	if err != nil {
		log.Debug().Str("trace_id", traceID).Str("method", method).Str("path", path).Err(err).Msg("Request failed")
		return nil, err
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	ms := time.Since(start).Milliseconds()
	log.Debug().Str("trace_id", traceID).Str("method", method).Str("path", path).
		Int("status", res.StatusCode).Int64("ms", ms).Msg("Request done")

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, &HTTPError{Status: res.StatusCode, Message: serverMessage(raw)}
	}
	return json.RawMessage(raw), nil
}
