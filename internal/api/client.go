// Package api is the HTTP client for the Zen Space backend. The backend is
// an external service; this package only shapes requests and classifies
// failures so callers can tell "server said no" from "server not there".
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// TokenFunc supplies the current bearer token, or "" when unauthenticated.
type TokenFunc func() string

// Client talks to the backend REST API.
type Client struct {
	BaseURL string
	Token   TokenFunc
	HTTP    *http.Client
}

// New creates a Client for the given base URL (including the /api prefix).
// The timeout bounds every request, including chat sends.
func New(baseURL string, timeout time.Duration, token TokenFunc) *Client {
	if token == nil {
		token = func() string { return "" }
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Token:   token,
		HTTP:    &http.Client{Timeout: timeout},
	}
}

// doJSON issues a request with an optional JSON body and returns the raw
// response body. Non-2xx statuses become *StatusError; transport failures
// become *UnreachableError unless the context was cancelled.
func (c *Client) doJSON(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, context.Canceled
		}
		return nil, &UnreachableError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UnreachableError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, statusErrorFrom(resp.StatusCode, resp.Status, raw)
	}

	return raw, nil
}

// statusErrorFrom extracts a server-provided message when the error body is
// JSON with an "error" or "detail" field, falling back to the HTTP status.
func statusErrorFrom(code int, status string, raw []byte) *StatusError {
	var body struct {
		Error  string `json:"error"`
		Detail string `json:"detail"`
	}
	_ = json.Unmarshal(raw, &body)

	msg := body.Error
	if msg == "" {
		msg = body.Detail
	}
	if msg == "" {
		msg = fmt.Sprintf("server error: %s", status)
	}
	return &StatusError{Code: code, Message: msg}
}

// decode unmarshals a success body into v, producing a *ParseError carrying
// a truncated snippet of the raw body when the server returned junk.
func decode(raw []byte, v any) error {
	if err := json.Unmarshal(raw, v); err != nil {
		return &ParseError{Snippet: Snippet(raw, 100), Err: err}
	}
	return nil
}

// Snippet truncates raw to at most n bytes for error messages.
func Snippet(raw []byte, n int) string {
	s := string(raw)
	if len(s) > n {
		return s[:n]
	}
	return s
}
