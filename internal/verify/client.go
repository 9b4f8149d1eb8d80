// Package verify runs smoke checks against a running quotes API.
package verify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Errors surfaced by response decoding.
var (
	ErrMalformedJSON = errors.New("malformed JSON response")
	ErrMissingField  = errors.New("missing field")
)

// maxBodySize caps how much of a response body is read.
const maxBodySize = 4 << 20

// NewHTTPClient creates the HTTP client used for checks.
// A zero timeout leaves requests unbounded, like http.DefaultClient.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: http.DefaultTransport.(*http.Transport).Clone(),
	}
}

// Client issues GET requests relative to an API base URL.
type Client struct {
	http    *http.Client
	baseURL string
}

// NewClient creates a Client for baseURL, e.g. "http://localhost:8001/api".
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = NewHTTPClient(0)
	}
	return &Client{
		http:    httpClient,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// BaseURL returns the API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Response is a fully read HTTP response.
type Response struct {
	Status int
	Body   []byte
}

// OK reports whether the status is 200.
func (r *Response) OK() bool {
	return r.Status == http.StatusOK
}

// Text returns the body as trimmed text.
func (r *Response) Text() string {
	return strings.TrimSpace(string(r.Body))
}

// Decode unmarshals the body into out.
func (r *Response) Decode(out any) error {
	if err := json.Unmarshal(r.Body, out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	return nil
}

// Get requests path relative to the base URL and reads the whole body.
// Non-200 statuses are not errors.
func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "quotegen-verify/1.0")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	return &Response{Status: resp.StatusCode, Body: body}, nil
}

// document is a decoded JSON object.
type document map[string]any

// str returns the string field key or ErrMissingField.
func (d document) str(key string) (string, error) {
	v, ok := d[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrMissingField, key)
	}
	s, ok := v.(string)
	if !ok {
		return fmt.Sprint(v), nil
	}
	return s, nil
}
