// Package fetch implements the Fetcher interface.
// It performs a single blocking HTTP GET and decodes the response body
// as JSON. Transport problems and malformed bodies surface as distinct
// error types so callers can tell them apart without string inspection.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/gaurav-prasanna/reportpipe/core"
)

const defaultTimeout = 15 * time.Second

// TransportError reports a connection failure, a timeout, or a non-2xx
// HTTP status.
type TransportError struct {
	URL   string
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("API request failed for %s: %v", e.URL, e.Cause)
}

func (e *TransportError) Unwrap() error { return e.Cause }

// DecodeError reports a response body that is not valid JSON.
type DecodeError struct {
	URL   string
	Cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid JSON from %s: %v", e.URL, e.Cause)
}

func (e *DecodeError) Unwrap() error { return e.Cause }

// JSONFetcher fetches JSON payloads via HTTP.
type JSONFetcher struct {
	client  *http.Client
	headers map[string]string
}

// New creates a JSONFetcher with the default timeout.
func New() *JSONFetcher {
	return NewWithTimeout(defaultTimeout)
}

// NewWithTimeout creates a JSONFetcher with a custom timeout.
// Non-positive values fall back to the default.
func NewWithTimeout(timeout time.Duration) *JSONFetcher {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &JSONFetcher{
		client:  &http.Client{Timeout: timeout},
		headers: map[string]string{"Accept": "application/json"},
	}
}

// SetHeader adds or overrides a header sent on every request.
func (f *JSONFetcher) SetHeader(key, value string) {
	f.headers[key] = value
}

// Fetch retrieves the JSON payload at rawURL and decodes it.
// params, when non-empty, is merged into the URL query string.
func (f *JSONFetcher) Fetch(ctx context.Context, rawURL string, params map[string]string) (*core.FetchResult, error) {
	reqURL := rawURL
	if len(params) > 0 {
		u, err := url.Parse(rawURL)
		if err != nil {
			return nil, &TransportError{URL: rawURL, Cause: err}
		}
		q := u.Query()
		for k, v := range params {
			q.Set(k, v)
		}
		u.RawQuery = q.Encode()
		reqURL = u.String()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &TransportError{URL: rawURL, Cause: err}
	}
	for k, v := range f.headers {
		req.Header.Set(k, v)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &TransportError{URL: rawURL, Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &TransportError{URL: rawURL, Cause: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: rawURL, Cause: err}
	}

	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, &DecodeError{URL: rawURL, Cause: err}
	}

	return &core.FetchResult{
		URL:        rawURL,
		StatusCode: resp.StatusCode,
		Data:       data,
		FetchedAt:  time.Now().UTC(),
	}, nil
}
