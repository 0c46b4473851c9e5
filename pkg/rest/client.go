package rest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Client is a reusable HTTP session: one base URL plus a set of default
// headers sent on every request. It carries no other state, so a single
// instance is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	headers    map[string]string
}

// NewClient creates a session against baseURL. Every request carries the
// given headers verbatim.
func NewClient(baseURL string, headers map[string]string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		headers:    headers,
	}
}

// SetHTTPClient replaces the underlying transport. Useful for custom
// timeouts, proxies or test doubles.
func (c *Client) SetHTTPClient(hc *http.Client) {
	c.httpClient = hc
}

func (c *Client) BaseURL() string { return c.baseURL }

// BuildURL joins the base URL, an endpoint path and pre-encoded key=value
// fragments into a request URL.
func (c *Client) BuildURL(endpoint string, fragments ...string) string {
	url := c.baseURL + endpoint
	if len(fragments) > 0 {
		url += "?" + strings.Join(fragments, "&")
	}
	return url
}

// StatusError reports a non-2xx response. The body that arrived is returned
// to the caller alongside the error, so callers may ignore the error and
// inspect the body themselves.
type StatusError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d from %s: %s", e.StatusCode, e.URL, e.Body)
}

// Get issues a GET to the endpoint with the given query fragments and reads
// the full response body. A non-2xx status yields the body together with a
// *StatusError; transport-level failures yield a nil body.
func (c *Client) Get(ctx context.Context, endpoint string, fragments ...string) ([]byte, error) {
	url := c.BuildURL(endpoint, fragments...)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	slog.Debug("HTTP request completed", "url", url, "elapsed", time.Since(start))

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		slog.Error("HTTP request failed", "url", url, "status", resp.StatusCode)
		return data, &StatusError{StatusCode: resp.StatusCode, URL: url, Body: string(data)}
	}
	return data, nil
}
