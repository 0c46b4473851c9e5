// Package solscan wraps the Solscan Pro explorer REST API.
//
// Every method issues a single GET request and returns the raw response
// body as text; bodies are never parsed. On a non-2xx status the body that
// arrived is still returned, together with a *rest.StatusError, so callers
// decide whether to treat HTTP failures as errors.
package solscan

import (
	"net/http"
	"time"

	"github.com/AmperLab/solscan-go/pkg/rest"
)

const (
	// DefaultBaseURL is the Solscan Pro API root.
	DefaultBaseURL = "https://pro-api.solscan.io/v1.0"

	// DefaultLimit is the page size the API assumes when none is given.
	DefaultLimit = 10

	DefaultSortBy     = "market_cap"
	DefaultDirection  = "desc"
	DefaultExportType = "all"

	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/105.0.0.0 Safari/537.36"
)

// Client talks to the Solscan explorer REST API. It is stateless beyond the
// session configuration, so concurrent use is safe.
type Client struct {
	*rest.Client
}

// ClientConfig overrides the default session settings. Zero values keep the
// defaults.
type ClientConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
	UserAgent      string
	HTTPClient     *http.Client
}

// NewClient creates a client authenticated with the given API key. The key
// is sent as the token header on every request.
func NewClient(apiKey string) *Client {
	return NewClientWithConfig(apiKey, ClientConfig{})
}

// NewClientWithConfig creates a client with explicit session settings.
func NewClientWithConfig(apiKey string, cfg ClientConfig) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = defaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}

	headers := map[string]string{
		"accept":     "application/json",
		"token":      apiKey,
		"User-Agent": cfg.UserAgent,
	}

	base := rest.NewClient(cfg.BaseURL, headers, cfg.RequestTimeout)
	if cfg.HTTPClient != nil {
		base.SetHTTPClient(cfg.HTTPClient)
	}
	return &Client{Client: base}
}
