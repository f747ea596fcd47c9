package geckoterminal

import (
	"context"
	"log"
	"net/url"
	"sync/atomic"

	"github.com/status-im/geckoterminal-client/config"
	cg "github.com/status-im/geckoterminal-client/geckoterminal_common"
	"github.com/status-im/geckoterminal-client/metrics"
)

//go:generate mockgen -destination=mocks/api_client.go . APIClient

// APIClient performs one GET request against the GeckoTerminal API
type APIClient interface {
	// Fetch requests an API path and returns the raw response body
	Fetch(ctx context.Context, op cg.Operation, path string, params url.Values) ([]byte, error)
	// Healthy reports whether at least one request succeeded
	Healthy() bool
	// Close releases the underlying connections
	Close()
}

// GeckoTerminalAPIClient implements APIClient over HTTP
type GeckoTerminalAPIClient struct {
	config          *config.Config
	baseURL         string
	httpClient      *cg.HTTPClient
	successfulFetch atomic.Bool
}

// NewGeckoTerminalAPIClient creates a new HTTP API client
func NewGeckoTerminalAPIClient(cfg *config.Config, metricsWriter *metrics.MetricsWriter) *GeckoTerminalAPIClient {
	opts := cg.GetClientOptions(cfg)

	var handler cg.IHttpStatusHandler
	if metricsWriter != nil {
		handler = metricsWriter
	}

	return &GeckoTerminalAPIClient{
		config:     cfg,
		baseURL:    cg.GetApiBaseUrl(cfg),
		httpClient: cg.NewHTTPClient(opts, handler),
	}
}

// Healthy checks if the API has had at least one successful fetch
func (c *GeckoTerminalAPIClient) Healthy() bool {
	return c.successfulFetch.Load()
}

// Fetch executes a single GET request and returns the body of a 2xx response
func (c *GeckoTerminalAPIClient) Fetch(ctx context.Context, op cg.Operation, path string, params url.Values) ([]byte, error) {
	request, err := cg.NewRequestBuilder(c.baseURL, path).
		WithParams(params).
		WithAPIVersion(c.config.APIVersion).
		WithUserAgent(c.config.UserAgent).
		WithContext(ctx).
		Build()
	if err != nil {
		log.Printf("GeckoTerminal: Error building request for %s: %v", path, err)
		return nil, err
	}

	body, duration, err := c.httpClient.ExecuteRequest(op, path, request)
	if err != nil {
		return nil, err
	}

	log.Printf("GeckoTerminal: Fetched %s in %.2fs (%d bytes)", path, duration.Seconds(), len(body))
	c.successfulFetch.Store(true)

	return body, nil
}

// Close releases idle connections; later fetches fail with ErrClientClosed
func (c *GeckoTerminalAPIClient) Close() {
	c.httpClient.Close()
}
