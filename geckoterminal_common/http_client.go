package geckoterminal_common

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"sync/atomic"
	"time"
)

// IHttpStatusHandler is an interface for handling HTTP request statuses
type IHttpStatusHandler interface {
	// OnRequest handles a finished request with its status result and latency
	OnRequest(op Operation, status string, duration time.Duration)
}

// Request statuses reported to IHttpStatusHandler
const (
	StatusSuccess   = "success"
	StatusError     = "error"
	StatusHttpError = "http_error"
)

// ClientOptions configures the underlying HTTP client
type ClientOptions struct {
	LogPrefix         string
	ConnectionTimeout time.Duration // Timeout for establishing connection
	RequestTimeout    time.Duration // Total request timeout including reading response
}

// DefaultClientOptions returns default client options
func DefaultClientOptions() ClientOptions {
	return ClientOptions{
		LogPrefix:         "GeckoTerminal-HTTP",
		ConnectionTimeout: 10 * time.Second,
		RequestTimeout:    30 * time.Second,
	}
}

// HTTPClient wraps an http.Client shared by every call of one GeckoTerminal client.
// Each request is attempted exactly once.
type HTTPClient struct {
	Client        *http.Client
	Opts          ClientOptions
	StatusHandler IHttpStatusHandler
	closed        atomic.Bool
}

// NewHTTPClient creates a new HTTP client
func NewHTTPClient(opts ClientOptions, handler IHttpStatusHandler) *HTTPClient {
	client := &http.Client{
		Timeout: opts.RequestTimeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: opts.ConnectionTimeout,
			}).DialContext,
		},
	}

	return &HTTPClient{
		Client:        client,
		Opts:          opts,
		StatusHandler: handler,
	}
}

// ExecuteRequest executes a request for the given operation and returns the response body.
// path is the API path used when reporting a non-2xx status.
func (c *HTTPClient) ExecuteRequest(op Operation, path string, req *http.Request) ([]byte, time.Duration, error) {
	if c.closed.Load() {
		return nil, 0, ErrClientClosed
	}

	requestStart := time.Now()
	resp, err := c.Client.Do(req)
	requestDuration := time.Since(requestStart)

	if err != nil {
		c.report(op, StatusError, requestDuration)
		return nil, requestDuration, fmt.Errorf("request %s failed after %.2fs: %w", path, requestDuration.Seconds(), err)
	}
	defer resp.Body.Close()

	body, err := processResponse(resp, path)
	if err != nil {
		status := StatusError
		var httpErr *HttpError
		if errors.As(err, &httpErr) {
			status = StatusHttpError
		}
		log.Printf("%s: %s failed after %.2fs: %v", c.Opts.LogPrefix, path, requestDuration.Seconds(), err)
		c.report(op, status, requestDuration)
		return nil, requestDuration, err
	}

	c.report(op, StatusSuccess, requestDuration)
	return body, requestDuration, nil
}

// Close releases idle connections, later requests fail with ErrClientClosed
func (c *HTTPClient) Close() {
	if c.closed.Swap(true) {
		return
	}
	c.Client.CloseIdleConnections()
}

// Closed reports whether Close has been called
func (c *HTTPClient) Closed() bool {
	return c.closed.Load()
}

func (c *HTTPClient) report(op Operation, status string, duration time.Duration) {
	if c.StatusHandler != nil {
		c.StatusHandler.OnRequest(op, status, duration)
	}
}

// processResponse reads the response body and rejects non-2xx statuses
func processResponse(resp *http.Response, path string) ([]byte, error) {
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &HttpError{
			StatusCode: resp.StatusCode,
			Path:       path,
			Body:       string(body),
		}
	}

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response for %s: %w", path, err)
	}

	return responseBody, nil
}
