package geckoterminal_common

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// buildURL safely combines a base URL with a path
func buildURL(baseURL, path string) string {
	baseURL = strings.TrimRight(baseURL, "/")
	trimmedPath := strings.TrimLeft(path, "/")

	return baseURL + "/" + trimmedPath
}

// acceptHeader returns the Accept header value pinning an API version
func acceptHeader(version string) string {
	return "application/json;version=" + version
}

// RequestBuilder implements the Builder pattern for GeckoTerminal API requests
type RequestBuilder struct {
	ctx        context.Context
	baseURL    string
	httpMethod string
	apiPath    string
	params     url.Values
	userAgent  string
	headers    map[string]string
}

// NewRequestBuilder creates a new request builder for a GeckoTerminal path
func NewRequestBuilder(baseURL, apiPath string) *RequestBuilder {
	rb := &RequestBuilder{
		ctx:        context.Background(),
		baseURL:    baseURL,
		apiPath:    apiPath,
		httpMethod: http.MethodGet,
		params:     url.Values{},
		headers:    make(map[string]string),
		userAgent:  DEFAULT_USER_AGENT,
	}

	rb.headers["Accept"] = acceptHeader(GECKOTERMINAL_API_VERSION)

	return rb
}

// WithParams merges a set of query parameters, empty values are skipped
func (rb *RequestBuilder) WithParams(params url.Values) *RequestBuilder {
	for key, values := range params {
		for _, value := range values {
			if value != "" {
				rb.params.Add(key, value)
			}
		}
	}
	return rb
}

// WithAPIVersion overrides the API version sent in the Accept header
func (rb *RequestBuilder) WithAPIVersion(version string) *RequestBuilder {
	if version != "" {
		rb.headers["Accept"] = acceptHeader(version)
	}
	return rb
}

// WithHeader adds a custom HTTP header
func (rb *RequestBuilder) WithHeader(name, value string) *RequestBuilder {
	rb.headers[name] = value
	return rb
}

// WithUserAgent sets the User-Agent header
func (rb *RequestBuilder) WithUserAgent(userAgent string) *RequestBuilder {
	if userAgent != "" {
		rb.userAgent = userAgent
	}
	return rb
}

// WithContext attaches a context to the built request
func (rb *RequestBuilder) WithContext(ctx context.Context) *RequestBuilder {
	if ctx != nil {
		rb.ctx = ctx
	}
	return rb
}

// BuildURL builds the complete URL for the request
func (rb *RequestBuilder) BuildURL() string {
	finalURL := buildURL(rb.baseURL, rb.apiPath)

	queryString := rb.params.Encode()
	if queryString != "" {
		finalURL = fmt.Sprintf("%s?%s", finalURL, queryString)
	}

	return finalURL
}

// Build creates an http.Request object
func (rb *RequestBuilder) Build() (*http.Request, error) {
	req, err := http.NewRequestWithContext(rb.ctx, rb.httpMethod, rb.BuildURL(), nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", rb.userAgent)

	for key, value := range rb.headers {
		req.Header.Set(key, value)
	}

	return req, nil
}
