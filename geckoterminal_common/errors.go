package geckoterminal_common

import (
	"errors"
	"fmt"
)

// ErrClientClosed is returned by requests issued after Close
var ErrClientClosed = errors.New("geckoterminal client is closed")

// HttpError is returned when the API answers with a non-2xx status
type HttpError struct {
	StatusCode int
	Path       string
	Body       string
}

func (e *HttpError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("error getting %s: status %d", e.Path, e.StatusCode)
	}
	return fmt.Sprintf("error getting %s: status %d: %s", e.Path, e.StatusCode, e.Body)
}

// ConfigurationError is returned when a path template cannot be resolved
type ConfigurationError struct {
	Operation Operation
	Reason    string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("cannot resolve path for %q: %s", e.Operation, e.Reason)
}
