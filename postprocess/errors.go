package postprocess

import (
	"fmt"
	"strings"
)

// UnsupportedTimeframeError is returned for a timeframe outside OHLCVTimeframes
type UnsupportedTimeframeError struct {
	Timeframe string
}

func (e *UnsupportedTimeframeError) Error() string {
	return fmt.Sprintf("timeframe %q is not supported, select one of [%s]",
		e.Timeframe, strings.Join(OHLCVTimeframes, ", "))
}

// MalformedIdentifierError is returned when a composite id has no network prefix
type MalformedIdentifierError struct {
	Column string
	Value  interface{}
	Row    int
}

func (e *MalformedIdentifierError) Error() string {
	return fmt.Sprintf("malformed identifier in column %s at row %d: %v", e.Column, e.Row, e.Value)
}
