package projection

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// ErrMalformedEnvelope is returned when a body has no usable "data" member
var ErrMalformedEnvelope = errors.New("malformed JSON:API envelope")

// Envelope is a decoded GeckoTerminal response body: {"data": Item | [Item]}
type Envelope struct {
	root gjson.Result
}

// ParseEnvelope validates a response body
func ParseEnvelope(body []byte) (*Envelope, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformedEnvelope)
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: top level is not an object", ErrMalformedEnvelope)
	}
	return &Envelope{root: root}, nil
}

// Data returns the raw "data" member
func (e *Envelope) Data() gjson.Result {
	data, _ := lookupKey(e.root, "data")
	return data
}

// Get reads a value from the envelope with a gjson path, e.g. "data.attributes.ohlcv_list"
func (e *Envelope) Get(path string) gjson.Result {
	return e.root.Get(path)
}

// Items returns the items under "data". A single object is wrapped in a
// one-element slice so single-item endpoints project like list endpoints.
func (e *Envelope) Items() ([]gjson.Result, error) {
	data, ok := lookupKey(e.root, "data")
	if !ok {
		return nil, fmt.Errorf("%w: missing data", ErrMalformedEnvelope)
	}

	switch {
	case data.IsObject():
		return []gjson.Result{data}, nil
	case data.IsArray():
		items := data.Array()
		for i, item := range items {
			if !item.IsObject() {
				return nil, fmt.Errorf("%w: data[%d] is not an object", ErrMalformedEnvelope, i)
			}
		}
		return items, nil
	default:
		return nil, fmt.Errorf("%w: data is neither an object nor an array", ErrMalformedEnvelope)
	}
}

// Item returns the single object under "data" as a generic map
func (e *Envelope) Item() (map[string]interface{}, error) {
	data := e.Data()
	if !data.IsObject() {
		return nil, fmt.Errorf("%w: data is not an object", ErrMalformedEnvelope)
	}
	item, ok := data.Value().(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: data is not an object", ErrMalformedEnvelope)
	}
	return item, nil
}
