package projection

import (
	"strings"

	"github.com/tidwall/gjson"
)

// SourceKind tells how a Source reads a value out of an Item
type SourceKind int

const (
	// LiteralSource reads one top-level key of the Item
	LiteralSource SourceKind = iota
	// PathSource walks a sequence of object keys starting at the Item
	PathSource
)

// Source locates one column value inside an Item
type Source struct {
	kind     SourceKind
	segments []string
}

// Literal reads a top-level key, e.g. "id" or "type"
func Literal(key string) Source {
	return Source{kind: LiteralSource, segments: []string{key}}
}

// Path reads a dotted path, e.g. "attributes.price_change_percentage.h1"
func Path(dotted string) Source {
	return Source{kind: PathSource, segments: strings.Split(dotted, ".")}
}

// PathOf reads a path given as separate segments, for keys that contain dots
func PathOf(segments ...string) Source {
	return Source{kind: PathSource, segments: append([]string(nil), segments...)}
}

// Kind returns the source kind
func (s Source) Kind() SourceKind {
	return s.kind
}

// Resolve returns the value addressed by the source, or nil when any
// segment is absent or an intermediate value is not an object.
func (s Source) Resolve(item gjson.Result) interface{} {
	if len(s.segments) == 0 {
		return nil
	}
	if s.kind == LiteralSource {
		value, ok := lookupKey(item, s.segments[0])
		if !ok {
			return nil
		}
		return value.Value()
	}

	current := item
	for _, segment := range s.segments {
		next, ok := lookupKey(current, segment)
		if !ok {
			return nil
		}
		current = next
	}
	return current.Value()
}

// lookupKey finds an exact key among the members of a JSON object
func lookupKey(obj gjson.Result, key string) (gjson.Result, bool) {
	if !obj.IsObject() {
		return gjson.Result{}, false
	}

	var found gjson.Result
	ok := false
	obj.ForEach(func(k, v gjson.Result) bool {
		if k.String() == key {
			found = v
			ok = true
			return false
		}
		return true
	})
	return found, ok
}
