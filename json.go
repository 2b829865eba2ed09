package mapper

import (
	"fmt"

	"github.com/goccy/go-json"
)

// JSONTransform describes TOut as the JSON decoding of the JSON encoding of the source.
// This is a lossy mapping when source and destination do not share a JSON structure, and it cannot
// follow cycles; prefer MemberInit for anything but flat, aligned types.
func JSONTransform[TIn, TOut any]() Spec[TIn, TOut] {
	return transformSpec[TIn, TOut]{fn: jsonRoundTrip[TIn, TOut], shape: "JSONTransform"}
}

func jsonRoundTrip[TIn, TOut any](src TIn, _ *Context) (TOut, error) {
	var out TOut
	data, err := json.Marshal(src)
	if err != nil {
		return out, fmt.Errorf("json transform: marshal failed: %w", err)
	}
	if err = json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("json transform: unmarshal failed: %w", err)
	}
	return out, nil
}
