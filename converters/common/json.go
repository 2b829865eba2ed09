package common

import (
	"github.com/Station-Manager/errors"
	"github.com/aarondl/null/v8"
	boilertypes "github.com/aarondl/sqlboiler/v4/types"
	"github.com/goccy/go-json"
)

// ToNullJSON marshals src into a null.JSON. A nil src becomes null.
func ToNullJSON(src any) (any, error) {
	const op errors.Op = "converters.common.ToNullJSON"
	if src == nil {
		return null.JSON{}, nil
	}
	data, err := json.Marshal(src)
	if err != nil {
		return null.JSON{}, errors.New(op).Err(err)
	}
	return null.JSONFrom(data), nil
}

// ToJSON marshals src into a sqlboiler types.JSON. A nil src becomes an empty value.
func ToJSON(src any) (any, error) {
	const op errors.Op = "converters.common.ToJSON"
	if src == nil {
		return boilertypes.JSON(nil), nil
	}
	data, err := json.Marshal(src)
	if err != nil {
		return boilertypes.JSON(nil), errors.New(op).Err(err)
	}
	return boilertypes.JSON(data), nil
}

// JSONToMap decodes a null.JSON, types.JSON or []byte holding a JSON object into a map[string]any.
// Null and empty inputs decode to a nil map.
func JSONToMap(src any) (any, error) {
	const op errors.Op = "converters.common.JSONToMap"
	var raw []byte
	switch v := src.(type) {
	case null.JSON:
		if !v.Valid {
			return map[string]any(nil), nil
		}
		raw = v.JSON
	case boilertypes.JSON:
		raw = v
	case []byte:
		raw = v
	default:
		return map[string]any(nil), errors.New(op).Errorf("Given parameter not a JSON value, got %T", src)
	}
	if len(raw) == 0 {
		return map[string]any(nil), nil
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return map[string]any(nil), errors.New(op).Err(err)
	}
	return out, nil
}
