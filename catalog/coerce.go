package catalog

import (
	"encoding/json"
	"math"
	"strings"
	"time"

	"github.com/spf13/cast"

	"github.com/cardexhq/cardex/types"
)

// Coerce converts a raw value of unknown shape into the field's declared
// type, or reports absence when no sound conversion exists. This is the
// single point where untyped input becomes a typed value; everything
// downstream operates on types.Value only.
//
// nil always coerces to absent, never to a type-specific zero value.
func Coerce(raw interface{}, field types.Field) types.Value {
	if raw == nil {
		return types.Absent()
	}

	switch field.Type {
	case types.StringType:
		return coerceString(raw)
	case types.NumberType:
		return coerceNumber(raw)
	case types.BoolType:
		return coerceBool(raw)
	case types.DateType:
		return coerceDate(raw)
	case types.StringListType:
		return coerceStringList(raw)
	case types.ObjectType:
		return coerceObject(raw)
	}
	return types.Absent()
}

// stringifyPrimitive converts a scalar into its string form. Objects,
// arrays and other composite shapes are rejected so opaque representations
// never end up stored as field text.
func stringifyPrimitive(raw interface{}) (string, bool) {
	switch v := raw.(type) {
	case string:
		return v, true
	case bool:
		return cast.ToString(v), true
	case json.Number:
		return v.String(), true
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return cast.ToString(v), true
	}
	return "", false
}

func coerceString(raw interface{}) types.Value {
	s, ok := stringifyPrimitive(raw)
	if !ok {
		return types.Absent()
	}
	return types.String(s)
}

func coerceNumber(raw interface{}) types.Value {
	switch raw.(type) {
	case string, json.Number,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		// fall through to the cast below
	default:
		return types.Absent()
	}

	f, err := cast.ToFloat64E(raw)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return types.Absent()
	}
	return types.Number(f)
}

func coerceBool(raw interface{}) types.Value {
	switch v := raw.(type) {
	case bool:
		return types.Bool(v)
	case string:
		// only the literal "true" (any casing) is true; every other
		// string is false rather than a parse error
		return types.Bool(strings.EqualFold(v, "true"))
	default:
		return types.Bool(cast.ToBool(raw))
	}
}

func coerceDate(raw interface{}) types.Value {
	switch raw.(type) {
	case time.Time:
		return types.Date(raw.(time.Time))
	case string, json.Number,
		int, int32, int64, float32, float64:
		// fall through to the cast below
	default:
		return types.Absent()
	}

	t, err := cast.ToTimeE(raw)
	if err != nil {
		return types.Absent()
	}
	return types.Date(t)
}

func coerceStringList(raw interface{}) types.Value {
	switch v := raw.(type) {
	case []string:
		items := make([]string, len(v))
		copy(items, v)
		return types.StringList(items)
	case []interface{}:
		items := make([]string, 0, len(v))
		for _, elem := range v {
			// non-primitive elements are dropped, not stringified
			if s, ok := stringifyPrimitive(elem); ok {
				items = append(items, s)
			}
		}
		return types.StringList(items)
	default:
		// a scalar wraps as a single-element list
		if s, ok := stringifyPrimitive(raw); ok {
			return types.StringList([]string{s})
		}
		return types.Absent()
	}
}

func coerceObject(raw interface{}) types.Value {
	if m, ok := raw.(map[string]interface{}); ok {
		return types.Object(m)
	}
	return types.Absent()
}
