package types

import (
	"reflect"
	"time"
)

// Kind identifies which member of the Value union is populated
type Kind int

const (
	// KindAbsent marks a value that is not set; the zero Value is absent
	KindAbsent Kind = iota
	KindString
	KindNumber
	KindBool
	KindDate
	KindStringList
	KindObject
)

// String returns the string representation of the Kind
func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	case KindDate:
		return "date"
	case KindStringList:
		return "list"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is the closed value type stored in a record field. Exactly one
// member is populated, selected by Kind. Consumers switch on Kind instead
// of casting interface{} values.
//
// The zero Value is absent, so an unpopulated lookup is always safe to use.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
	t    time.Time
	list []string
	obj  map[string]interface{}
}

// Absent returns the explicit not-set value
func Absent() Value {
	return Value{}
}

// String wraps a string value
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Number wraps a numeric value
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// Bool wraps a boolean value
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Date wraps a timestamp value
func Date(t time.Time) Value {
	return Value{kind: KindDate, t: t}
}

// StringList wraps a list-of-strings value
func StringList(items []string) Value {
	return Value{kind: KindStringList, list: items}
}

// Object wraps a nested object value
func Object(m map[string]interface{}) Value {
	return Value{kind: KindObject, obj: m}
}

// Kind returns which member of the union is populated
func (v Value) Kind() Kind {
	return v.kind
}

// IsAbsent reports whether the value is not set
func (v Value) IsAbsent() bool {
	return v.kind == KindAbsent
}

// AsString returns the string member and whether it is populated
func (v Value) AsString() (string, bool) {
	return v.str, v.kind == KindString
}

// AsNumber returns the numeric member and whether it is populated
func (v Value) AsNumber() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// AsBool returns the boolean member and whether it is populated
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// AsDate returns the timestamp member and whether it is populated
func (v Value) AsDate() (time.Time, bool) {
	return v.t, v.kind == KindDate
}

// AsStringList returns the list member and whether it is populated.
// The returned slice is shared, not copied.
func (v Value) AsStringList() ([]string, bool) {
	return v.list, v.kind == KindStringList
}

// AsObject returns the object member and whether it is populated.
// The returned map is shared, not copied.
func (v Value) AsObject() (map[string]interface{}, bool) {
	return v.obj, v.kind == KindObject
}

// Interface returns the populated member as a plain interface{} suitable
// for JSON serialization. Absent returns nil.
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return v.num
	case KindBool:
		return v.b
	case KindDate:
		return v.t
	case KindStringList:
		return v.list
	case KindObject:
		return v.obj
	default:
		return nil
	}
}

// Equal reports whether two values hold the same kind and content
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindAbsent:
		return true
	case KindString:
		return v.str == o.str
	case KindNumber:
		return v.num == o.num
	case KindBool:
		return v.b == o.b
	case KindDate:
		return v.t.Equal(o.t)
	case KindStringList:
		if len(v.list) != len(o.list) {
			return false
		}
		for i := range v.list {
			if v.list[i] != o.list[i] {
				return false
			}
		}
		return true
	case KindObject:
		return reflect.DeepEqual(v.obj, o.obj)
	default:
		return false
	}
}
