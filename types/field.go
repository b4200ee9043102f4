package types

import "fmt"

// FieldType defines the declared type of a catalog field
type FieldType int

const (
	// StringType fields hold free-form text
	StringType FieldType = iota
	// NumberType fields hold finite floating point numbers
	NumberType
	// BoolType fields hold booleans
	BoolType
	// DateType fields hold calendar timestamps
	DateType
	// StringListType fields hold ordered lists of strings (e.g. tags)
	StringListType
	// ObjectType fields hold nested key/value objects passed through opaquely
	ObjectType
)

// AllFieldTypes lists every declared field type.
// Exhaustiveness tests for consumers of FieldType iterate this slice.
var AllFieldTypes = []FieldType{
	StringType,
	NumberType,
	BoolType,
	DateType,
	StringListType,
	ObjectType,
}

// String returns the string representation of the FieldType
func (ft FieldType) String() string {
	switch ft {
	case StringType:
		return "string"
	case NumberType:
		return "number"
	case BoolType:
		return "boolean"
	case DateType:
		return "date"
	case StringListType:
		return "list"
	case ObjectType:
		return "object"
	default:
		return "unknown"
	}
}

// ParseFieldType converts a configuration-file type name into a FieldType
func ParseFieldType(name string) (FieldType, error) {
	for _, ft := range AllFieldTypes {
		if ft.String() == name {
			return ft, nil
		}
	}
	return 0, fmt.Errorf("unknown field type %q", name)
}

// Field declares a single catalog field
type Field struct {
	// Key is the stable identifier used for storage and queries
	Key string

	// Label is the display name; the core threads it through untouched
	Label string

	// Type specifies the declared value type for this field
	Type FieldType

	// Category is an organizational tag with no behavioral effect
	Category string

	// Visible controls whether the presentation layer shows this field
	Visible bool

	// Filterable marks the field as a valid filter target
	Filterable bool

	// Sortable marks the field as a valid sort target
	Sortable bool
}
