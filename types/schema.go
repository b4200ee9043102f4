package types

// CoreFields designates the special roles within a schema
type CoreFields struct {
	// TitleField is the key of the field holding an item's title
	TitleField string

	// IDField is the key of the field supplying the item's unique id (optional)
	IDField string

	// StatusField is the key of the field used for default grouping (optional)
	StatusField string
}

// Schema describes one catalog: its declared fields and their special roles.
// The core trusts the schema; structural validation (unique keys, known
// types, core field references) belongs to the configuration layer.
type Schema struct {
	// Fields lists the declared fields in display order
	Fields []Field

	// Core designates the title/id/status roles
	Core CoreFields

	// fieldSet is the keyed lookup representation
	// Populated lazily from Fields
	fieldSet *FieldSet
}

// Field returns the field declaration for a key
func (s Schema) Field(key string) (*Field, bool) {
	for i := range s.Fields {
		if s.Fields[i].Key == key {
			return &s.Fields[i], true
		}
	}
	return nil, false
}

// Keys returns the declared field keys in order
func (s Schema) Keys() []string {
	keys := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		keys[i] = f.Key
	}
	return keys
}

// FieldSet returns the keyed field set, initializing it if needed
func (s *Schema) FieldSet() *FieldSet {
	if s.fieldSet == nil {
		s.fieldSet = NewFieldSet(s.Fields)
	}
	return s.fieldSet
}

// FieldSet represents an ordered collection of field declarations
// with constant-time lookup by key
type FieldSet struct {
	fields []Field
	byKey  map[string]*Field
}

// NewFieldSet creates a new field set from a slice of declarations
func NewFieldSet(fields []Field) *FieldSet {
	fs := &FieldSet{
		fields: make([]Field, len(fields)),
		byKey:  make(map[string]*Field),
	}

	copy(fs.fields, fields)

	for i := range fs.fields {
		fs.byKey[fs.fields[i].Key] = &fs.fields[i]
	}

	return fs
}

// Get returns a field by key
func (fs *FieldSet) Get(key string) (*Field, bool) {
	f, exists := fs.byKey[key]
	return f, exists
}

// All returns all fields in order
func (fs *FieldSet) All() []Field {
	return fs.fields
}

// Visible returns only the fields flagged visible
func (fs *FieldSet) Visible() []Field {
	var result []Field
	for _, f := range fs.fields {
		if f.Visible {
			result = append(result, f)
		}
	}
	return result
}

// Filterable returns only the fields flagged filterable
func (fs *FieldSet) Filterable() []Field {
	var result []Field
	for _, f := range fs.fields {
		if f.Filterable {
			result = append(result, f)
		}
	}
	return result
}

// Sortable returns only the fields flagged sortable
func (fs *FieldSet) Sortable() []Field {
	var result []Field
	for _, f := range fs.fields {
		if f.Sortable {
			result = append(result, f)
		}
	}
	return result
}

// Count returns the number of declared fields
func (fs *FieldSet) Count() int {
	return len(fs.fields)
}
