package catalog

import (
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/cardexhq/cardex/types"
)

// Record is one catalog entry: an id, an opaque source reference, and a
// mapping from field key to typed value. Absence of a key in the mapping is
// the only representation of "not set"; there is no null sentinel.
//
// Every accessor is total. Getters return types.Absent() instead of
// panicking or returning a zero value for unset fields.
type Record struct {
	id        string
	sourceRef string
	fields    map[string]types.Value
}

// New creates an empty record with the given identity
func New(id, sourceRef string) *Record {
	return &Record{
		id:        id,
		sourceRef: sourceRef,
		fields:    make(map[string]types.Value),
	}
}

// Build constructs a record from raw key/value data and a schema. It
// iterates the schema's fields, not the raw data's keys, so only declared
// fields become typed fields. Raw values that fail coercion are omitted.
//
// The record id comes from the schema's designated id field when that field
// coerced successfully, then from the caller-supplied id, then from a fresh
// UUID.
func Build(raw map[string]interface{}, id, sourceRef string, schema types.Schema) *Record {
	r := New(id, sourceRef)

	for _, field := range schema.Fields {
		v := Coerce(raw[field.Key], field)
		if !v.IsAbsent() {
			r.fields[field.Key] = v
		}
	}

	if schema.Core.IDField != "" {
		if derived, ok := idString(r.fields[schema.Core.IDField]); ok {
			r.id = derived
		}
	}
	if r.id == "" {
		r.id = uuid.New().String()
	}

	return r
}

// idString renders a string or numeric field value as a record id
func idString(v types.Value) (string, bool) {
	if s, ok := v.AsString(); ok && s != "" {
		return s, true
	}
	if n, ok := v.AsNumber(); ok {
		return strconv.FormatFloat(n, 'f', -1, 64), true
	}
	return "", false
}

// ID returns the record's identifier
func (r *Record) ID() string {
	return r.id
}

// SourceRef returns the opaque source reference (e.g. a document path).
// The core never interprets it.
func (r *Record) SourceRef() string {
	return r.sourceRef
}

// Get returns the stored value for a key, or absent when unset. No schema
// check happens here; unknown keys simply read as absent.
func (r *Record) Get(key string) types.Value {
	return r.fields[key]
}

// GetChecked is the schema-verified variant of Get: keys not declared in
// the schema read as absent even if a value was stored under them.
func (r *Record) GetChecked(key string, schema types.Schema) types.Value {
	if _, declared := schema.FieldSet().Get(key); !declared {
		return types.Absent()
	}
	return r.fields[key]
}

// GetString returns the field as a string when set with that kind
func (r *Record) GetString(key string) (string, bool) {
	return r.fields[key].AsString()
}

// GetNumber returns the field as a number when set with that kind
func (r *Record) GetNumber(key string) (float64, bool) {
	return r.fields[key].AsNumber()
}

// GetBool returns the field as a boolean when set with that kind.
// A stored false is present; the second return is true for it.
func (r *Record) GetBool(key string) (bool, bool) {
	return r.fields[key].AsBool()
}

// GetDate returns the field as a timestamp when set with that kind
func (r *Record) GetDate(key string) (time.Time, bool) {
	return r.fields[key].AsDate()
}

// GetStringList returns the field as a string list when set with that kind
func (r *Record) GetStringList(key string) ([]string, bool) {
	return r.fields[key].AsStringList()
}

// GetObject returns the field as a nested object when set with that kind
func (r *Record) GetObject(key string) (map[string]interface{}, bool) {
	return r.fields[key].AsObject()
}

// Set overwrites a field unconditionally. No coercion happens here;
// callers bypassing Build are responsible for supplying typed values.
// Setting an absent value removes the key.
func (r *Record) Set(key string, v types.Value) {
	if v.IsAbsent() {
		delete(r.fields, key)
		return
	}
	r.fields[key] = v
}

// Has reports whether the field is set. A field holding false, zero or the
// empty string is present; only a missing mapping entry is not.
func (r *Record) Has(key string) bool {
	_, exists := r.fields[key]
	return exists
}

// Keys returns the set field keys in sorted order
func (r *Record) Keys() []string {
	keys := make([]string, 0, len(r.fields))
	for k := range r.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a new record with the same identity and an independent
// top-level field mapping. List and object values are shared by reference
// between original and clone; this shallow copy is the documented contract.
func (r *Record) Clone() *Record {
	clone := New(r.id, r.sourceRef)
	for k, v := range r.fields {
		clone.fields[k] = v
	}
	return clone
}

// FullObject materializes every schema field as a key, with nil standing in
// for unset fields, plus the record's id and sourceRef. Callers needing a
// fixed-shape row (tabular export) use this; callers needing a minimal
// payload use SparseObject.
func (r *Record) FullObject(schema types.Schema) map[string]interface{} {
	out := make(map[string]interface{}, len(schema.Fields)+2)
	out["id"] = r.id
	out["sourceRef"] = r.sourceRef
	for _, field := range schema.Fields {
		if v, exists := r.fields[field.Key]; exists {
			out[field.Key] = v.Interface()
		} else {
			out[field.Key] = nil
		}
	}
	return out
}

// SparseObject returns only the set fields, plus id and sourceRef
func (r *Record) SparseObject() map[string]interface{} {
	out := make(map[string]interface{}, len(r.fields)+2)
	out["id"] = r.id
	out["sourceRef"] = r.sourceRef
	for k, v := range r.fields {
		out[k] = v.Interface()
	}
	return out
}
