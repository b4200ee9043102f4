package catalog

import (
	"math"
	"testing"
	"time"

	"github.com/cardexhq/cardex/types"
)

func field(ft types.FieldType) types.Field {
	return types.Field{Key: "f", Label: "F", Type: ft}
}

func TestCoerceNilIsAlwaysAbsent(t *testing.T) {
	for _, ft := range types.AllFieldTypes {
		if v := Coerce(nil, field(ft)); !v.IsAbsent() {
			t.Errorf("nil against %s: expected absent, got %s", ft, v.Kind())
		}
	}
}

func TestCoerceIsExhaustiveOverFieldTypes(t *testing.T) {
	// one canonical raw value per declared type; a new FieldType constant
	// without an entry here fails until both Coerce and this table handle it
	samples := map[types.FieldType]interface{}{
		types.StringType:     "text",
		types.NumberType:     42,
		types.BoolType:       true,
		types.DateType:       "2024-06-15",
		types.StringListType: []interface{}{"a", "b"},
		types.ObjectType:     map[string]interface{}{"k": "v"},
	}

	for _, ft := range types.AllFieldTypes {
		raw, covered := samples[ft]
		if !covered {
			t.Fatalf("no canonical sample input for field type %s", ft)
		}
		v := Coerce(raw, field(ft))
		if v.IsAbsent() {
			t.Errorf("canonical %s input must coerce to a value, got absent", ft)
			continue
		}
		if got := v.Kind().String(); got != ft.String() {
			t.Errorf("canonical %s input coerced to kind %s", ft, got)
		}
	}
}

func TestCoerceNeverProducesMismatchedKinds(t *testing.T) {
	// any input shape against any declared type yields either the matching
	// kind or absent, never some other kind
	inputs := []interface{}{
		"text", 42, 4.5, true, []interface{}{"a", 1}, map[string]interface{}{"k": "v"}, time.Now(),
	}
	for _, ft := range types.AllFieldTypes {
		for _, raw := range inputs {
			v := Coerce(raw, field(ft))
			if v.IsAbsent() {
				continue
			}
			if got := v.Kind().String(); got != ft.String() {
				t.Errorf("coerce(%v) against %s: got kind %s", raw, ft, got)
			}
		}
	}
}

func TestCoerceString(t *testing.T) {
	tests := []struct {
		name   string
		raw    interface{}
		want   string
		absent bool
	}{
		{"passthrough", "hello", "hello", false},
		{"number stringifies", 42, "42", false},
		{"float stringifies", 4.5, "4.5", false},
		{"bool stringifies", true, "true", false},
		{"object rejected", map[string]interface{}{"a": 1}, "", true},
		{"array rejected", []interface{}{"a"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Coerce(tt.raw, field(types.StringType))
			if tt.absent {
				if !v.IsAbsent() {
					t.Fatalf("expected absent, got %v", v.Interface())
				}
				return
			}
			got, ok := v.AsString()
			if !ok {
				t.Fatalf("expected string, got %s", v.Kind())
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestCoerceNumber(t *testing.T) {
	tests := []struct {
		name   string
		raw    interface{}
		want   float64
		absent bool
	}{
		{"int passthrough", 42, 42, false},
		{"float passthrough", 4.5, 4.5, false},
		{"string parses", "456", 456, false},
		{"unparsable string", "not a number", 0, true},
		{"bool rejected", true, 0, true},
		{"object rejected", map[string]interface{}{}, 0, true},
		{"array rejected", []interface{}{1}, 0, true},
		{"nan rejected", math.NaN(), 0, true},
		{"inf rejected", math.Inf(1), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Coerce(tt.raw, field(types.NumberType))
			if tt.absent {
				if !v.IsAbsent() {
					t.Fatalf("expected absent, got %v", v.Interface())
				}
				return
			}
			got, ok := v.AsNumber()
			if !ok {
				t.Fatalf("expected number, got %s", v.Kind())
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestCoerceNumberNeverNaN(t *testing.T) {
	inputs := []interface{}{
		"abc", "NaN", math.NaN(), math.Inf(-1), "1e999", "", "12.5", 7,
	}
	for _, raw := range inputs {
		v := Coerce(raw, field(types.NumberType))
		if n, ok := v.AsNumber(); ok {
			if math.IsNaN(n) || math.IsInf(n, 0) {
				t.Errorf("coerce(%v) produced non-finite number %v", raw, n)
			}
		}
	}
}

func TestCoerceBool(t *testing.T) {
	tests := []struct {
		name string
		raw  interface{}
		want bool
	}{
		{"true passthrough", true, true},
		{"false passthrough", false, false},
		{"string true", "true", true},
		{"string TRUE", "TRUE", true},
		{"string yes is false", "yes", false},
		{"string empty is false", "", false},
		{"nonzero number truthy", 1, true},
		{"zero number falsy", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Coerce(tt.raw, field(types.BoolType))
			got, ok := v.AsBool()
			if !ok {
				t.Fatalf("expected boolean, got %s", v.Kind())
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestCoerceDate(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name   string
		raw    interface{}
		absent bool
	}{
		{"time passthrough", now, false},
		{"iso string", "2024-06-15", false},
		{"invalid date string", "2024-13-40", true},
		{"garbage string", "not a date", true},
		{"object rejected", map[string]interface{}{}, true},
		{"array rejected", []interface{}{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Coerce(tt.raw, field(types.DateType))
			if tt.absent {
				if !v.IsAbsent() {
					t.Fatalf("expected absent, got %v", v.Interface())
				}
				return
			}
			if _, ok := v.AsDate(); !ok {
				t.Fatalf("expected date, got %s", v.Kind())
			}
		})
	}
}

func TestCoerceDatePassthroughKeepsInstant(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)
	v := Coerce(now, field(types.DateType))
	got, ok := v.AsDate()
	if !ok {
		t.Fatalf("expected date, got %s", v.Kind())
	}
	if !got.Equal(now) {
		t.Errorf("expected %v, got %v", now, got)
	}
}

func TestCoerceStringList(t *testing.T) {
	tests := []struct {
		name   string
		raw    interface{}
		want   []string
		absent bool
	}{
		{"string slice", []string{"a", "b"}, []string{"a", "b"}, false},
		{"interface slice", []interface{}{"a", 2, true}, []string{"a", "2", "true"}, false},
		{"non-primitive elements dropped", []interface{}{"a", map[string]interface{}{}, "b"}, []string{"a", "b"}, false},
		{"scalar wraps", "solo", []string{"solo"}, false},
		{"number wraps", 7, []string{"7"}, false},
		{"object rejected", map[string]interface{}{}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Coerce(tt.raw, field(types.StringListType))
			if tt.absent {
				if !v.IsAbsent() {
					t.Fatalf("expected absent, got %v", v.Interface())
				}
				return
			}
			got, ok := v.AsStringList()
			if !ok {
				t.Fatalf("expected list, got %s", v.Kind())
			}
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("element %d: expected %q, got %q", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestCoerceObject(t *testing.T) {
	m := map[string]interface{}{"a": 1}

	v := Coerce(m, field(types.ObjectType))
	got, ok := v.AsObject()
	if !ok {
		t.Fatalf("expected object, got %s", v.Kind())
	}
	if got["a"] != 1 {
		t.Errorf("expected object contents preserved, got %v", got)
	}

	for _, raw := range []interface{}{"text", 42, true, []interface{}{1}} {
		if v := Coerce(raw, field(types.ObjectType)); !v.IsAbsent() {
			t.Errorf("coerce(%v) against object: expected absent, got %s", raw, v.Kind())
		}
	}
}
