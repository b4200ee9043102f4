// Package formats holds the purely presentational side of the catalog:
// turning typed values into display strings and schemas into files.
// Formatting is deliberately separate from coercion and the two are never
// merged; coercion lives in the catalog package.
package formats

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/cardexhq/cardex/catalog"
	"github.com/cardexhq/cardex/types"
)

// Value renders a typed value as a display string. Absent renders as the
// empty string; callers wanting a placeholder substitute their own.
func Value(v types.Value) string {
	switch v.Kind() {
	case types.KindString:
		s, _ := v.AsString()
		return s
	case types.KindNumber:
		n, _ := v.AsNumber()
		return strconv.FormatFloat(n, 'f', -1, 64)
	case types.KindBool:
		b, _ := v.AsBool()
		return strconv.FormatBool(b)
	case types.KindDate:
		t, _ := v.AsDate()
		return formatDate(t)
	case types.KindStringList:
		items, _ := v.AsStringList()
		return strings.Join(items, ", ")
	case types.KindObject:
		m, _ := v.AsObject()
		data, err := json.Marshal(m)
		if err != nil {
			return ""
		}
		return string(data)
	default:
		return ""
	}
}

// formatDate renders date-only timestamps without the zero time-of-day
func formatDate(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format("2006-01-02")
	}
	return t.Format(time.RFC3339)
}

// Row renders a record's visible fields as display strings keyed by field
// key, in the shape a tabular presentation layer consumes.
func Row(r *catalog.Record, schema types.Schema) map[string]string {
	row := make(map[string]string)
	for _, field := range schema.FieldSet().Visible() {
		row[field.Key] = Value(r.Get(field.Key))
	}
	return row
}
