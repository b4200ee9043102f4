// Package query provides the filter, sort and group operations over
// collections of catalog records. All operations are pure: they read
// records through their accessors and never mutate them, and they never
// fail on malformed input; a criterion that can't match simply matches
// nothing.
package query

import (
	"strings"
	"time"

	"github.com/cardexhq/cardex/formats"
	"github.com/cardexhq/cardex/types"
)

// Criterion constrains a single field. Every populated part must hold for
// a record to match (AND within the criterion); values inside AnyOf
// combine with OR. Ranges are inclusive on both ends and are applied
// literally, so min > max yields zero matches by construction.
type Criterion struct {
	// AnyOf matches records whose field value (or, for list fields, any
	// list element) equals one of these display strings
	AnyOf []string

	// Min and Max bound numeric fields
	Min *float64
	Max *float64

	// MinDate and MaxDate bound date fields
	MinDate *time.Time
	MaxDate *time.Time

	// Contains performs a case-insensitive substring match on the
	// field's display string
	Contains string
}

// Criteria maps field keys to their constraints. Distinct fields combine
// with AND. An empty Criteria matches every record.
type Criteria map[string]Criterion

// matches reports whether a field value satisfies the criterion. An absent
// value never satisfies a populated constraint.
func (c Criterion) matches(v types.Value) bool {
	if len(c.AnyOf) > 0 && !c.matchesAnyOf(v) {
		return false
	}

	if c.Min != nil || c.Max != nil {
		n, ok := v.AsNumber()
		if !ok {
			return false
		}
		if c.Min != nil && n < *c.Min {
			return false
		}
		if c.Max != nil && n > *c.Max {
			return false
		}
	}

	if c.MinDate != nil || c.MaxDate != nil {
		t, ok := v.AsDate()
		if !ok {
			return false
		}
		if c.MinDate != nil && t.Before(*c.MinDate) {
			return false
		}
		if c.MaxDate != nil && t.After(*c.MaxDate) {
			return false
		}
	}

	if c.Contains != "" {
		if v.IsAbsent() {
			return false
		}
		haystack := strings.ToLower(formats.Value(v))
		if !strings.Contains(haystack, strings.ToLower(c.Contains)) {
			return false
		}
	}

	return true
}

func (c Criterion) matchesAnyOf(v types.Value) bool {
	if v.IsAbsent() {
		return false
	}

	// list fields match when any element is in the wanted set
	if items, ok := v.AsStringList(); ok {
		for _, item := range items {
			for _, want := range c.AnyOf {
				if item == want {
					return true
				}
			}
		}
		return false
	}

	got := formats.Value(v)
	for _, want := range c.AnyOf {
		if got == want {
			return true
		}
	}
	return false
}
