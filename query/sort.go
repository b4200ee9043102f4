package query

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/cardexhq/cardex/catalog"
	"github.com/cardexhq/cardex/formats"
	"github.com/cardexhq/cardex/types"
)

// Sort returns a new ordering of the records by the given field; the input
// slice is not mutated. String fields compare with an undetermined-locale
// collator; callers with a known locale use SortWithCollator.
func Sort(records []*catalog.Record, schema types.Schema, key string, descending bool) []*catalog.Record {
	return SortWithCollator(records, schema, key, descending, collate.New(language.Und))
}

// SortWithCollator sorts with an explicit collator for string comparison.
//
// Missing values always land at the end of the ascending order and the
// front of the descending order. That comes from one rule (absent compares
// greater than every present value) applied by the single comparator
// below, so no sort path can disagree on missing-value placement.
func SortWithCollator(records []*catalog.Record, schema types.Schema, key string, descending bool, coll *collate.Collator) []*catalog.Record {
	result := make([]*catalog.Record, len(records))
	copy(result, records)

	sort.SliceStable(result, func(i, j int) bool {
		c := compareValues(coll, result[i].Get(key), result[j].Get(key))
		if descending {
			return c > 0
		}
		return c < 0
	})

	return result
}

// compareValues orders two field values. Two absent values compare equal,
// so sorting by a key no record has (or an unknown key) leaves the order
// unchanged.
func compareValues(coll *collate.Collator, a, b types.Value) int {
	if a.IsAbsent() && b.IsAbsent() {
		return 0
	}
	if a.IsAbsent() {
		return 1
	}
	if b.IsAbsent() {
		return -1
	}

	if a.Kind() == b.Kind() {
		switch a.Kind() {
		case types.KindString:
			as, _ := a.AsString()
			bs, _ := b.AsString()
			return coll.CompareString(as, bs)
		case types.KindNumber:
			an, _ := a.AsNumber()
			bn, _ := b.AsNumber()
			switch {
			case an < bn:
				return -1
			case an > bn:
				return 1
			default:
				return 0
			}
		case types.KindDate:
			at, _ := a.AsDate()
			bt, _ := b.AsDate()
			switch {
			case at.Before(bt):
				return -1
			case at.After(bt):
				return 1
			default:
				return 0
			}
		}
	}

	// booleans, lists, objects and mixed kinds fall back to their display
	// strings rather than refusing to sort
	return coll.CompareString(formats.Value(a), formats.Value(b))
}
