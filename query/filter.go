package query

import (
	"github.com/cardexhq/cardex/catalog"
)

// Filter returns the records satisfying every criterion, in their original
// order. A record with the target field absent fails any populated
// constraint on it; a criterion keyed by an unknown field behaves as if
// every record were missing that field.
func Filter(records []*catalog.Record, criteria Criteria) []*catalog.Record {
	if len(criteria) == 0 {
		result := make([]*catalog.Record, len(records))
		copy(result, records)
		return result
	}

	var result []*catalog.Record
	for _, r := range records {
		if matchesAll(r, criteria) {
			result = append(result, r)
		}
	}
	return result
}

// matchesAll checks a record against every criterion (AND across fields)
func matchesAll(r *catalog.Record, criteria Criteria) bool {
	for key, criterion := range criteria {
		if !criterion.matches(r.Get(key)) {
			return false
		}
	}
	return true
}
