package query

import (
	"github.com/cardexhq/cardex/catalog"
	"github.com/cardexhq/cardex/formats"
	"github.com/cardexhq/cardex/types"
)

// UnsetKey is the display key of the group holding records that miss the
// grouping field.
const UnsetKey = "(unset)"

// Group is one distinct value of the grouping field and the records that
// share it. Key keeps the coerced value type (numeric keys stay numeric);
// the group of records missing the field carries the absent value.
type Group struct {
	Key     types.Value
	Records []*catalog.Record
}

// GroupBy partitions records by the distinct values of a field. A record
// whose field holds a list joins one group per element (fan-out); a record
// missing the field joins the unset group instead of being dropped. Groups
// come back in first-seen order, with the unset group last; callers needing
// another order sort the groups themselves.
func GroupBy(records []*catalog.Record, key string) []Group {
	var groups []Group
	index := make(map[string]int)
	var unset []*catalog.Record

	add := func(groupKey types.Value, r *catalog.Record) {
		display := Flatten(groupKey)
		if i, exists := index[display]; exists {
			groups[i].Records = append(groups[i].Records, r)
			return
		}
		index[display] = len(groups)
		groups = append(groups, Group{Key: groupKey, Records: []*catalog.Record{r}})
	}

	for _, r := range records {
		v := r.Get(key)
		if v.IsAbsent() {
			unset = append(unset, r)
			continue
		}

		if items, ok := v.AsStringList(); ok {
			if len(items) == 0 {
				unset = append(unset, r)
				continue
			}
			for _, item := range items {
				add(types.String(item), r)
			}
			continue
		}

		add(v, r)
	}

	if len(unset) > 0 {
		groups = append(groups, Group{Key: types.Absent(), Records: unset})
	}

	return groups
}

// Flatten normalizes a group key to its display string. The absent key
// becomes UnsetKey.
func Flatten(key types.Value) string {
	if key.IsAbsent() {
		return UnsetKey
	}
	return formats.Value(key)
}

// FlattenGroups converts groups into a map keyed by display string, the
// shape consumers that only need string keys use.
func FlattenGroups(groups []Group) map[string][]*catalog.Record {
	out := make(map[string][]*catalog.Record, len(groups))
	for _, g := range groups {
		out[Flatten(g.Key)] = g.Records
	}
	return out
}
