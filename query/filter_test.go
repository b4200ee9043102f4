package query

import (
	"testing"
	"time"

	"github.com/cardexhq/cardex/catalog"
	"github.com/cardexhq/cardex/types"
)

func draftSchema() types.Schema {
	return types.Schema{
		Fields: []types.Field{
			{Key: "status", Label: "Status", Type: types.StringType},
			{Key: "words", Label: "Words", Type: types.NumberType},
			{Key: "tags", Label: "Tags", Type: types.StringListType},
			{Key: "due", Label: "Due", Type: types.DateType},
		},
		Core: types.CoreFields{StatusField: "status"},
	}
}

// draftRecords builds the three-record set used across the query tests:
// two drafts with word counts and one final without.
func draftRecords(t *testing.T) []*catalog.Record {
	t.Helper()
	schema := draftSchema()
	return []*catalog.Record{
		catalog.Build(map[string]interface{}{"status": "draft", "words": 1000}, "r1", "", schema),
		catalog.Build(map[string]interface{}{"status": "draft", "words": 2000}, "r2", "", schema),
		catalog.Build(map[string]interface{}{"status": "final"}, "r3", "", schema),
	}
}

func ids(records []*catalog.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID()
	}
	return out
}

func TestFilterEmptyCriteriaReturnsAllInOrder(t *testing.T) {
	records := draftRecords(t)

	got := Filter(records, Criteria{})
	if len(got) != len(records) {
		t.Fatalf("expected %d records, got %d", len(records), len(got))
	}
	for i := range records {
		if got[i] != records[i] {
			t.Errorf("position %d: order not preserved", i)
		}
	}

	got = Filter(records, nil)
	if len(got) != len(records) {
		t.Fatalf("nil criteria: expected %d records, got %d", len(records), len(got))
	}
}

func TestFilterMembershipAndRange(t *testing.T) {
	records := draftRecords(t)

	min := 1500.0
	max := 3000.0
	got := Filter(records, Criteria{
		"status": {AnyOf: []string{"draft"}},
		"words":  {Min: &min, Max: &max},
	})

	if len(got) != 1 || got[0].ID() != "r2" {
		t.Fatalf("expected only r2, got %v", ids(got))
	}
}

func TestFilterMembershipIsOrWithinField(t *testing.T) {
	records := draftRecords(t)

	got := Filter(records, Criteria{
		"status": {AnyOf: []string{"draft", "final"}},
	})
	if len(got) != 3 {
		t.Fatalf("expected all 3 records, got %v", ids(got))
	}
}

func TestFilterAbsentFieldNeverMatchesConstraints(t *testing.T) {
	records := draftRecords(t)
	min := 0.0

	// r3 has no words at all; a range starting at zero still excludes it
	got := Filter(records, Criteria{"words": {Min: &min}})
	for _, r := range got {
		if r.ID() == "r3" {
			t.Error("record missing the field must not satisfy a range criterion")
		}
	}
	if len(got) != 2 {
		t.Errorf("expected the two worded records, got %v", ids(got))
	}
}

func TestFilterUnknownFieldExcludesEverything(t *testing.T) {
	records := draftRecords(t)

	got := Filter(records, Criteria{"nonexistent": {AnyOf: []string{"x"}}})
	if len(got) != 0 {
		t.Errorf("criterion on unknown field must match nothing, got %v", ids(got))
	}
}

func TestFilterInvertedRangeMatchesNothing(t *testing.T) {
	records := draftRecords(t)
	min := 3000.0
	max := 1000.0

	// min > max is applied literally, not rejected
	got := Filter(records, Criteria{"words": {Min: &min, Max: &max}})
	if len(got) != 0 {
		t.Errorf("inverted range must match nothing, got %v", ids(got))
	}
}

func TestFilterRangeBoundsAreInclusive(t *testing.T) {
	records := draftRecords(t)
	min := 1000.0
	max := 2000.0

	got := Filter(records, Criteria{"words": {Min: &min, Max: &max}})
	if len(got) != 2 {
		t.Errorf("both bounds are inclusive, got %v", ids(got))
	}
}

func TestFilterContains(t *testing.T) {
	records := draftRecords(t)

	got := Filter(records, Criteria{"status": {Contains: "RAF"}})
	if len(got) != 2 {
		t.Errorf("substring match is case-insensitive, got %v", ids(got))
	}

	got = Filter(records, Criteria{"status": {Contains: "zzz"}})
	if len(got) != 0 {
		t.Errorf("expected no matches, got %v", ids(got))
	}
}

func TestFilterListFieldMembership(t *testing.T) {
	schema := draftSchema()
	records := []*catalog.Record{
		catalog.Build(map[string]interface{}{"tags": []interface{}{"scifi", "classic"}}, "r1", "", schema),
		catalog.Build(map[string]interface{}{"tags": []interface{}{"fantasy"}}, "r2", "", schema),
		catalog.Build(map[string]interface{}{}, "r3", "", schema),
	}

	got := Filter(records, Criteria{"tags": {AnyOf: []string{"classic", "western"}}})
	if len(got) != 1 || got[0].ID() != "r1" {
		t.Fatalf("expected only r1 via element membership, got %v", ids(got))
	}
}

func TestFilterDateRange(t *testing.T) {
	schema := draftSchema()
	records := []*catalog.Record{
		catalog.Build(map[string]interface{}{"due": "2024-01-15"}, "r1", "", schema),
		catalog.Build(map[string]interface{}{"due": "2024-06-15"}, "r2", "", schema),
		catalog.Build(map[string]interface{}{}, "r3", "", schema),
	}

	from, _ := time.Parse("2006-01-02", "2024-03-01")
	got := Filter(records, Criteria{"due": {MinDate: &from}})
	if len(got) != 1 || got[0].ID() != "r2" {
		t.Fatalf("expected only r2, got %v", ids(got))
	}
}
