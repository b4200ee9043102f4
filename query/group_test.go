package query

import (
	"testing"

	"github.com/cardexhq/cardex/catalog"
	"github.com/cardexhq/cardex/types"
)

func TestGroupByStatus(t *testing.T) {
	records := draftRecords(t)

	groups := FlattenGroups(GroupBy(records, "status"))

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if got := ids(groups["draft"]); len(got) != 2 || got[0] != "r1" || got[1] != "r2" {
		t.Errorf("draft group: expected [r1 r2], got %v", got)
	}
	if got := ids(groups["final"]); len(got) != 1 || got[0] != "r3" {
		t.Errorf("final group: expected [r3], got %v", got)
	}
}

func TestGroupByListFieldFansOut(t *testing.T) {
	schema := draftSchema()
	records := []*catalog.Record{
		catalog.Build(map[string]interface{}{"tags": []interface{}{"scifi", "classic"}}, "r1", "", schema),
		catalog.Build(map[string]interface{}{"tags": []interface{}{"scifi"}}, "r2", "", schema),
	}

	groups := FlattenGroups(GroupBy(records, "tags"))

	if got := ids(groups["scifi"]); len(got) != 2 {
		t.Errorf("scifi group: expected both records, got %v", got)
	}
	if got := ids(groups["classic"]); len(got) != 1 || got[0] != "r1" {
		t.Errorf("classic group: expected [r1], got %v", got)
	}

	// every (record, element) pair appears exactly once
	total := 0
	for _, members := range groups {
		total += len(members)
	}
	if total != 3 {
		t.Errorf("expected 3 (record, value) pairs, got %d", total)
	}
}

func TestGroupByMissingFieldGoesToUnsetGroup(t *testing.T) {
	records := draftRecords(t)

	groups := GroupBy(records, "words")

	var unset *Group
	for i := range groups {
		if groups[i].Key.IsAbsent() {
			unset = &groups[i]
		}
	}
	if unset == nil {
		t.Fatal("expected a dedicated unset group")
	}
	if len(unset.Records) != 1 || unset.Records[0].ID() != "r3" {
		t.Errorf("unset group: expected [r3], got %v", ids(unset.Records))
	}
	if Flatten(unset.Key) != UnsetKey {
		t.Errorf("expected unset key to flatten to %q, got %q", UnsetKey, Flatten(unset.Key))
	}
}

func TestGroupByUnknownFieldYieldsSingleUnsetGroup(t *testing.T) {
	records := draftRecords(t)

	groups := GroupBy(records, "nonexistent")
	if len(groups) != 1 {
		t.Fatalf("expected a single group, got %d", len(groups))
	}
	if !groups[0].Key.IsAbsent() {
		t.Error("expected the unset group")
	}
	if len(groups[0].Records) != len(records) {
		t.Errorf("expected all records in the unset group, got %d", len(groups[0].Records))
	}
}

func TestGroupByKeepsNumericKeysTyped(t *testing.T) {
	records := draftRecords(t)

	groups := GroupBy(records, "words")
	for _, g := range groups {
		if g.Key.IsAbsent() {
			continue
		}
		if _, ok := g.Key.AsNumber(); !ok {
			t.Errorf("numeric field must produce numeric group keys, got %s", g.Key.Kind())
		}
	}
}

func TestGroupByEmptyListCountsAsUnset(t *testing.T) {
	schema := draftSchema()
	records := []*catalog.Record{
		catalog.Build(map[string]interface{}{"tags": []interface{}{}}, "r1", "", schema),
	}

	groups := GroupBy(records, "tags")
	if len(groups) != 1 || !groups[0].Key.IsAbsent() {
		t.Fatalf("record with an empty list has no group value, expected unset group")
	}
}

func TestFlattenScalarKeys(t *testing.T) {
	tests := []struct {
		name string
		key  types.Value
		want string
	}{
		{"string", types.String("draft"), "draft"},
		{"number", types.Number(1500), "1500"},
		{"bool", types.Bool(true), "true"},
		{"absent", types.Absent(), UnsetKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Flatten(tt.key); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
