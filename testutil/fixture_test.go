package testutil

import (
	"testing"

	"github.com/cardexhq/cardex/internal/validation"
)

func TestUniverseLoads(t *testing.T) {
	u := LoadUniverse(t)

	if len(u.Records) != 7 {
		t.Fatalf("expected 7 fixture records, got %d", len(u.Records))
	}

	if got := u.Dune.ID(); got != "978-0441013593" {
		t.Errorf("ids derive from the designated isbn field, got %q", got)
	}
	if got, _ := u.Dune.GetNumber("pages"); got != 412 {
		t.Errorf("expected Dune at 412 pages, got %v", got)
	}
	if u.Solaris.Has("pages") {
		t.Error("Solaris is the missing-pages record")
	}
}

func TestUniverseSchemaIsValid(t *testing.T) {
	if err := validation.Validate(BookSchema()); err != nil {
		t.Fatalf("fixture schema must validate: %v", err)
	}
}

func TestUnsignedIsPresentAndFalse(t *testing.T) {
	u := LoadUniverse(t)

	if !u.Unsigned.Has("signed") {
		t.Fatal("signed=false must count as present")
	}
	signed, ok := u.Unsigned.GetBool("signed")
	if !ok || signed {
		t.Errorf("expected present false, got %v (%v)", signed, ok)
	}
}

func TestBadRawFieldsAreAbsent(t *testing.T) {
	u := LoadUniverse(t)

	for _, key := range []string{"title", "pages", "published", "meta"} {
		if u.BadRaw.Has(key) {
			t.Errorf("malformed raw value for %q must coerce to absent", key)
		}
	}
	// the raw tags map is not a list shape either
	if u.BadRaw.Has("tags") {
		t.Error("a map is not a valid list value")
	}
}
