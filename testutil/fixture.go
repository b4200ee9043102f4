// Package testutil provides the shared book-catalog fixture the query,
// stats and search tests run against.
package testutil

import (
	"testing"

	"github.com/cardexhq/cardex/catalog"
	"github.com/cardexhq/cardex/types"
)

// Universe provides typed access to the fixture records
type Universe struct {
	Schema types.Schema

	// Fully populated records
	Dune        *catalog.Record // finished, 412 pages, rated, tagged
	Hobbit      *catalog.Record // finished, 310 pages, tagged
	Solaris     *catalog.Record // reading, pages absent
	Neuromancer *catalog.Record // reading, 271 pages

	// Edge cases
	Untitled *catalog.Record // only isbn set; most fields absent
	Unsigned *catalog.Record // signed explicitly false (present, not absent)
	BadRaw   *catalog.Record // built from malformed raw values

	// Records in schema order of creation
	Records []*catalog.Record
}

// BookSchema returns the fixture schema: a small book catalog with one
// field of every declared type.
func BookSchema() types.Schema {
	return types.Schema{
		Fields: []types.Field{
			{Key: "title", Label: "Title", Type: types.StringType, Category: "core", Visible: true, Filterable: true, Sortable: true},
			{Key: "isbn", Label: "ISBN", Type: types.StringType, Category: "core", Visible: false, Filterable: false, Sortable: false},
			{Key: "author", Label: "Author", Type: types.StringType, Category: "core", Visible: true, Filterable: true, Sortable: true},
			{Key: "status", Label: "Status", Type: types.StringType, Category: "workflow", Visible: true, Filterable: true, Sortable: true},
			{Key: "pages", Label: "Pages", Type: types.NumberType, Category: "detail", Visible: true, Filterable: true, Sortable: true},
			{Key: "rating", Label: "Rating", Type: types.NumberType, Category: "detail", Visible: true, Filterable: true, Sortable: true},
			{Key: "published", Label: "Published", Type: types.DateType, Category: "detail", Visible: true, Filterable: true, Sortable: true},
			{Key: "tags", Label: "Tags", Type: types.StringListType, Category: "detail", Visible: true, Filterable: true, Sortable: false},
			{Key: "signed", Label: "Signed", Type: types.BoolType, Category: "detail", Visible: true, Filterable: true, Sortable: false},
			{Key: "meta", Label: "Metadata", Type: types.ObjectType, Category: "detail", Visible: false, Filterable: false, Sortable: false},
		},
		Core: types.CoreFields{
			TitleField:  "title",
			IDField:     "isbn",
			StatusField: "status",
		},
	}
}

// LoadUniverse builds the fixture records and returns them with their schema
func LoadUniverse(t *testing.T) *Universe {
	t.Helper()

	schema := BookSchema()
	u := &Universe{Schema: schema}

	build := func(ref string, raw map[string]interface{}) *catalog.Record {
		r := catalog.Build(raw, "", ref, schema)
		u.Records = append(u.Records, r)
		return r
	}

	u.Dune = build("books/dune.md", map[string]interface{}{
		"title":     "Dune",
		"isbn":      "978-0441013593",
		"author":    "Frank Herbert",
		"status":    "finished",
		"pages":     412,
		"rating":    4.5,
		"published": "1965-08-01",
		"tags":      []interface{}{"scifi", "classic"},
		"signed":    true,
		"meta":      map[string]interface{}{"shelf": "A3"},
	})

	u.Hobbit = build("books/hobbit.md", map[string]interface{}{
		"title":     "The Hobbit",
		"isbn":      "978-0547928227",
		"author":    "J.R.R. Tolkien",
		"status":    "finished",
		"pages":     310,
		"rating":    5,
		"published": "1937-09-21",
		"tags":      []interface{}{"fantasy", "classic"},
	})

	u.Solaris = build("books/solaris.md", map[string]interface{}{
		"title":     "Solaris",
		"isbn":      "978-0156837507",
		"author":    "Stanislaw Lem",
		"status":    "reading",
		"published": "1961-06-01",
		"tags":      []interface{}{"scifi"},
	})

	u.Neuromancer = build("books/neuromancer.md", map[string]interface{}{
		"title":     "Neuromancer",
		"isbn":      "978-0441569595",
		"author":    "William Gibson",
		"status":    "reading",
		"pages":     271,
		"rating":    3.8,
		"published": "1984-07-01",
		"tags":      []interface{}{"scifi", "cyberpunk"},
	})

	u.Untitled = build("books/untitled.md", map[string]interface{}{
		"isbn": "978-0000000000",
	})

	u.Unsigned = build("books/unsigned.md", map[string]interface{}{
		"title":  "Unsigned Copy",
		"isbn":   "978-1111111111",
		"author": "Frank Herbert",
		"status": "draft",
		"pages":  100,
		"signed": false,
	})

	u.BadRaw = build("books/bad.md", map[string]interface{}{
		"title":     map[string]interface{}{"not": "a string"},
		"isbn":      "978-2222222222",
		"pages":     "not a number",
		"published": "2024-13-40",
		"tags":      map[string]interface{}{"not": "a list"},
		"meta":      []interface{}{"not", "an", "object"},
	})

	return u
}
