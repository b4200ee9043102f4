// Package search provides scored, optionally highlighted text search over
// catalog records. It sits on top of the record accessors and the display
// formatting contract; like the rest of the core it never fails on
// malformed input.
package search

import "github.com/cardexhq/cardex/catalog"

// Options configures search behavior
type Options struct {
	// Query is the search term to look for; empty matches nothing
	Query string

	// Fields specifies which field keys to search in.
	// Empty searches every string-bearing schema field.
	Fields []string

	// CaseSensitive controls whether matching is case-sensitive
	CaseSensitive bool

	// ExactMatch requires the entire field to equal the query
	// When false, performs substring matching
	ExactMatch bool

	// EnableHighlight includes highlighted match text in results
	EnableHighlight bool

	// HighlightStartMarker and HighlightEndMarker wrap matches in
	// highlighted text; both default to "**"
	HighlightStartMarker string
	HighlightEndMarker   string

	// MaxResults limits the number of results; nil means no limit
	MaxResults *int
}

// Result represents one matched record with relevance metadata
type Result struct {
	// Record is the matched record
	Record *catalog.Record

	// Score represents match relevance (0.0 to 1.0, higher is better)
	Score float64

	// MatchedFields lists the field keys that contained matches
	MatchedFields []string

	// Highlights contains highlighted text per matched field when
	// EnableHighlight is set
	Highlights map[string]string
}
