package search

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cardexhq/cardex/catalog"
	"github.com/cardexhq/cardex/formats"
	"github.com/cardexhq/cardex/types"
)

// Search scans the records for the query and returns results ranked by
// score, highest first. An empty query returns no results.
func Search(records []*catalog.Record, schema types.Schema, opts Options) []Result {
	if opts.Query == "" {
		return []Result{}
	}

	query := opts.Query
	if !opts.CaseSensitive {
		query = strings.ToLower(query)
	}

	fields := opts.Fields
	if len(fields) == 0 {
		fields = searchableFields(schema)
	}

	var results []Result
	for _, r := range records {
		if result := searchRecord(r, schema, fields, query, opts); result != nil {
			results = append(results, *result)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if opts.MaxResults != nil && *opts.MaxResults > 0 && len(results) > *opts.MaxResults {
		results = results[:*opts.MaxResults]
	}

	return results
}

// searchableFields picks the schema fields worth text-searching: strings
// and string lists
func searchableFields(schema types.Schema) []string {
	var fields []string
	for _, f := range schema.Fields {
		if f.Type == types.StringType || f.Type == types.StringListType {
			fields = append(fields, f.Key)
		}
	}
	return fields
}

// searchRecord searches one record and returns a result if any field matches
func searchRecord(r *catalog.Record, schema types.Schema, fields []string, query string, opts Options) *Result {
	startMarker := opts.HighlightStartMarker
	endMarker := opts.HighlightEndMarker
	if startMarker == "" {
		startMarker = "**"
	}
	if endMarker == "" {
		endMarker = "**"
	}

	var matchedFields []string
	var highlights map[string]string
	var maxScore float64

	for _, key := range fields {
		v := r.Get(key)
		if v.IsAbsent() {
			continue
		}
		text := formats.Value(v)

		score, matched := matchField(text, query, key, schema, opts)
		if !matched {
			continue
		}

		matchedFields = append(matchedFields, key)
		if score > maxScore {
			maxScore = score
		}
		if opts.EnableHighlight {
			if highlights == nil {
				highlights = make(map[string]string)
			}
			highlights[key] = highlight(text, opts.Query, opts.CaseSensitive, startMarker, endMarker)
		}
	}

	if len(matchedFields) == 0 {
		return nil
	}

	return &Result{
		Record:        r,
		Score:         maxScore,
		MatchedFields: matchedFields,
		Highlights:    highlights,
	}
}

// matchField checks one field's text against the query and scores the match
func matchField(text, query, key string, schema types.Schema, opts Options) (float64, bool) {
	candidate := text
	if !opts.CaseSensitive {
		candidate = strings.ToLower(text)
	}

	if opts.ExactMatch {
		if candidate != query {
			return 0, false
		}
		return 1.0, true
	}

	if !strings.Contains(candidate, query) {
		return 0, false
	}

	return score(candidate, query, key, schema), true
}

// score computes a relevance score for a substring match
func score(text, query, key string, schema types.Schema) float64 {
	s := 0.5

	// matches in the designated title field rank higher
	if key == schema.Core.TitleField {
		s = 0.8
	}

	if strings.HasPrefix(text, query) {
		s += 0.2
	}

	// boost when the query covers most of the field
	if len(text) > 0 && float64(len(query))/float64(len(text)) > 0.5 {
		s += 0.1
	}

	if s > 1.0 {
		s = 1.0
	}

	return s
}

// highlight wraps every occurrence of the query with the given markers.
// Matching walks the original text rune by rune, lowercasing per rune for
// case-insensitive comparison, so every recorded span is a valid byte range
// of the original even when lowercasing changes a rune's byte length.
func highlight(text, query string, caseSensitive bool, startMarker, endMarker string) string {
	if query == "" {
		return text
	}

	want := []rune(query)
	if !caseSensitive {
		for i, r := range want {
			want[i] = unicode.ToLower(r)
		}
	}

	runes := []rune(text)
	// starts[i] is the byte offset of runes[i]; the final entry is len(text)
	starts := make([]int, len(runes)+1)
	offset := 0
	for i, r := range runes {
		starts[i] = offset
		offset += utf8.RuneLen(r)
	}
	starts[len(runes)] = offset

	matchAt := func(at int) bool {
		if at+len(want) > len(runes) {
			return false
		}
		for i, w := range want {
			r := runes[at+i]
			if !caseSensitive {
				r = unicode.ToLower(r)
			}
			if r != w {
				return false
			}
		}
		return true
	}

	var builder strings.Builder
	lastEnd := 0
	matched := false
	for i := 0; i < len(runes); {
		if !matchAt(i) {
			i++
			continue
		}
		matched = true
		start, end := starts[i], starts[i+len(want)]
		builder.WriteString(text[lastEnd:start])
		builder.WriteString(startMarker)
		builder.WriteString(text[start:end])
		builder.WriteString(endMarker)
		lastEnd = end
		i += len(want)
	}

	if !matched {
		return text
	}
	builder.WriteString(text[lastEnd:])

	return builder.String()
}
