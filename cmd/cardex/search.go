// Part of the cardex CLI - this file implements the 'cardex search' command.
package main

import (
	"github.com/spf13/cobra"

	"github.com/cardexhq/cardex/search"
)

var (
	searchFields    []string
	searchCase      bool
	searchExact     bool
	searchHighlight bool
	searchLimit     int
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Text-search the catalog",
	Long:  "Search the string-bearing fields of every item for a term and print the matches ranked by relevance.",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().StringArrayVar(&searchFields, "field", nil, "field to search (repeatable; default: all text fields)")
	searchCmd.Flags().BoolVar(&searchCase, "case-sensitive", false, "match case")
	searchCmd.Flags().BoolVar(&searchExact, "exact", false, "require whole-field matches")
	searchCmd.Flags().BoolVar(&searchHighlight, "highlight", false, "include highlighted match text")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 0, "maximum results (0 means all)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	records, schema, err := loadCatalog()
	if err != nil {
		return err
	}

	opts := search.Options{
		Query:           args[0],
		Fields:          searchFields,
		CaseSensitive:   searchCase,
		ExactMatch:      searchExact,
		EnableHighlight: searchHighlight,
	}
	if searchLimit > 0 {
		opts.MaxResults = &searchLimit
	}

	type resultOut struct {
		ID            string            `json:"id"`
		Score         float64           `json:"score"`
		MatchedFields []string          `json:"matchedFields"`
		Highlights    map[string]string `json:"highlights,omitempty"`
	}

	results := search.Search(records, schema, opts)
	out := make([]resultOut, 0, len(results))
	for _, res := range results {
		out = append(out, resultOut{
			ID:            res.Record.ID(),
			Score:         res.Score,
			MatchedFields: res.MatchedFields,
			Highlights:    res.Highlights,
		})
	}

	return printJSON(out)
}
