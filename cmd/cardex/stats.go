// Part of the cardex CLI - this file implements the 'cardex stats' command.
package main

import (
	"github.com/spf13/cobra"

	"github.com/cardexhq/cardex/stats"
)

var (
	statsValueField string
	statsDateField  string
	statsDistFields []string
	statsQuality    bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize the catalog",
	Long:  "Compute count, total, average and date range over the catalog, plus optional per-field value distributions.",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().StringVar(&statsValueField, "value", "", "numeric field to total and average")
	statsCmd.Flags().StringVar(&statsDateField, "date", "", "date field for the range")
	statsCmd.Flags().StringArrayVar(&statsDistFields, "dist", nil, "field to build a value distribution for (repeatable)")
	statsCmd.Flags().BoolVar(&statsQuality, "quality", false, "include valid-value and valid-date counters")
}

func runStats(cmd *cobra.Command, args []string) error {
	records, _, err := loadCatalog()
	if err != nil {
		return err
	}

	if statsQuality {
		return printJSON(stats.AggregateStats(records, statsValueField, statsDateField))
	}

	return printJSON(stats.CatalogStats(records, statsValueField, statsDateField, statsDistFields...))
}
