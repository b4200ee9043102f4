// Part of the cardex CLI - this file implements the 'cardex list' command.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cardexhq/cardex/query"
)

var (
	listFilters  []string
	listContains []string
	listMins     []string
	listMaxes    []string
	listSort     string
	listDesc     bool
	listSparse   bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog items, optionally filtered and sorted",
	Long:  "Apply filter criteria and a sort to the catalog and print the matching items as JSON rows.",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringArrayVarP(&listFilters, "filter", "f", nil, "field=value1,value2 membership criterion (repeatable)")
	listCmd.Flags().StringArrayVarP(&listContains, "contains", "c", nil, "field=text substring criterion (repeatable)")
	listCmd.Flags().StringArrayVar(&listMins, "min", nil, "field=number lower bound (repeatable)")
	listCmd.Flags().StringArrayVar(&listMaxes, "max", nil, "field=number upper bound (repeatable)")
	listCmd.Flags().StringVar(&listSort, "sort", "", "field to sort by")
	listCmd.Flags().BoolVar(&listDesc, "desc", false, "sort descending")
	listCmd.Flags().BoolVar(&listSparse, "sparse", false, "emit only set fields per item")
}

func runList(cmd *cobra.Command, args []string) error {
	records, schema, err := loadCatalog()
	if err != nil {
		return err
	}

	criteria, err := buildCriteria()
	if err != nil {
		return err
	}

	result := query.Filter(records, criteria)
	if listSort != "" {
		result = query.Sort(result, schema, listSort, listDesc)
	}

	rows := make([]map[string]interface{}, 0, len(result))
	for _, r := range result {
		if listSparse {
			rows = append(rows, r.SparseObject())
		} else {
			rows = append(rows, r.FullObject(schema))
		}
	}

	return printJSON(rows)
}

// buildCriteria assembles a query.Criteria from the repeatable flag values
func buildCriteria() (query.Criteria, error) {
	criteria := query.Criteria{}

	for _, spec := range listFilters {
		key, value, err := splitSpec(spec)
		if err != nil {
			return nil, err
		}
		c := criteria[key]
		c.AnyOf = append(c.AnyOf, strings.Split(value, ",")...)
		criteria[key] = c
	}

	for _, spec := range listContains {
		key, value, err := splitSpec(spec)
		if err != nil {
			return nil, err
		}
		c := criteria[key]
		c.Contains = value
		criteria[key] = c
	}

	for _, spec := range listMins {
		key, bound, err := splitNumericSpec(spec)
		if err != nil {
			return nil, err
		}
		c := criteria[key]
		c.Min = &bound
		criteria[key] = c
	}

	for _, spec := range listMaxes {
		key, bound, err := splitNumericSpec(spec)
		if err != nil {
			return nil, err
		}
		c := criteria[key]
		c.Max = &bound
		criteria[key] = c
	}

	return criteria, nil
}

func splitSpec(spec string) (string, string, error) {
	key, value, found := strings.Cut(spec, "=")
	if !found || key == "" {
		return "", "", fmt.Errorf("invalid criterion %q: expected field=value", spec)
	}
	return key, value, nil
}

func splitNumericSpec(spec string) (string, float64, error) {
	key, value, err := splitSpec(spec)
	if err != nil {
		return "", 0, err
	}
	bound, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return "", 0, fmt.Errorf("invalid bound %q: %w", spec, err)
	}
	return key, bound, nil
}
