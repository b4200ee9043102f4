// Part of the cardex CLI - this file implements the 'cardex groups' command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cardexhq/cardex/query"
)

var groupsBy string

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "Group catalog items by a field",
	Long:  "Partition the catalog by the distinct values of a field (list fields fan out) and print the groups with their item ids.",
	Args:  cobra.NoArgs,
	RunE:  runGroups,
}

func init() {
	groupsCmd.Flags().StringVarP(&groupsBy, "by", "b", "", "field to group by (defaults to the schema's status field)")
}

func runGroups(cmd *cobra.Command, args []string) error {
	records, schema, err := loadCatalog()
	if err != nil {
		return err
	}

	by := groupsBy
	if by == "" {
		by = schema.Core.StatusField
	}
	if by == "" {
		return fmt.Errorf("no group field given and the schema designates no status field")
	}

	type groupOut struct {
		Key   string   `json:"key"`
		Count int      `json:"count"`
		Items []string `json:"items"`
	}

	groups := query.GroupBy(records, by)
	out := make([]groupOut, 0, len(groups))
	for _, g := range groups {
		ids := make([]string, 0, len(g.Records))
		for _, r := range g.Records {
			ids = append(ids, r.ID())
		}
		out = append(out, groupOut{Key: query.Flatten(g.Key), Count: len(g.Records), Items: ids})
	}

	return printJSON(out)
}
