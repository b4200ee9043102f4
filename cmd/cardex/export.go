// Part of the cardex CLI - this file implements the 'cardex export' command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cardexhq/cardex/export"
)

var (
	exportPath   string
	exportSparse bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog to a JSON file",
	Long:  "Write the filtered, sorted catalog view (schema fields plus item rows) to a JSON file. The write is locked and atomic.",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportPath, "out", "o", ".", "target file, or directory for a timestamped export")
	exportCmd.Flags().BoolVar(&exportSparse, "sparse", false, "emit only set fields per item")

	// export reuses the list command's criteria and sort flags
	exportCmd.Flags().AddFlagSet(listCmd.Flags())
}

func runExport(cmd *cobra.Command, args []string) error {
	records, schema, err := loadCatalog()
	if err != nil {
		return err
	}

	criteria, err := buildCriteria()
	if err != nil {
		return err
	}

	path, err := export.Export(records, schema, export.Options{
		Path:           exportPath,
		Criteria:       criteria,
		SortField:      listSort,
		SortDescending: listDesc,
		Sparse:         exportSparse,
	})
	if err != nil {
		return err
	}

	fmt.Printf("exported to %s\n", path)
	return nil
}
