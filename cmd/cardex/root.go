// Part of the cardex CLI - root command and shared catalog loading.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cardexhq/cardex/catalog"
	"github.com/cardexhq/cardex/formats"
	"github.com/cardexhq/cardex/types"
)

var (
	schemaPath string
	itemsPath  string
)

var rootCmd = &cobra.Command{
	Use:   "cardex",
	Short: "Cardex CLI",
	Long:  "Cardex is a schema-driven catalog engine: typed records, queries and statistics over heterogeneous items.",
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&schemaPath, "schema", "s", "", "path to schema YAML file")
	rootCmd.PersistentFlags().StringVarP(&itemsPath, "items", "i", "", "path to items JSON file")
	_ = viper.BindPFlag("schema", rootCmd.PersistentFlags().Lookup("schema"))
	_ = viper.BindPFlag("items", rootCmd.PersistentFlags().Lookup("items"))

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(groupsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(searchCmd)
}

// initConfig reads defaults from .cardex.yaml and the CARDEX_* environment
func initConfig() {
	viper.SetConfigName(".cardex")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.SetEnvPrefix("cardex")
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}

// itemFile is one entry of the items JSON file: untyped raw fields plus the
// identity the data-access layer supplies
type itemFile struct {
	ID     string                 `json:"id"`
	Source string                 `json:"source"`
	Fields map[string]interface{} `json:"fields"`
}

// loadCatalog reads the schema and items files and builds typed records
func loadCatalog() ([]*catalog.Record, types.Schema, error) {
	sp := viper.GetString("schema")
	ip := viper.GetString("items")
	if sp == "" {
		return nil, types.Schema{}, fmt.Errorf("schema path is required (flag --schema or config)")
	}
	if ip == "" {
		return nil, types.Schema{}, fmt.Errorf("items path is required (flag --items or config)")
	}

	schema, err := formats.LoadSchema(sp)
	if err != nil {
		return nil, types.Schema{}, err
	}

	data, err := os.ReadFile(ip)
	if err != nil {
		return nil, types.Schema{}, fmt.Errorf("failed to read items file: %w", err)
	}

	var items []itemFile
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, types.Schema{}, fmt.Errorf("failed to parse items file: %w", err)
	}

	records := make([]*catalog.Record, 0, len(items))
	for _, item := range items {
		records = append(records, catalog.Build(item.Fields, item.ID, item.Source, schema))
	}

	return records, schema, nil
}

// printJSON writes a result object to stdout as indented JSON
func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
