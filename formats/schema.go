package formats

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cardexhq/cardex/internal/validation"
	"github.com/cardexhq/cardex/types"
)

// schemaFile is the YAML wire form of a schema. Field types appear as
// their string names; capability flags default to true when omitted.
type schemaFile struct {
	Fields []fieldSpec `yaml:"fields"`
	Core   coreSpec    `yaml:"coreFields"`
}

type fieldSpec struct {
	Key        string `yaml:"key"`
	Label      string `yaml:"label"`
	Type       string `yaml:"type"`
	Category   string `yaml:"category,omitempty"`
	Visible    *bool  `yaml:"visible,omitempty"`
	Filterable *bool  `yaml:"filterable,omitempty"`
	Sortable   *bool  `yaml:"sortable,omitempty"`
}

type coreSpec struct {
	Title  string `yaml:"title"`
	ID     string `yaml:"id,omitempty"`
	Status string `yaml:"status,omitempty"`
}

// ParseSchema decodes a YAML schema document and validates it structurally.
// This is the configuration-layer boundary: unlike the core, it reports
// malformed input as errors.
func ParseSchema(data []byte) (types.Schema, error) {
	var file schemaFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return types.Schema{}, fmt.Errorf("failed to parse schema: %w", err)
	}

	schema := types.Schema{
		Core: types.CoreFields{
			TitleField:  file.Core.Title,
			IDField:     file.Core.ID,
			StatusField: file.Core.Status,
		},
	}

	for _, spec := range file.Fields {
		ft, err := types.ParseFieldType(spec.Type)
		if err != nil {
			return types.Schema{}, fmt.Errorf("field %q: %w", spec.Key, err)
		}
		schema.Fields = append(schema.Fields, types.Field{
			Key:        spec.Key,
			Label:      spec.Label,
			Type:       ft,
			Category:   spec.Category,
			Visible:    flagOrDefault(spec.Visible, true),
			Filterable: flagOrDefault(spec.Filterable, true),
			Sortable:   flagOrDefault(spec.Sortable, true),
		})
	}

	if err := validation.Validate(schema); err != nil {
		return types.Schema{}, err
	}

	return schema, nil
}

// LoadSchema reads and parses a schema YAML file
func LoadSchema(path string) (types.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Schema{}, fmt.Errorf("failed to read schema file: %w", err)
	}
	return ParseSchema(data)
}

// MarshalSchema encodes a schema into its YAML wire form
func MarshalSchema(schema types.Schema) ([]byte, error) {
	file := schemaFile{
		Core: coreSpec{
			Title:  schema.Core.TitleField,
			ID:     schema.Core.IDField,
			Status: schema.Core.StatusField,
		},
	}

	for _, f := range schema.Fields {
		visible := f.Visible
		filterable := f.Filterable
		sortable := f.Sortable
		file.Fields = append(file.Fields, fieldSpec{
			Key:        f.Key,
			Label:      f.Label,
			Type:       f.Type.String(),
			Category:   f.Category,
			Visible:    &visible,
			Filterable: &filterable,
			Sortable:   &sortable,
		})
	}

	data, err := yaml.Marshal(&file)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// SaveSchema writes a schema YAML file
func SaveSchema(path string, schema types.Schema) error {
	data, err := MarshalSchema(schema)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write schema file: %w", err)
	}
	return nil
}

func flagOrDefault(flag *bool, def bool) bool {
	if flag == nil {
		return def
	}
	return *flag
}
