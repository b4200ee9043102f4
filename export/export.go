// Package export writes a catalog view to disk as JSON: the schema's field
// declarations plus one fixed-shape row per record. It is a thin consumer
// of the core; filtering and ordering happen through the query package
// before anything touches the filesystem.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"github.com/cardexhq/cardex/catalog"
	"github.com/cardexhq/cardex/query"
	"github.com/cardexhq/cardex/types"
)

// Options configures an export
type Options struct {
	// Path is the target file, or a directory to receive a timestamped
	// "catalog-export-<ts>.json" file
	Path string

	// Criteria filters the records before export; nil exports everything
	Criteria query.Criteria

	// SortField orders the rows when set
	SortField      string
	SortDescending bool

	// Sparse emits only set fields per row instead of the full shape
	Sparse bool
}

// Data is the JSON document an export produces
type Data struct {
	ExportedAt time.Time                `json:"exportedAt"`
	Fields     []FieldDescriptor        `json:"fields"`
	Items      []map[string]interface{} `json:"items"`
}

// FieldDescriptor is the serialized form of one schema field
type FieldDescriptor struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Type     string `json:"type"`
	Category string `json:"category,omitempty"`
}

// Export writes the selected view of the records to disk and returns the
// path written. The target is locked with an advisory file lock for the
// duration of the write, and the write itself is atomic (temp file plus
// rename).
func Export(records []*catalog.Record, schema types.Schema, opts Options) (string, error) {
	path, err := resolvePath(opts.Path)
	if err != nil {
		return "", err
	}

	data := Generate(records, schema, opts)

	payload, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal export: %w", err)
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return "", fmt.Errorf("failed to lock export target: %w", err)
	}
	defer func() {
		_ = lock.Unlock()
		_ = os.Remove(lock.Path())
	}()

	tmpFile := path + ".tmp"
	if err := os.WriteFile(tmpFile, payload, 0644); err != nil {
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Rename(tmpFile, path); err != nil {
		_ = os.Remove(tmpFile)
		return "", fmt.Errorf("failed to rename export file: %w", err)
	}

	return path, nil
}

// Generate builds the export document without touching the filesystem
func Generate(records []*catalog.Record, schema types.Schema, opts Options) *Data {
	selected := query.Filter(records, opts.Criteria)
	if opts.SortField != "" {
		selected = query.Sort(selected, schema, opts.SortField, opts.SortDescending)
	}

	data := &Data{
		ExportedAt: time.Now(),
		Fields:     make([]FieldDescriptor, 0, len(schema.Fields)),
		Items:      make([]map[string]interface{}, 0, len(selected)),
	}

	for _, f := range schema.Fields {
		data.Fields = append(data.Fields, FieldDescriptor{
			Key:      f.Key,
			Label:    f.Label,
			Type:     f.Type.String(),
			Category: f.Category,
		})
	}

	for _, r := range selected {
		if opts.Sparse {
			data.Items = append(data.Items, r.SparseObject())
		} else {
			data.Items = append(data.Items, r.FullObject(schema))
		}
	}

	return data
}

// resolvePath turns a directory target into a timestamped filename
func resolvePath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("export path cannot be empty")
	}

	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		timestamp := time.Now().Format("2006-01-02T15-04-05")
		return filepath.Join(path, fmt.Sprintf("catalog-export-%s.json", timestamp)), nil
	}

	return path, nil
}
