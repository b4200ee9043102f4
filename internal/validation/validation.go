// Package validation checks schema well-formedness on behalf of the
// configuration layer. The core engines trust the schema they are handed;
// this package is the gate that earns that trust.
package validation

import (
	"fmt"

	"github.com/cardexhq/cardex/types"
)

// Validate checks a schema for structural consistency: at least one field,
// unique non-empty keys, known field types, and core role references that
// point at declared fields.
func Validate(schema types.Schema) error {
	if len(schema.Fields) == 0 {
		return fmt.Errorf("at least one field must be declared")
	}

	seen := make(map[string]bool)
	for _, field := range schema.Fields {
		if field.Key == "" {
			return fmt.Errorf("field key cannot be empty")
		}
		if IsReservedKey(field.Key) {
			return fmt.Errorf("%q is a reserved field key", field.Key)
		}
		if seen[field.Key] {
			return fmt.Errorf("duplicate field key: %s", field.Key)
		}
		seen[field.Key] = true

		if !knownFieldType(field.Type) {
			return fmt.Errorf("field %s: invalid field type %d", field.Key, field.Type)
		}
	}

	if err := validateCoreFields(schema, seen); err != nil {
		return err
	}

	return nil
}

// validateCoreFields checks that designated roles reference declared keys
// and carry types the roles can use
func validateCoreFields(schema types.Schema, declared map[string]bool) error {
	core := schema.Core

	if core.TitleField != "" {
		if !declared[core.TitleField] {
			return fmt.Errorf("title field %q is not declared", core.TitleField)
		}
		if f, _ := schema.Field(core.TitleField); f.Type != types.StringType {
			return fmt.Errorf("title field %q must be a string field", core.TitleField)
		}
	}

	if core.IDField != "" {
		if !declared[core.IDField] {
			return fmt.Errorf("id field %q is not declared", core.IDField)
		}
		if f, _ := schema.Field(core.IDField); f.Type != types.StringType && f.Type != types.NumberType {
			return fmt.Errorf("id field %q must be a string or number field", core.IDField)
		}
	}

	if core.StatusField != "" && !declared[core.StatusField] {
		return fmt.Errorf("status field %q is not declared", core.StatusField)
	}

	return nil
}

// IsReservedKey checks whether a field key collides with the fixed keys the
// serialized object forms already use
func IsReservedKey(key string) bool {
	return key == "id" || key == "sourceRef"
}

func knownFieldType(ft types.FieldType) bool {
	for _, known := range types.AllFieldTypes {
		if ft == known {
			return true
		}
	}
	return false
}
