package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/invopop/jsonschema"

	"github.com/bnema/dumbwm/internal/application/port"
	"github.com/bnema/dumbwm/internal/domain/value"
)

const (
	lengthPattern = `^[+-]?[0-9]+(px|%)?$`
	deltaPattern  = `^[+-]?[0-9]+(px|%)?$`
)

// SchemaProvider implements port.ConfigSchemaProvider.
type SchemaProvider struct{}

// NewSchemaProvider creates a new SchemaProvider.
func NewSchemaProvider() *SchemaProvider {
	return &SchemaProvider{}
}

var _ port.ConfigSchemaProvider = (*SchemaProvider)(nil)

// Schema returns the indented JSON schema of config.toml.
func (p *SchemaProvider) Schema() ([]byte, error) {
	r := &jsonschema.Reflector{
		Mapper:                    mapValueTypes,
		AllowAdditionalProperties: false,
	}
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/bnema/dumbwm/config.schema.json"
	schema.Title = "dumbwm configuration"
	schema.Description = "Configuration schema for dumbwm, a tiling window manager core"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// mapValueTypes describes the length types by their string form.
func mapValueTypes(t reflect.Type) *jsonschema.Schema {
	switch t {
	case reflect.TypeFor[value.LengthValue]():
		return &jsonschema.Schema{
			Type:        "string",
			Pattern:     lengthPattern,
			Description: "A length in pixels or percent, e.g. 10px or 50%",
		}
	case reflect.TypeFor[value.LengthDelta]():
		return &jsonschema.Schema{
			Type:        "string",
			Pattern:     deltaPattern,
			Description: "A signed length change, e.g. +5% or -20px",
		}
	default:
		return nil
	}
}

// GenerateSchemaFile writes the schema next to the config file and returns
// its path.
func GenerateSchemaFile() (string, error) {
	schemaFile, err := GetSchemaFile()
	if err != nil {
		return "", fmt.Errorf("failed to get schema path: %w", err)
	}

	data, err := NewSchemaProvider().Schema()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(schemaFile), dirPerm); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(schemaFile, data, filePerm); err != nil {
		return "", fmt.Errorf("failed to write schema file: %w", err)
	}
	return schemaFile, nil
}
