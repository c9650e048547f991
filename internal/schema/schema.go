// Package schema generates the JSON schema of coating documents.
package schema

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/invopop/jsonschema"

	"infinite-coating-tool/internal/coating"
	"infinite-coating-tool/internal/layermask"
)

var regionMapType = reflect.TypeOf(coating.RegionMap{})

// Build reflects the schema of coating.Coating.
func Build() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
		Mapper:                    mapType,
	}
	s := reflector.Reflect(new(coating.Coating))
	s.Title = "Armor Coating"
	s.Description = "Armor coating document: swatches and the layers painted on each body region"
	return s
}

// mapType describes RegionMap as the object it is on the wire; its fields
// are unexported so reflection alone would see an empty struct.
func mapType(t reflect.Type) *jsonschema.Schema {
	if t != regionMapType {
		return nil
	}

	inner := jsonschema.Reflector{
		AllowAdditionalProperties: true,
		DoNotReference:            true,
		Anonymous:                 true,
	}
	region := inner.Reflect(new(coating.Region))
	region.Version = ""

	if material, ok := region.Properties.Get("material"); ok {
		for _, m := range layermask.Materials() {
			material.Enum = append(material.Enum, m)
		}
	}

	return &jsonschema.Schema{
		Type:                 "object",
		Description:          "Regions keyed by name, in output order",
		AdditionalProperties: region,
	}
}

// Write marshals the schema to path through a temp file.
func Write(path string, s *jsonschema.Schema) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write temp schema: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replace schema: %w", err)
	}

	return nil
}
