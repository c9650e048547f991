package coating

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is the encoding of a coating document.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatFromPath picks the document format from the file extension.
// Anything other than .yaml or .yml is read as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads a coating document from disk.
func Load(path string) (*Coating, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("coating: read %s: %w", path, err)
	}

	c, err := Parse(raw, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("coating: parse %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a coating document.
func Parse(raw []byte, format Format) (*Coating, error) {
	var c Coating
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(raw, &c); err != nil {
			return nil, err
		}
	default:
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, err
		}
	}
	return &c, nil
}
