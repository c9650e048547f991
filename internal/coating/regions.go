package coating

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"

	"gopkg.in/yaml.v3"
)

// RegionMap is the regionLayers object. It keeps regions in document order so
// that generated scripts come out in the same order on every run.
type RegionMap struct {
	names   []string
	regions map[string]Region
}

// Set adds a region. A name that is already present is rejected.
func (m *RegionMap) Set(name string, r Region) error {
	if m.regions == nil {
		m.regions = make(map[string]Region)
	}
	if _, exists := m.regions[name]; exists {
		return fmt.Errorf("coating: %w: %q", ErrDuplicateRegion, name)
	}
	m.names = append(m.names, name)
	m.regions[name] = r
	return nil
}

// Names returns region names in document order.
func (m RegionMap) Names() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}

// Len returns the number of regions.
func (m RegionMap) Len() int {
	return len(m.names)
}

// All yields regions in document order.
func (m RegionMap) All() iter.Seq2[string, Region] {
	return func(yield func(string, Region) bool) {
		for _, name := range m.names {
			if !yield(name, m.regions[name]) {
				return
			}
		}
	}
}

// UnmarshalJSON decodes a JSON object token by token to keep key order.
func (m *RegionMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("coating: regionLayers: %w", err)
	}
	if tok == nil {
		*m = RegionMap{}
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("coating: regionLayers: expected object, got %v", tok)
	}

	var out RegionMap
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("coating: regionLayers: %w", err)
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("coating: regionLayers: expected region name, got %v", tok)
		}
		var r Region
		if err := dec.Decode(&r); err != nil {
			return fmt.Errorf("coating: region %q: %w", name, err)
		}
		if err := out.Set(name, r); err != nil {
			return err
		}
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("coating: regionLayers: %w", err)
	}

	*m = out
	return nil
}

// UnmarshalYAML walks the mapping node pairwise to keep key order.
func (m *RegionMap) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode && value.Tag == "!!null" {
		*m = RegionMap{}
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("coating: regionLayers: expected mapping at line %d", value.Line)
	}

	var out RegionMap
	for i := 0; i+1 < len(value.Content); i += 2 {
		var name string
		if err := value.Content[i].Decode(&name); err != nil {
			return fmt.Errorf("coating: regionLayers: line %d: %w", value.Content[i].Line, err)
		}
		var r Region
		if err := value.Content[i+1].Decode(&r); err != nil {
			return fmt.Errorf("coating: region %q: %w", name, err)
		}
		if err := out.Set(name, r); err != nil {
			return err
		}
	}

	*m = out
	return nil
}
