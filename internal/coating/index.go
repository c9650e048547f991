package coating

import "fmt"

// Index maps swatch ids to swatches.
type Index struct {
	entries map[string]Swatch
}

// BuildIndex indexes swatches by id. Duplicate ids are rejected rather than
// letting the later swatch shadow the earlier one.
func BuildIndex(swatches []Swatch) (Index, error) {
	idx := Index{entries: make(map[string]Swatch, len(swatches))}
	for _, s := range swatches {
		if _, exists := idx.entries[s.SwatchID]; exists {
			return Index{}, fmt.Errorf("coating: %w: %q", ErrDuplicateSwatchID, s.SwatchID)
		}
		idx.entries[s.SwatchID] = s
	}
	return idx, nil
}

// Lookup returns the swatch with the given id.
func (idx Index) Lookup(id string) (Swatch, error) {
	s, ok := idx.entries[id]
	if !ok {
		return Swatch{}, fmt.Errorf("coating: %w: %q", ErrUnknownSwatchID, id)
	}
	return s, nil
}

// Len returns the number of indexed swatches.
func (idx Index) Len() int {
	return len(idx.entries)
}
