package script

import (
	"fmt"

	"infinite-coating-tool/internal/coating"
	"infinite-coating-tool/internal/layermask"
)

// Reason records where a slot's swatch came from.
type Reason int

const (
	// FromLayer: the slot is active and its layer names a swatch.
	FromLayer Reason = iota
	// Inactive: the mask does not drive the slot; layer 0 fills it.
	Inactive
	// OutOfRange: the slot is active but the region ran out of layers; layer 0 fills it.
	OutOfRange
	// EmptyReference: the slot's layer has no swatch; layer 0 fills it.
	EmptyReference
)

func (r Reason) String() string {
	switch r {
	case FromLayer:
		return "layer"
	case Inactive:
		return "inactive"
	case OutOfRange:
		return "out_of_range"
	case EmptyReference:
		return "empty_reference"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// SlotSource is the swatch chosen for one shader slot.
type SlotSource struct {
	SwatchID string
	Layer    int // index into Region.Layers that supplied SwatchID
	Reason   Reason
}

// Fallback reports whether layer 0 stood in for the slot.
func (s SlotSource) Fallback() bool {
	return s.Reason != FromLayer
}

// ResolveSlots walks the shader slots in order. Every active slot consumes the
// next region layer, and the layer cursor advances even once the layers run
// out, so slot positions stay fixed for a given mask. Any slot left without a
// swatch takes layer 0's.
func ResolveSlots(region coating.Region, mask layermask.Mask) ([layermask.Slots]SlotSource, error) {
	var slots [layermask.Slots]SlotSource

	next := 0
	for i := range slots {
		src := SlotSource{Reason: Inactive}
		if mask.Active(i) {
			if next < len(region.Layers) {
				src = SlotSource{SwatchID: region.Layers[next].Swatch, Layer: next, Reason: FromLayer}
				if src.SwatchID == "" {
					src.Reason = EmptyReference
				}
			} else {
				src.Reason = OutOfRange
			}
			next++
		}

		if src.SwatchID == "" {
			if len(region.Layers) == 0 {
				return slots, fmt.Errorf("script: %w: slot %d needs a fallback swatch", ErrMissingLayerZero, i+1)
			}
			src.SwatchID = region.Layers[0].Swatch
			src.Layer = 0
		}
		slots[i] = src
	}

	return slots, nil
}
