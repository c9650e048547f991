// Package layermask maps a region's material type to the set of shader layer
// slots it drives.
package layermask

import (
	"errors"
	"fmt"
	"math/bits"
)

// Slots is the number of layer slots in the coating shader.
const Slots = 8

// ErrUnknownMaterial indicates a material type with no known layer mask.
var ErrUnknownMaterial = errors.New("unknown material")

// Mask marks active slots. Bit i set means slot i takes the next layer of the region.
type Mask uint8

// 7 layers is standard multiplayer armor, 4 is knees/elbows, 1 is visors.
// The damage variants add slot 8 (campaign only).
var table = []struct {
	material string
	mask     Mask
}{
	{"cvw_7_layered", 0b0111_1111},
	{"cvw_4_layered", 0b0111_0001},
	{"cvw_1_layered", 0b0000_0001},
	{"cvw_7_layered_damage", 0b1111_1111},
	{"cvw_4_layered_damage", 0b1111_0001},
	{"cvw_1_layered_damage", 0b1000_0001},
}

// Resolve returns the mask for a material type.
func Resolve(material string) (Mask, error) {
	for _, e := range table {
		if e.material == material {
			return e.mask, nil
		}
	}
	return 0, fmt.Errorf("layermask: %w: %q is not a recognized material name", ErrUnknownMaterial, material)
}

// Materials lists the recognized material types.
func Materials() []string {
	out := make([]string, len(table))
	for i, e := range table {
		out[i] = e.material
	}
	return out
}

// Active reports whether slot (0-based) is driven by a region layer.
func (m Mask) Active(slot int) bool {
	if slot < 0 || slot >= Slots {
		return false
	}
	return m&(1<<slot) != 0
}

// Count returns the number of active slots.
func (m Mask) Count() int {
	return bits.OnesCount8(uint8(m))
}

// String formats the mask bit 7 first, e.g. "01110001".
func (m Mask) String() string {
	return fmt.Sprintf("%08b", uint8(m))
}
