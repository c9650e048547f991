package script

import "errors"

var (
	// ErrMissingLayerZero indicates a slot needed layer 0's swatch but the region has no layers.
	ErrMissingLayerZero = errors.New("region has no layer 0")

	// ErrMalformedSwatch indicates a swatch vector field is shorter than the template needs.
	ErrMalformedSwatch = errors.New("malformed swatch")
)
