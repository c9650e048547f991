package coating

import "errors"

var (
	// ErrUnknownSwatchID indicates a layer references a swatch id missing from the swatch list.
	ErrUnknownSwatchID = errors.New("unknown swatch id")

	// ErrDuplicateSwatchID indicates two swatches in one document share an id.
	ErrDuplicateSwatchID = errors.New("duplicate swatch id")

	// ErrDuplicateRegion indicates a region name appears twice in regionLayers.
	ErrDuplicateRegion = errors.New("duplicate region")
)
