// Package script fills the shader setup template for one armor region.
//
// The template is plain text with literal placeholder tokens. Coating-wide
// tokens (GRIMEAMOUNT, SCRATCHAMOUNT, UNIEMITAMOUNT) take values from the
// coating; slot tokens carry a 1-based slot suffix (IOR_1 ... IOR_8) and take
// values from the swatch resolved for that slot. Tokens missing from the
// template are ignored and tokens the filler does not know are left as is.
package script

import (
	"go.uber.org/zap"

	"infinite-coating-tool/internal/coating"
	"infinite-coating-tool/internal/edgewear"
	"infinite-coating-tool/internal/layermask"
)

// Filler fills templates for the regions of one coating.
type Filler struct {
	Coating  *coating.Coating
	Swatches coating.Index
	EdgeWear edgewear.Table
	Logger   *zap.Logger
}

// NewFiller indexes the coating's swatches.
func NewFiller(c *coating.Coating, edgeWear edgewear.Table, logger *zap.Logger) (*Filler, error) {
	idx, err := coating.BuildIndex(c.Swatches)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug("swatches indexed", zap.Int("swatches", idx.Len()))
	return &Filler{Coating: c, Swatches: idx, EdgeWear: edgeWear, Logger: logger}, nil
}

// Slot is one resolved shader slot.
type Slot struct {
	SlotSource
	Swatch   coating.Swatch
	EdgeWear int
}

// Resolve picks the swatch and edge-wear factor for every slot of region.
func (f *Filler) Resolve(region coating.Region, mask layermask.Mask) ([layermask.Slots]Slot, error) {
	var out [layermask.Slots]Slot

	sources, err := ResolveSlots(region, mask)
	if err != nil {
		return out, err
	}

	for i, src := range sources {
		sw, err := f.Swatches.Lookup(src.SwatchID)
		if err != nil {
			return out, err
		}
		wear, err := f.EdgeWear.Resolve(sw.GroupName, f.Logger)
		if err != nil {
			return out, err
		}
		f.Logger.Debug("slot resolved",
			zap.Int("slot", i+1),
			zap.String("swatch", src.SwatchID),
			zap.Int("layer", src.Layer),
			zap.Bool("fallback", src.Fallback()),
			zap.Stringer("source", src.Reason),
			zap.Int("edge_wear", wear))
		out[i] = Slot{SlotSource: src, Swatch: sw, EdgeWear: wear}
	}
	return out, nil
}

// Fill substitutes every slot of region into template and returns the result.
// template itself is not modified.
func (f *Filler) Fill(region coating.Region, mask layermask.Mask, template string) (string, error) {
	slots, err := f.Resolve(region, mask)
	if err != nil {
		return "", err
	}
	return f.FillSlots(slots, template)
}

// FillSlots substitutes already resolved slots into template. Coating-wide
// tokens are applied on every slot pass, so the first slot's edge-wear factor
// is the one that lands in SCRATCHAMOUNT.
func (f *Filler) FillSlots(slots [layermask.Slots]Slot, template string) (string, error) {
	out := template
	for i, s := range slots {
		reps, err := slotReplacements(i+1, s.Swatch)
		if err != nil {
			return "", err
		}
		out = apply(out, globalReplacements(f.Coating, s.EdgeWear))
		out = apply(out, reps)
	}
	return out, nil
}

// FillHeader substitutes the per-region tokens that do not depend on slots.
func FillHeader(template, regionName, coatingName, detailMaps string) string {
	return apply(template, []replacement{
		{TokenRegionName, regionName},
		{TokenCoatingName, coatingName},
		{TokenDetailMapsPath, EscapePath(detailMaps)},
	})
}
