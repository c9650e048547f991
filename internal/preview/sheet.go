// Package preview renders a swatch sheet for a region: one column per shader
// slot, each a top/mid/bottom gradient of the slot's color variant. Sheets
// are a quick visual check of what the generated script will set up.
package preview

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"infinite-coating-tool/internal/coating"
)

// Column is the gradient of one slot. Colors are sRGB.
type Column struct {
	Top    colorful.Color
	Mid    colorful.Color
	Bottom colorful.Color
}

// ColumnOf converts a swatch's linear color variant to a Column.
// Missing components read as 0.
func ColumnOf(s coating.Swatch) Column {
	return Column{
		Top:    linear(s.ColorVariant.TopColor),
		Mid:    linear(s.ColorVariant.MidColor),
		Bottom: linear(s.ColorVariant.BotColor),
	}
}

func linear(v []float32) colorful.Color {
	var c [3]float64
	for i := 0; i < len(c) && i < len(v); i++ {
		c[i] = float64(v[i])
	}
	return colorful.LinearRgb(c[0], c[1], c[2]).Clamped()
}

// At returns the column color at t in [0,1], top to bottom. Blending happens
// in linear space to match how the shader mixes the stops.
func (c Column) At(t float64) colorful.Color {
	if t <= 0.5 {
		return blendLinear(c.Top, c.Mid, t*2)
	}
	return blendLinear(c.Mid, c.Bottom, (t-0.5)*2)
}

func blendLinear(a, b colorful.Color, t float64) colorful.Color {
	r1, g1, b1 := a.LinearRgb()
	r2, g2, b2 := b.LinearRgb()
	return colorful.LinearRgb(
		r1+t*(r2-r1),
		g1+t*(g2-g1),
		b1+t*(b2-b1),
	).Clamped()
}

// Options controls sheet geometry.
type Options struct {
	ColumnWidth int // output pixels per column (default 32)
	Height      int // output height (default 128)
	Supersample int // render scale before downsampling (default 2)
	Gap         int // output pixels between columns (default 2)
	// DisableGap draws columns edge to edge.
	DisableGap bool
}

func (o *Options) normalize() Options {
	out := Options{}
	if o != nil {
		out = *o
	}
	if out.ColumnWidth <= 0 {
		out.ColumnWidth = 32
	}
	if out.Height <= 0 {
		out.Height = 128
	}
	if out.Supersample <= 0 {
		out.Supersample = 2
	}
	switch {
	case out.DisableGap:
		out.Gap = 0
	case out.Gap <= 0:
		out.Gap = 2
	}
	return out
}

var background = color.NRGBA{R: 24, G: 24, B: 24, A: 255}

// Render draws the sheet for cols.
func Render(cols []Column, opts *Options) *image.NRGBA {
	o := opts.normalize()
	n := len(cols)
	if n == 0 {
		n = 1
	}
	width := n*o.ColumnWidth + (n+1)*o.Gap
	ss := o.Supersample

	big := image.NewNRGBA(image.Rect(0, 0, width*ss, o.Height*ss))
	fill(big, big.Bounds(), background)

	colW := o.ColumnWidth * ss
	gap := o.Gap * ss
	h := big.Bounds().Dy()
	for i, col := range cols {
		x0 := gap + i*(colW+gap)
		for y := 0; y < h; y++ {
			t := 0.0
			if h > 1 {
				t = float64(y) / float64(h-1)
			}
			r, g, b := col.At(t).RGB255()
			fill(big, image.Rect(x0, y, x0+colW, y+1), color.NRGBA{R: r, G: g, B: b, A: 255})
		}
	}

	if ss == 1 {
		return big
	}
	return Downsample(big, width, o.Height)
}

func fill(img *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			i := img.PixOffset(x, y)
			img.Pix[i] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = c.A
		}
	}
}
