package preview

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample scales an opaque sheet to w×h with CatmullRom filtering, which
// softens the column edges drawn at supersampled resolution.
func Downsample(img *image.NRGBA, w, h int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return img
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
