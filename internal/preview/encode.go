package preview

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// Format is the preview image encoding.
type Format string

const (
	FormatNone Format = "none"
	FormatWebP Format = "webp"
	FormatTGA  Format = "tga"
)

// ParseFormat parses a --preview flag value. Empty means none.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatNone:
		return FormatNone, nil
	case FormatWebP, FormatTGA:
		return f, nil
	default:
		return "", fmt.Errorf("preview: unknown format %q (want none, webp or tga)", s)
	}
}

// Ext returns the file extension for f, including the dot.
func (f Format) Ext() string {
	switch f {
	case FormatWebP:
		return ".webp"
	case FormatTGA:
		return ".tga"
	default:
		return ""
	}
}

// Encode writes img in format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case FormatWebP:
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("preview: webp encode: %w", err)
		}
	case FormatTGA:
		if err := tga.Encode(w, img); err != nil {
			return fmt.Errorf("preview: tga encode: %w", err)
		}
	default:
		return fmt.Errorf("preview: cannot encode format %q", f)
	}
	return nil
}

// WriteFile encodes img to path, creating parent directories.
func WriteFile(path string, img image.Image, f Format) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("preview: %w", err)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}

	if err := Encode(out, img, f); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
