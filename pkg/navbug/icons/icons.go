// Package icons resolves the opaque icon references carried by tab sections
// into tinted raster images.
//
// Icons are embedded SVG documents. They are rasterised on demand with oksvg
// and rasterx; callers that draw every frame are expected to cache the result
// (the SDL host keeps them in a texture cache).
package icons

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Ref is an opaque icon reference.
type Ref string

const (
	OutlineHome  Ref = "ic_outline_home"  // Unselected home icon
	BaselineHome Ref = "ic_baseline_home" // Selected (filled) home icon
)

// ErrUnknownIcon is returned when a Ref has no embedded asset.
var ErrUnknownIcon = errors.New("unknown icon")

//go:embed assets/*.svg
var assets embed.FS

// Resolver turns icon references into images.
type Resolver struct {
	fs embed.FS
}

// NewResolver creates a resolver backed by the embedded assets.
func NewResolver() *Resolver {
	return &Resolver{fs: assets}
}

// Has reports whether an asset exists for the reference.
func (r *Resolver) Has(ref Ref) bool {
	_, err := r.fs.ReadFile(r.path(ref))
	return err == nil
}

// Resolve rasterises the icon into a size x size image and tints every
// opaque pixel with the given color, keeping the icon's alpha.
func (r *Resolver) Resolve(ref Ref, size int, tint color.NRGBA) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("icon %q: invalid size %d", ref, size)
	}

	data, err := r.fs.ReadFile(r.path(ref))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownIcon, ref)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse icon %q: %w", ref, err)
	}

	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	dasher := rasterx.NewDasher(size, size, scanner)
	icon.Draw(dasher, 1.0)

	Tint(img, tint)

	return img, nil
}

// Key builds a cache key for a resolved icon.
func Key(ref Ref, size int, tint color.NRGBA) string {
	return fmt.Sprintf("%s@%d#%02x%02x%02x%02x", ref, size, tint.R, tint.G, tint.B, tint.A)
}

// Tint recolors img in place. img is premultiplied, so every channel is
// scaled by the pixel's own alpha and the tint alpha.
func Tint(img *image.RGBA, tint color.NRGBA) {
	for i := 0; i+3 < len(img.Pix); i += 4 {
		a := uint32(img.Pix[i+3]) * uint32(tint.A) / 0xff
		img.Pix[i+0] = uint8(uint32(tint.R) * a / 0xff)
		img.Pix[i+1] = uint8(uint32(tint.G) * a / 0xff)
		img.Pix[i+2] = uint8(uint32(tint.B) * a / 0xff)
		img.Pix[i+3] = uint8(a)
	}
}

func (r *Resolver) path(ref Ref) string {
	return "assets/" + string(ref) + ".svg"
}
