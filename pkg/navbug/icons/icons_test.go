package icons

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEmbeddedIcons(t *testing.T) {
	r := NewResolver()
	black := color.NRGBA{A: 0xff}

	for _, ref := range []Ref{OutlineHome, BaselineHome} {
		t.Run(string(ref), func(t *testing.T) {
			require.True(t, r.Has(ref))

			img, err := r.Resolve(ref, 48, black)
			require.NoError(t, err)
			assert.Equal(t, image.Rect(0, 0, 48, 48), img.Bounds())
			assert.Greater(t, opaquePixels(img), 0, "icon should draw something")
		})
	}
}

func TestResolveUnknownIcon(t *testing.T) {
	_, err := NewResolver().Resolve(Ref("nope"), 24, color.NRGBA{A: 0xff})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownIcon))
}

func TestResolveRejectsInvalidSize(t *testing.T) {
	_, err := NewResolver().Resolve(OutlineHome, 0, color.NRGBA{A: 0xff})
	require.Error(t, err)
}

func TestTintKeepsAlpha(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Pix = []uint8{0, 0, 0, 0xff, 0, 0, 0, 0}

	Tint(img, color.NRGBA{R: 0xff, G: 0x80, B: 0, A: 0xff})

	assert.Equal(t, []uint8{0xff, 0x80, 0, 0xff, 0, 0, 0, 0}, img.Pix)
}

func TestKeyDistinguishesTintAndSize(t *testing.T) {
	black := color.NRGBA{A: 0xff}
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	assert.NotEqual(t, Key(OutlineHome, 24, black), Key(OutlineHome, 24, white))
	assert.NotEqual(t, Key(OutlineHome, 24, black), Key(OutlineHome, 32, black))
	assert.Equal(t, Key(OutlineHome, 24, black), Key(OutlineHome, 24, black))
}

func opaquePixels(img *image.RGBA) int {
	n := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] > 0x80 {
			n++
		}
	}
	return n
}
