package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/ttf"
)

// FontSizes are the point sizes the host renders text at.
type FontSizes struct {
	Title int
	Hint  int
	Label int
}

var DefaultFontSizes = FontSizes{
	Title: 32,
	Hint:  16,
	Label: 12,
}

type Fonts struct {
	Title *ttf.Font
	Hint  *ttf.Font
	Label *ttf.Font
}

var fonts Fonts

func initFonts(path string, sizes FontSizes) error {
	var err error
	if fonts.Title, err = ttf.OpenFont(path, sizes.Title); err != nil {
		return fmt.Errorf("open font %q: %w", path, err)
	}
	if fonts.Hint, err = ttf.OpenFont(path, sizes.Hint); err != nil {
		return fmt.Errorf("open font %q: %w", path, err)
	}
	if fonts.Label, err = ttf.OpenFont(path, sizes.Label); err != nil {
		return fmt.Errorf("open font %q: %w", path, err)
	}
	return nil
}

func GetFonts() Fonts {
	return fonts
}

func closeFonts() {
	for _, f := range []*ttf.Font{fonts.Title, fonts.Hint, fonts.Label} {
		if f != nil {
			f.Close()
		}
	}
	fonts = Fonts{}
}
