package internal

import (
	"image/color"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/milchschlumpf/navbug/pkg/navbug/config"
)

// Theme defines the colors and font of the navigation host.
type Theme struct {
	BackgroundColor sdl.Color // Screen background behind the content
	CardColor       sdl.Color // Bottom navigation card
	TintColor       sdl.Color // Icon tint
	IndicatorColor  sdl.Color // Sliding selection indicator
	TextColor       sdl.Color // Screen titles and hints
	FontPath        string    // Path to the UI font
}

var currentTheme Theme

// SetTheme sets the active theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// ThemeFrom builds a Theme from the theme section of the config.
func ThemeFrom(cfg config.ThemeConfig) Theme {
	return Theme{
		BackgroundColor: HexToColor(cfg.Background),
		CardColor:       HexToColor(cfg.Card),
		TintColor:       HexToColor(cfg.Tint),
		IndicatorColor:  HexToColor(cfg.Indicator),
		TextColor:       HexToColor(cfg.Text),
		FontPath:        cfg.FontPath,
	}
}

// HexToColor converts a 0xRRGGBB value into an opaque sdl.Color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16 & 0xff),
		G: uint8(hex >> 8 & 0xff),
		B: uint8(hex & 0xff),
		A: 0xff,
	}
}

// NRGBA converts an sdl.Color for use with image tinting.
func NRGBA(c sdl.Color) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
