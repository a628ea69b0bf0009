package internal

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/milchschlumpf/navbug/pkg/navbug/config"
)

type WindowOptions struct {
	Width      int32
	Height     int32
	Borderless bool // Remove window decorations (SDL_WINDOW_BORDERLESS)
	Resizable  bool // Allow window resizing (SDL_WINDOW_RESIZABLE)
	Fullscreen bool // Fullscreen at desktop resolution (SDL_WINDOW_FULLSCREEN_DESKTOP)
}

// WindowOptionsFrom converts the window section of the config.
func WindowOptionsFrom(cfg config.WindowConfig) WindowOptions {
	return WindowOptions{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Borderless: cfg.Borderless,
		Resizable:  cfg.Resizable,
		Fullscreen: cfg.Fullscreen,
	}
}

func (wo WindowOptions) ToSDLFlags() uint32 {
	flags := uint32(sdl.WINDOW_SHOWN | sdl.WINDOW_ALLOW_HIGHDPI)

	if wo.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}

	if wo.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}

	if wo.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	return flags
}
