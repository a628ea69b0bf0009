package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

var window *Window

// Init starts SDL and TTF, opens the window and loads the theme's fonts.
// SDLCleanup undoes all of it, including on a partial failure.
func Init(title string, winOpts WindowOptions) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}

	if err := ttf.Init(); err != nil {
		return fmt.Errorf("ttf init: %w", err)
	}

	sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "1")

	InitInputProcessor()

	var err error
	window, err = initWindow(title, winOpts)
	if err != nil {
		return err
	}

	return initFonts(GetTheme().FontPath, DefaultFontSizes)
}

func SDLCleanup() {
	if window != nil {
		window.closeWindow()
		window = nil
	}
	CloseAllControllers()
	closeFonts()
	ttf.Quit()
	sdl.Quit()
}
