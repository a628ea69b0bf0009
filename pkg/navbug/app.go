package navbug

import (
	"fmt"
	"log/slog"

	"github.com/veandco/go-sdl2/gfx"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/milchschlumpf/navbug/pkg/navbug/config"
	"github.com/milchschlumpf/navbug/pkg/navbug/constants"
	"github.com/milchschlumpf/navbug/pkg/navbug/icons"
	"github.com/milchschlumpf/navbug/pkg/navbug/internal"
	"github.com/milchschlumpf/navbug/pkg/navbug/layout"
	"github.com/milchschlumpf/navbug/pkg/navbug/shell"
)

type appController struct {
	shell       *shell.Shell
	window      *internal.Window
	processor   *internal.InputProcessor
	resolver    *icons.Resolver
	textures    *internal.TextureCache
	directional internal.DirectionalInput
	evdev       *internal.EvdevReader
	evdevEvents <-chan internal.InputEvent
	logger      *slog.Logger

	// Bar placement of the last rendered frame, used for hit testing.
	barX, barY  int32
	constraints layout.Constraints
}

func newAppController(sh *shell.Shell, cfg config.Config) *appController {
	ac := &appController{
		shell:       sh,
		window:      internal.GetWindow(),
		processor:   internal.GetInputProcessor(),
		resolver:    icons.NewResolver(),
		textures:    internal.NewTextureCache(),
		directional: internal.NewDirectionalInput(),
		logger:      internal.GetInternalLogger(),
	}

	if cfg.Input.EvdevDevice != "" && !constants.IsDevMode() {
		reader, err := internal.OpenEvdevReader(cfg.Input.EvdevDevice, internal.EvdevKeyMapFrom(cfg.Input))
		if err != nil {
			ac.logger.Warn("Raw input unavailable; continuing without it", "device", cfg.Input.EvdevDevice, "error", err)
		} else {
			ac.evdev = reader
			ac.evdevEvents = reader.Events()
		}
	}

	return ac
}

// Run shows sh in the window opened by Init until the user quits, which is
// reported as ErrQuit. The selection is saved on the way out.
func Run(sh *shell.Shell, cfg config.Config) error {
	ac := newAppController(sh, cfg)
	defer ac.close()

	err := ac.loop()

	if saveErr := sh.Close(); saveErr != nil {
		ac.logger.Error("Failed to save selection", "error", saveErr)
	}
	return err
}

func (ac *appController) loop() error {
	for {
		if event := sdl.WaitEventTimeout(int(constants.DefaultFrameDelay.Milliseconds())); event != nil {
			for ; event != nil; event = sdl.PollEvent() {
				if err := ac.handleEvent(event); err != nil {
					return err
				}
			}
		}

		if err := ac.drainEvdev(); err != nil {
			return err
		}

		ac.handleDirectionalRepeats()
		ac.shell.Bar.Tick()

		if err := ac.render(); err != nil {
			return err
		}
		ac.window.Present()
	}
}

func (ac *appController) handleEvent(event sdl.Event) error {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return ErrQuit

	case *sdl.KeyboardEvent, *sdl.ControllerButtonEvent, *sdl.ControllerDeviceEvent:
		inputEvent := ac.processor.ProcessSDLEvent(event)
		if inputEvent == nil {
			return nil
		}
		return ac.handleInput(*inputEvent)

	case *sdl.MouseButtonEvent:
		if e.Which == sdl.TOUCH_MOUSEID || e.Button != sdl.BUTTON_LEFT || e.State != sdl.RELEASED {
			return nil
		}
		scale := ac.window.Scale()
		ac.handleTap(int32(float64(e.X)*scale), int32(float64(e.Y)*scale))

	case *sdl.TouchFingerEvent:
		if e.Type != sdl.FINGERUP {
			return nil
		}
		w, h := ac.window.Size()
		ac.handleTap(int32(e.X*float32(w)), int32(e.Y*float32(h)))
	}
	return nil
}

func (ac *appController) drainEvdev() error {
	for ac.evdevEvents != nil {
		select {
		case inputEvent, ok := <-ac.evdevEvents:
			if !ok {
				ac.evdevEvents = nil
				return nil
			}
			if err := ac.handleInput(inputEvent); err != nil {
				return err
			}
		default:
			return nil
		}
	}
	return nil
}

func (ac *appController) handleInput(inputEvent internal.InputEvent) error {
	if !inputEvent.Pressed {
		ac.directional.SetHeld(inputEvent.Button, false)
		return nil
	}

	if dir := ac.directional.SetHeld(inputEvent.Button, true); dir != internal.DirectionNone {
		ac.step(dir)
		return nil
	}

	switch inputEvent.Button {
	case constants.VirtualButtonA:
		presses := ac.shell.Press()
		ac.logger.Debug("Pressed screen button", "route", ac.shell.Router.Current().Route, "presses", presses)
	case constants.VirtualButtonB:
		if !ac.shell.Back() {
			return ErrQuit
		}
	case constants.VirtualButtonStart, constants.VirtualButtonMenu:
		return ErrQuit
	}
	return nil
}

func (ac *appController) handleDirectionalRepeats() {
	if dir := ac.directional.Update(); dir != internal.DirectionNone {
		ac.step(dir)
	}
}

func (ac *appController) step(dir internal.Direction) {
	switch dir {
	case internal.DirectionPrevious:
		ac.shell.Bar.SelectPrevious()
	case internal.DirectionNext:
		ac.shell.Bar.SelectNext()
	}
}

func (ac *appController) handleTap(x, y int32) {
	if ac.constraints.MaxWidth <= 0 {
		return
	}
	if y < ac.barY || y >= ac.barY+ac.constraints.Height {
		return
	}
	if id, ok := ac.shell.Bar.HitTest(ac.constraints, x-ac.barX); ok {
		ac.shell.Bar.Select(id)
	}
}

func (ac *appController) render() error {
	theme := internal.GetTheme()
	w, h := ac.window.Size()
	scale := ac.window.Scale()

	ac.window.Clear(theme.BackgroundColor)

	margin := int32(float64(constants.DefaultBottomNavMargin) * scale)
	barHeight := int32(float64(constants.DefaultBottomNavHeight) * scale)

	ac.barX = margin
	ac.barY = h - margin - barHeight
	ac.constraints = layout.Constraints{MaxWidth: w - 2*margin, Height: barHeight}

	if err := ac.renderScreen(w, ac.barY); err != nil {
		return err
	}
	return ac.renderBar(scale)
}

func (ac *appController) renderScreen(width, height int32) error {
	screen, err := ac.shell.Screen()
	if err != nil {
		return NewInfrastructureError("screen_content", err)
	}

	theme := internal.GetTheme()
	fonts := internal.GetFonts()

	lines := []struct {
		font *ttf.Font
		text string
	}{
		{fonts.Title, screen.Title},
		{fonts.Hint, screen.Counter},
		{fonts.Hint, screen.Hint},
	}

	y := height / 3
	for _, line := range lines {
		texture, tw, th, err := ac.textTexture(line.font, line.text, theme.TextColor)
		if err != nil {
			return err
		}
		ac.window.Renderer.Copy(texture, nil, &sdl.Rect{X: (width - tw) / 2, Y: y, W: tw, H: th})
		y += th + th/2
	}
	return nil
}

func (ac *appController) renderBar(scale float64) error {
	theme := internal.GetTheme()
	renderer := ac.window.Renderer
	res := ac.shell.Bar.Layout(ac.constraints)

	corner := int32(float64(constants.DefaultBottomNavCornerSize) * scale)
	gfx.RoundedBoxColor(renderer, ac.barX, ac.barY, ac.barX+res.Width-1, ac.barY+res.Height-1, corner, theme.CardColor)

	inset := corner / 3
	ind := res.Indicator
	gfx.RoundedBoxColor(renderer,
		ac.barX+ind.X+inset, ac.barY+ind.Y+inset,
		ac.barX+ind.X+ind.W-1-inset, ac.barY+ind.Y+ind.H-1-inset,
		corner-inset, theme.IndicatorColor)

	size := int32(float64(constants.DefaultIconSize) * scale)
	for i, item := range ac.shell.Bar.Items() {
		texture, err := ac.iconTexture(item.Section.Icon(item.Selected), int(size), theme.TintColor)
		if err != nil {
			return err
		}
		slot := res.Items[i]
		renderer.Copy(texture, nil, &sdl.Rect{
			X: ac.barX + slot.X + (slot.W-size)/2,
			Y: ac.barY + slot.Y + (slot.H-size)/2,
			W: size,
			H: size,
		})
	}
	return nil
}

func (ac *appController) iconTexture(ref icons.Ref, size int, tint sdl.Color) (*sdl.Texture, error) {
	key := icons.Key(ref, size, internal.NRGBA(tint))
	texture, err := ac.textures.GetOrCreate(key, func() (*sdl.Texture, error) {
		img, err := ac.resolver.Resolve(ref, size, internal.NRGBA(tint))
		if err != nil {
			return nil, err
		}
		return internal.TextureFromRGBA(ac.window.Renderer, img)
	})
	if err != nil {
		return nil, NewInfrastructureError("load_icon", err)
	}
	return texture, nil
}

func (ac *appController) textTexture(font *ttf.Font, text string, c sdl.Color) (*sdl.Texture, int32, int32, error) {
	key := fmt.Sprintf("text:%p:%s:%02x%02x%02x", font, text, c.R, c.G, c.B)
	texture, err := ac.textures.GetOrCreate(key, func() (*sdl.Texture, error) {
		texture, _, _, err := internal.TextTexture(ac.window.Renderer, font, text, c)
		return texture, err
	})
	if err != nil {
		return nil, 0, 0, NewInfrastructureError("render_text", err)
	}
	_, _, w, h, err := texture.Query()
	if err != nil {
		return nil, 0, 0, NewInfrastructureError("render_text", err)
	}
	return texture, w, h, nil
}

func (ac *appController) close() {
	ac.textures.Destroy()
	if ac.evdev != nil {
		if err := ac.evdev.Close(); err != nil {
			ac.logger.Debug("Closing evdev reader", "error", err)
		}
	}
}
