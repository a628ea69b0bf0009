package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/milchschlumpf/navbug/pkg/navbug/constants"
)

// Window wraps the SDL window and renderer.
type Window struct {
	Window          *sdl.Window
	Renderer        *sdl.Renderer
	Title           string
	hasVSync        bool
	lastPresentTime uint64
}

func initWindow(title string, winOpts WindowOptions) (*Window, error) {
	x, y := int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED)
	if constants.IsDevMode() {
		x, y = 50, 50
	}

	width, height := winOpts.Width, winOpts.Height
	if winOpts.Fullscreen {
		if mode, err := sdl.GetCurrentDisplayMode(0); err == nil {
			width, height = mode.W, mode.H
		} else {
			GetInternalLogger().Warn("Failed to get display mode; using configured size", "error", err)
		}
	}

	GetInternalLogger().Debug("Initializing SDL Window", "width", width, "height", height)

	window, err := sdl.CreateWindow(title, x, y, width, height, winOpts.ToSDLFlags())
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		GetInternalLogger().Warn("Accelerated renderer unavailable; falling back to software", "error", err)
		renderer, err = sdl.CreateRenderer(window, -1, sdl.RENDERER_SOFTWARE)
		if err != nil {
			window.Destroy()
			return nil, fmt.Errorf("create renderer: %w", err)
		}
	}

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	return &Window{
		Window:   window,
		Renderer: renderer,
		Title:    title,
		hasVSync: vsync,
	}, nil
}

func (window *Window) closeWindow() {
	window.Renderer.Destroy()
	window.Window.Destroy()
}

func GetWindow() *Window {
	return window
}

// Size returns the renderer's output size in pixels, which differs from the
// window size on high-DPI displays.
func (window *Window) Size() (int32, int32) {
	w, h, err := window.Renderer.GetOutputSize()
	if err != nil {
		return window.Window.GetSize()
	}
	return w, h
}

// Scale returns the ratio between renderer pixels and window coordinates.
// Mouse events arrive in window coordinates.
func (window *Window) Scale() float64 {
	ww, _ := window.Window.GetSize()
	rw, _ := window.Size()
	if ww == 0 {
		return 1
	}
	return float64(rw) / float64(ww)
}

// Clear fills the whole frame with c.
func (window *Window) Clear(c sdl.Color) {
	window.Renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	window.Renderer.Clear()
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available. Use this instead of renderer.Present().
func (window *Window) Present() {
	window.Renderer.Present()
	if !window.hasVSync {
		frame := uint64(constants.DefaultFrameDelay.Milliseconds())
		now := sdl.GetTicks64()
		if elapsed := now - window.lastPresentTime; elapsed < frame {
			sdl.Delay(uint32(frame - elapsed))
		}
		window.lastPresentTime = sdl.GetTicks64()
	}
}
