// Package navbug hosts the bottom navigation demo in an SDL window.
//
// The host draws the current destination above a rounded navigation card and
// feeds keyboard, controller, mouse, touch and raw evdev input into a
// shell.Shell. Call Init before Run and Close when done.
package navbug

import (
	"log/slog"

	"github.com/milchschlumpf/navbug/pkg/navbug/config"
	"github.com/milchschlumpf/navbug/pkg/navbug/constants"
	"github.com/milchschlumpf/navbug/pkg/navbug/internal"
	"github.com/milchschlumpf/navbug/pkg/navbug/logging"
)

// Init applies cfg's theme and opens the window.
func Init(cfg config.Config) error {
	if cfg.LogPath != "" {
		logging.SetPath(cfg.LogPath)
	}

	if constants.IsDevMode() {
		logging.SetInternalLevel(slog.LevelDebug)
	} else {
		logging.SetInternalLevel(slog.LevelError)
	}
	logging.SetRawLevel(cfg.LogLevel)

	internal.SetTheme(internal.ThemeFrom(cfg.Theme))

	if err := internal.Init(cfg.Title, internal.WindowOptionsFrom(cfg.Window)); err != nil {
		internal.SDLCleanup()
		return NewInfrastructureError("init", err)
	}
	return nil
}

// Close releases all SDL resources. Must be called before program exit.
func Close() {
	internal.SDLCleanup()
	logging.Close()
}

// GetWindow returns the underlying SDL window wrapper for advanced use cases.
func GetWindow() *internal.Window {
	return internal.GetWindow()
}
