// Package constants defines shared constants, types, and configuration values
// used throughout navbug.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables read at startup.
const (
	EnvironmentEnvVar  = "ENVIRONMENT"
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
	LanguageEnvVar     = "NAVBUG_LANG"
	StatePathEnvVar    = "NAVBUG_STATE"
	LogLevelEnvVar     = "NAVBUG_LOG_LEVEL"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// VirtualButton represents an abstract input button, mapped from physical hardware.
// Keyboard keys, controller buttons and raw evdev codes all translate to these.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonL1
	VirtualButtonR1
	VirtualButtonStart
	VirtualButtonSelect
	VirtualButtonMenu
)

func (vb VirtualButton) GetName() string {
	switch vb {
	case VirtualButtonUnassigned:
		return "Unassigned"
	case VirtualButtonUp:
		return "Up"
	case VirtualButtonDown:
		return "Down"
	case VirtualButtonLeft:
		return "Left"
	case VirtualButtonRight:
		return "Right"
	case VirtualButtonA:
		return "A"
	case VirtualButtonB:
		return "B"
	case VirtualButtonL1:
		return "L1"
	case VirtualButtonR1:
		return "R1"
	case VirtualButtonStart:
		return "Start"
	case VirtualButtonSelect:
		return "Select"
	case VirtualButtonMenu:
		return "Menu"
	default:
		return "Unknown"
	}
}

// Default timing and sizing constants.
const (
	DefaultInputDelay          = 20 * time.Millisecond // Debounce delay between input events
	DefaultFrameDelay          = 16 * time.Millisecond // ~60fps when VSync is unavailable
	DefaultBottomNavHeight     = 56                    // Nominal bar height in pixels
	DefaultBottomNavMargin     = 16                    // Gap between bar card and window edge
	DefaultBottomNavCornerSize = 15                    // Card corner radius
	DefaultIconSize            = 28                    // Rendered icon size in pixels
)
