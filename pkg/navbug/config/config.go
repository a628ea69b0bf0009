// Package config loads navbug's settings from a TOML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/milchschlumpf/navbug/pkg/navbug/constants"
	"github.com/milchschlumpf/navbug/pkg/navbug/spring"
)

// DefaultPath is where the config file is looked for when none is given.
const DefaultPath = "navbug.toml"

// Config holds every setting navbug reads at startup.
type Config struct {
	Title     string `toml:"title"`
	LogPath   string `toml:"log_path"`
	LogLevel  string `toml:"log_level"`
	StatePath string `toml:"state_path"`
	Language  string `toml:"language"`
	FPS       int    `toml:"fps"`

	Spring SpringConfig `toml:"spring"`
	Window WindowConfig `toml:"window"`
	Theme  ThemeConfig  `toml:"theme"`
	Input  InputConfig  `toml:"input"`
}

// SpringConfig tunes the selection animations.
type SpringConfig struct {
	Stiffness    float64 `toml:"stiffness"`
	DampingRatio float64 `toml:"damping_ratio"`
}

// Spec converts the settings into a spring.Spec.
func (s SpringConfig) Spec() spring.Spec {
	return spring.Spec{Stiffness: s.Stiffness, DampingRatio: s.DampingRatio}
}

// WindowConfig describes the SDL window.
type WindowConfig struct {
	Width      int32 `toml:"width"`
	Height     int32 `toml:"height"`
	Borderless bool  `toml:"borderless"`
	Resizable  bool  `toml:"resizable"`
	Fullscreen bool  `toml:"fullscreen"`
}

// ThemeConfig holds the few colors the bar needs, as 0xRRGGBB values.
type ThemeConfig struct {
	FontPath   string `toml:"font_path"`
	Background uint32 `toml:"background"`
	Card       uint32 `toml:"card"`
	Tint       uint32 `toml:"tint"`
	Indicator  uint32 `toml:"indicator"`
	Text       uint32 `toml:"text"`
}

// InputConfig configures raw hardware input on handheld devices.
type InputConfig struct {
	// EvdevDevice is a /dev/input/eventN path. Empty disables raw input.
	EvdevDevice string `toml:"evdev_device"`
	PreviousKey uint16 `toml:"previous_key"`
	NextKey     uint16 `toml:"next_key"`
	BackKey     uint16 `toml:"back_key"`
}

// Default returns the built-in configuration.
func Default() Config {
	spec := spring.DefaultSpec()
	return Config{
		Title:     "Navigation Compose Bug",
		LogLevel:  "info",
		StatePath: "navbug_state.toml",
		FPS:       spring.DefaultFPS,
		Spring: SpringConfig{
			Stiffness:    spec.Stiffness,
			DampingRatio: spec.DampingRatio,
		},
		Window: WindowConfig{
			Width:     1024,
			Height:    768,
			Resizable: true,
		},
		Theme: ThemeConfig{
			FontPath:   "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
			Background: 0xF2F2F2,
			Card:       0xFFFFFF,
			Tint:       0x000000,
			Indicator:  0xE0E0E0,
			Text:       0x000000,
		},
		Input: InputConfig{
			PreviousKey: 310, // BTN_TL
			NextKey:     311, // BTN_TR
			BackKey:     305, // BTN_EAST
		},
	}
}

// Load reads path on top of the defaults. An empty path means DefaultPath.
// A missing file is not an error. Environment overrides apply last.
func Load(path string) (Config, error) {
	cfg := Default()

	resolved := strings.TrimSpace(path)
	if resolved == "" {
		resolved = DefaultPath
	}

	if _, err := toml.DecodeFile(resolved, &cfg); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("parse config file %q: %w", resolved, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that would make the app misbehave.
func (c Config) Validate() error {
	if c.Spring.Stiffness <= 0 {
		return fmt.Errorf("config: spring stiffness must be positive, got %v", c.Spring.Stiffness)
	}
	if c.Spring.DampingRatio <= 0 {
		return fmt.Errorf("config: spring damping_ratio must be positive, got %v", c.Spring.DampingRatio)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("config: fps must be positive, got %d", c.FPS)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(constants.WindowWidthEnvVar); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return fmt.Errorf("config: invalid %s %q: %w", constants.WindowWidthEnvVar, v, err)
		}
		c.Window.Width = int32(n)
	}
	if v := os.Getenv(constants.WindowHeightEnvVar); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return fmt.Errorf("config: invalid %s %q: %w", constants.WindowHeightEnvVar, v, err)
		}
		c.Window.Height = int32(n)
	}
	if v := os.Getenv(constants.LanguageEnvVar); v != "" {
		c.Language = v
	}
	if v := os.Getenv(constants.StatePathEnvVar); v != "" {
		c.StatePath = v
	}
	if v := os.Getenv(constants.LogLevelEnvVar); v != "" {
		c.LogLevel = v
	}
	if constants.IsDevMode() {
		c.Window.Borderless = false
		c.Window.Fullscreen = false
	}
	return nil
}
