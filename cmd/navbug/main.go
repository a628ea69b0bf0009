// navbug shows four interchangeable tabs in a bottom navigation bar with a
// spring-animated selection indicator. Switching tabs unwinds to the start
// destination, saves the tab's history and restores it when the tab is
// picked again.
//
// The SDL window is the default host. --tui runs the same bar in the
// terminal instead. Building with the nosdl tag leaves the SDL host out, so
// the terminal host builds without cgo.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/milchschlumpf/navbug/pkg/navbug/config"
	"github.com/milchschlumpf/navbug/pkg/navbug/locale"
	"github.com/milchschlumpf/navbug/pkg/navbug/logging"
	"github.com/milchschlumpf/navbug/pkg/navbug/shell"
	"github.com/milchschlumpf/navbug/pkg/navbug/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var configPath, statePath, logLevel, lang string
	var useTUI bool

	flagSet := pflag.NewFlagSet("navbug", pflag.ContinueOnError)
	flagSet.StringVar(&configPath, "config", config.DefaultPath, "path to the TOML config file")
	flagSet.BoolVar(&useTUI, "tui", false, "run in the terminal instead of an SDL window")
	flagSet.StringVar(&statePath, "state", "", "path to the selection state file (overrides the config)")
	flagSet.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error (overrides the config)")
	flagSet.StringVar(&lang, "lang", "", "language tag for titles, e.g. en or de (overrides the config)")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if flagSet.Changed("state") {
		cfg.StatePath = statePath
	}
	if flagSet.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flagSet.Changed("lang") {
		cfg.Language = lang
	}

	if cfg.LogPath != "" {
		logging.SetPath(cfg.LogPath)
	}
	// The terminal UI owns stdout.
	logging.SetQuietStdout(useTUI)
	logging.SetRawLevel(cfg.LogLevel)
	logger := logging.Get()

	texts, err := locale.New(cfg.Language, locale.FromPOSIX(os.Getenv("LANG")))
	if err != nil {
		return err
	}

	sh, err := shell.New(shell.Options{
		Strings:   texts,
		StatePath: cfg.StatePath,
		Spec:      cfg.Spring.Spec(),
		FPS:       cfg.FPS,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	logger.Info("Starting navbug", "tui", useTUI, "language", texts.Language().String(), "tab", sh.Selection.CurrentID())

	if useTUI {
		return runTUI(sh, cfg)
	}
	return runSDL(sh, cfg)
}

func runTUI(sh *shell.Shell, cfg config.Config) error {
	defer logging.Close()

	model := term.New(sh, term.Options{FPS: cfg.FPS, Logger: logging.Get()})

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, runErr := program.Run()

	if err := sh.Close(); err != nil {
		logging.Get().Error("Failed to save selection", "error", err)
	}
	return runErr
}
