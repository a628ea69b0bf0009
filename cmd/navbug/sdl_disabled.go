//go:build nosdl

package main

import (
	"errors"

	"github.com/milchschlumpf/navbug/pkg/navbug/config"
	"github.com/milchschlumpf/navbug/pkg/navbug/shell"
)

var errNoSDL = errors.New("built without the SDL host (nosdl); run with --tui")

func runSDL(sh *shell.Shell, _ config.Config) error {
	if err := sh.Close(); err != nil {
		return err
	}
	return errNoSDL
}
