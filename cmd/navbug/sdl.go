//go:build !nosdl

package main

import (
	"github.com/milchschlumpf/navbug/pkg/navbug"
	"github.com/milchschlumpf/navbug/pkg/navbug/config"
	"github.com/milchschlumpf/navbug/pkg/navbug/shell"
)

func runSDL(sh *shell.Shell, cfg config.Config) error {
	if err := navbug.Init(cfg); err != nil {
		return err
	}
	defer navbug.Close()

	if err := navbug.Run(sh, cfg); err != nil && !navbug.IsQuit(err) {
		return err
	}
	return nil
}
