package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
)

// initTerminalOutput disables styling when stdout is not a terminal, so
// piped output stays plain.
func initTerminalOutput() {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		pterm.DisableColor()
	}
}

// printError reports a fatal error, with a privilege hint when the cause is
// a permission failure.
func printError(err error) {
	pterm.Error.Println(err.Error())
	if errors.Is(err, fs.ErrPermission) {
		pterm.Println(pterm.Yellow("Permission was denied; try re-running with elevated privileges."))
	}
}
