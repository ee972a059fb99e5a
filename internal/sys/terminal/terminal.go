// Package terminal reports properties of the output terminal.
package terminal

import (
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/mateconpizza/bma/internal/sys"
)

// https://no-color.org
const noColorEnv string = "NO_COLOR"

// IsPiped reports whether stdout is not a terminal.
func IsPiped() bool {
	return !term.IsTerminal(int(os.Stdout.Fd()))
}

// NoColorEnv reports whether the NO_COLOR environment variable is set.
func NoColorEnv() bool {
	if c := sys.Env(noColorEnv, ""); c != "" {
		slog.Debug("'NO_COLOR' environment variable found.")
		return true
	}

	return false
}
