// Package sys provides access to the environment and external commands.
package sys

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
)

// Env retrieves an environment variable.
//
// If the environment variable is not set, returns the default value.
func Env(s, def string) string {
	if v, ok := os.LookupEnv(s); ok {
		return v
	}

	return def
}

// BinExists checks if the binary exists in $PATH.
func BinExists(s string) bool {
	_, err := exec.LookPath(s)
	return err == nil
}

// Output runs a command with the given arguments and returns its standard
// output.
func Output(ctx context.Context, name string, arg ...string) ([]byte, error) {
	slog.Debug("running command", "cmd", name, "args", arg)
	out, err := exec.CommandContext(ctx, name, arg...).Output()
	if err != nil {
		return nil, fmt.Errorf("running command %q: %w", name, err)
	}

	return out, nil
}
