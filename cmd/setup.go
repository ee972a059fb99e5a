package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mateconpizza/bma/internal/config"
	"github.com/mateconpizza/bma/internal/format/color"
	"github.com/mateconpizza/bma/internal/sys/terminal"
)

// setup loads the configuration before any command runs.
func setup(_ *cobra.Command, _ []string) error {
	cfg := config.App
	cfg.Flags.Color = cfg.Flags.ColorStr == "always" && !terminal.IsPiped() && !terminal.NoColorEnv()

	config.SetVerbosity(cfg.Flags.Verbose)
	color.Enable(cfg.Flags.Color)

	p, err := config.ConfigPath()
	if err != nil {
		slog.Warn("config path", "error", err)
	} else {
		config.SetAppPaths(p)
	}

	f, err := config.Load(cfg.Path.ConfigFile)
	if err != nil {
		slog.Error("loading config", "err", err)
	}

	return cfg.Apply(f)
}

func init() {
	initRootFlags(Root)
	Root.AddCommand(detectCmd, profilesCmd, versionCmd)
}
