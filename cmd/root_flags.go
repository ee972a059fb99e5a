package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mateconpizza/bma/internal/config"
)

func initRootFlags(cmd *cobra.Command) {
	f := config.App.Flags

	// Global
	cmd.PersistentFlags().StringVarP(&f.Browser, "browser", "b", "", "force browser [chrome|brave|edge|firefox|zen]")
	cmd.PersistentFlags().BoolVarP(&f.JSON, "json", "j", false, "print data in JSON format")
	cmd.PersistentFlags().StringVar(&f.ColorStr, "color", "always", "print with pretty colors [always|never]")
	cmd.PersistentFlags().CountVarP(&f.Verbose, "verbose", "v", "verbosity level, repeat for more (-vvv)")

	// Output
	cmd.Flags().StringVarP(&f.Format, "format", "f", "", "output format [plain|json|pretty]")
	cmd.Flags().StringVarP(&f.Field, "field", "F", "", "prints by field [name|url]")

	cmd.CompletionOptions.HiddenDefaultCmd = true
}
