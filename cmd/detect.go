package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mateconpizza/bma/internal/config"
	"github.com/mateconpizza/bma/internal/format"
	"github.com/mateconpizza/bma/internal/format/color"
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Show the detected browser and its bookmark location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		src, err := newExtractor().Resolve(cmd.Context())
		if err != nil {
			return fmt.Errorf("%w", err)
		}

		w := cmd.OutOrStdout()
		if config.App.Flags.JSON {
			return format.ToJSON(w, src)
		}

		_, err = fmt.Fprintf(w, "%s %s\n%s %s\n",
			color.Gray("browser:").String(), color.BrightOrange(src.Kind.String()).Bold().String(),
			color.Gray("path:").String(), src.Path,
		)

		return err
	},
}
