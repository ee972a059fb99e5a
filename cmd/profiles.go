package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mateconpizza/bma/internal/browser"
	"github.com/mateconpizza/bma/internal/browser/gecko"
	"github.com/mateconpizza/bma/internal/config"
	"github.com/mateconpizza/bma/internal/format"
	"github.com/mateconpizza/bma/internal/format/color"
)

var profilesCmd = &cobra.Command{
	Use:       "profiles [firefox|zen]",
	Short:     "List the profiles registered by a Gecko browser",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"firefox", "zen"},
	RunE: func(cmd *cobra.Command, args []string) error {
		k := profilesBrowser(cmd, args)
		ps, err := gecko.Profiles(k)
		if err != nil {
			return fmt.Errorf("%w", err)
		}

		w := cmd.OutOrStdout()
		if config.App.Flags.JSON {
			return format.ToJSON(w, ps)
		}

		for _, p := range ps {
			mark := " "
			if p.Default {
				mark = color.BrightGreen("*").String()
			}

			if _, err := fmt.Fprintf(w, "%s %s\t%s\n", mark, color.Text(p.Name).Bold().String(), p.Path); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
		}

		return nil
	},
}

// profilesBrowser returns the browser given as argument, the forced one, or
// the detected one, in that order.
func profilesBrowser(cmd *cobra.Command, args []string) browser.Kind {
	if len(args) == 1 {
		return browser.Classify(args[0])
	}

	if config.App.Browser != "" {
		return browser.Classify(config.App.Browser)
	}

	return browser.Detect(cmd.Context())
}
