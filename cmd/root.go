// Package cmd implements the command line interface.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mateconpizza/rotato"
	"github.com/spf13/cobra"

	"github.com/mateconpizza/bma/internal/bookmark"
	"github.com/mateconpizza/bma/internal/browser"
	"github.com/mateconpizza/bma/internal/config"
	"github.com/mateconpizza/bma/internal/extract"
	"github.com/mateconpizza/bma/internal/format"
)

// Root represents the base command when called without any subcommands.
var Root = &cobra.Command{
	Use:               config.App.Cmd,
	Short:             config.App.Info.Desc,
	Long:              config.App.Info.Title + "\n\n" + config.App.Info.Desc,
	SilenceUsage:      true,
	SilenceErrors:     true,
	Args:              cobra.NoArgs,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, _ []string) error {
		bs, err := extractBookmarks(cmd)
		if err != nil {
			return fmt.Errorf("%w", err)
		}

		w := cmd.OutOrStdout()
		if f := config.App.Flags.Field; f != "" {
			return format.ToField(w, bs, f)
		}

		return format.Render(w, bs, config.App.Format)
	},
}

// extractBookmarks runs the extraction, with a spinner when the output is
// an interactive terminal.
func extractBookmarks(cmd *cobra.Command) ([]bookmark.Bookmark, error) {
	e := newExtractor()
	if !config.App.Flags.Color {
		return e.Extract(cmd.Context())
	}

	sp := rotato.New(
		rotato.WithMesg("reading bookmarks..."),
		rotato.WithMesgColor(rotato.ColorBrightBlue),
		rotato.WithSpinnerColor(rotato.ColorGray),
	)
	sp.Start()
	bs, err := e.Extract(cmd.Context())
	sp.Done()

	return bs, err
}

// newExtractor returns an extractor honoring the forced browser, if any.
func newExtractor() *extract.Extractor {
	opts := []extract.OptFn{extract.WithTempDir(config.App.TempDir)}
	if b := config.App.Browser; b != "" {
		opts = append(opts, extract.WithDetector(extract.Fixed(browser.Classify(b))))
	}

	return extract.New(opts...)
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	if err := Root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", config.App.Cmd, err)
		os.Exit(1)
	}
}
