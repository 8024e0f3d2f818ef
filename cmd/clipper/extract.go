package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/clipper/internal/api"
	"github.com/jackzampolin/clipper/internal/config"
	"github.com/jackzampolin/clipper/internal/home"
	"github.com/jackzampolin/clipper/internal/ingest"
)

var (
	extractTitle string
	extractPages int
	extractSave  bool
)

var extractCmd = &cobra.Command{
	Use:   "extract <export.txt> [more-parts...]",
	Short: "Reconstruct articles from a pre-extracted text export",
	Long: `Extract runs the reconstruction pipeline over one or more text export
parts. Multi-part exports are ordered by numeric filename suffix
(bundle-1.txt, bundle-2.txt, ...) before processing.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cm, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}
		cfg := cm.Get()
		logger := newLogger(cfg.LogLevel)

		res, err := ingest.Ingest(cmd.Context(), ingest.Request{
			Paths:     args,
			Title:     extractTitle,
			PageCount: extractPages,
			Config:    cfg.Pipeline,
			Logger:    logger,
		})
		if err != nil {
			return err
		}

		if extractSave {
			if err := saveResult(res); err != nil {
				return err
			}
		}

		return api.Output(res)
	},
}

// saveResult writes the result into the home results directory.
func saveResult(res *ingest.Result) error {
	dir, err := home.New(homeDirPath)
	if err != nil {
		return err
	}
	if err := dir.EnsureExists(); err != nil {
		return err
	}

	f, err := os.Create(dir.ResultPath(res.BundleID))
	if err != nil {
		return fmt.Errorf("failed to create result file: %w", err)
	}
	defer f.Close()

	return api.OutputTo(f, api.OutputFormatYAML, res)
}

func init() {
	extractCmd.Flags().StringVar(&extractTitle, "title", "", "bundle title (default: derived from filename)")
	extractCmd.Flags().IntVar(&extractPages, "pages", 0, "advisory page count from the extraction step")
	extractCmd.Flags().BoolVar(&extractSave, "save", false, "also save the result under the home results directory")
}
