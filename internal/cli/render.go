package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"tiretemp/internal/app"
)

var (
	renderSamples int
	renderOutDir  string
	renderTrace   string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Process samples offline and write chart PNGs, trace CSV and a summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		if renderSamples < 0 {
			return fmt.Errorf("--samples cannot be negative")
		}

		a := getApp()
		a.Out = cmd.OutOrStdout()
		return a.Render(cmd.Context(), app.RenderOptions{
			Samples:   renderSamples,
			OutDir:    renderOutDir,
			TracePath: renderTrace,
		})
	},
}

func init() {
	renderCmd.Flags().IntVar(&renderSamples, "samples", 0, "Number of samples to process (defaults to sensor.prefill)")
	renderCmd.Flags().StringVar(&renderOutDir, "out", "", "Directory for front.png and rear.png (defaults to export.snapshot_dir)")
	renderCmd.Flags().StringVar(&renderTrace, "trace", "", "Path to write the per-tick trace CSV")
}
