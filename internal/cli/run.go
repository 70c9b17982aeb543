package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"tiretemp/internal/app"
)

var (
	runTicks     int
	runNoPrefill bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the live monitoring loop",
	RunE: func(cmd *cobra.Command, args []string) error {
		if runTicks < 0 {
			return fmt.Errorf("--ticks cannot be negative")
		}
		return getApp().Run(cmd.Context(), app.RunOptions{
			Ticks:     runTicks,
			NoPrefill: runNoPrefill,
		})
	},
}

func init() {
	runCmd.Flags().IntVar(&runTicks, "ticks", 0, "Stop after this many ticks (0 runs until interrupted)")
	runCmd.Flags().BoolVar(&runNoPrefill, "no-prefill", false, "Start with empty charts instead of prefilled history")
}
