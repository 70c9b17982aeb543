package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tiretemp/internal/app"
	"tiretemp/internal/config"
	"tiretemp/internal/logging"
	"tiretemp/internal/version"
)

var (
	cfgFile   string
	logLevel  string
	logFormat string
	appHandle *app.App
)

var rootCmd = &cobra.Command{
	Use:           "tiretemp",
	Short:         "Track front and rear tire temperature trends",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if appHandle != nil || cmd == versionCmd {
			return nil
		}

		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		if logLevel != "" {
			cfg.Logging.Level = logLevel
		}
		if logFormat != "" {
			cfg.Logging.Format = logFormat
		}

		logger := logging.NewLogger(cfg.Logging)
		appHandle = app.NewApp(cfg, logger)
		appHandle.Logger.Debug().
			Str("version", version.Version).
			Str("environment", cfg.App.Environment).
			Msg("configuration loaded")
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override log level defined in config")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Override log format (json or console)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(versionCmd)
}

func getApp() *app.App {
	if appHandle == nil {
		panic("application not initialized; PersistentPreRunE not executed")
	}
	return appHandle
}
