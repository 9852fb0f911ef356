package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceLA/internal/config"
)

var (
	// Global flags
	verbose    bool
	configPath string

	logger = log.Default()
)

var rootCmd = &cobra.Command{
	Use:   "otla",
	Short: "OpenTraceLA - logic analyzer capture viewer",
	Long: `OpenTraceLA (otla) views logic analyzer captures on a zoomable timeline
with a time ruler, trigger marker and up to 32 labelled cursors.

Examples:
  otla ui                                        # Launch the capture view
  otla ruler --rate 1e6 --trigger 250us          # Print one ruler paint pass
  otla ruler --cursor SCK=10us --cursor MOSI=12us
  otla actions                                   # List actions and shortcuts`,
	Version:      "0.1.0",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := log.InfoLevel
		if verbose {
			level = log.DebugLevel
		}
		logger = newLogger(os.Stderr, level)
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is the user config directory)")
}

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// loadConfig reads --config, or the default config file when it is unset.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		p, err := config.Path()
		if err != nil {
			return nil, err
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("config loaded", "path", path)
	return cfg, nil
}
