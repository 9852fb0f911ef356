package cmd

import (
	"github.com/spf13/cobra"

	appui "github.com/OpenTraceLab/OpenTraceLA/internal/ui"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the capture view",
	Long: `Open the capture view window. The ruler is dragged to pan, the wheel
zooms around the pointer and a right click drops a cursor.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return appui.Run(cfg, logger)
	},
}

func init() {
	rootCmd.AddCommand(uiCmd)
}
