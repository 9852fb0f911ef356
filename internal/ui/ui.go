// Package ui is the Gio window of the capture view.
package ui

import (
	"os"

	"gioui.org/app"
	"github.com/charmbracelet/log"

	"github.com/OpenTraceLab/OpenTraceLA/internal/config"
)

// Run opens the window and blocks until it closes.
func Run(cfg *config.Config, logger *log.Logger) error {
	if logger == nil {
		logger = log.Default()
	}

	go func() {
		ui, err := New(new(app.Window), cfg, logger)
		if err != nil {
			logger.Error("ui", "err", err)
			os.Exit(1)
		}
		if err := ui.Run(); err != nil {
			logger.Error("ui", "err", err)
			os.Exit(1)
		}
		os.Exit(0)
	}()

	app.Main()
	return nil
}
