package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/devconsole/internal/tui/console"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Starts the interactive console",
	Long: `Starts the interactive developer console in the terminal.

Keys:
  Enter       Run the line
  Tab         Complete command names and arguments
  Up/Down     Browse the input history
  PgUp/PgDn   Scroll the output
  Ctrl+L      Clear the output
  Esc/Ctrl+C  Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		printError("failed to load config", err)
		return err
	}

	// stderr would garble the alternate screen; logs go to the scrollback
	// or nowhere
	var logOutput io.Writer = io.Discard
	var capture *console.Capture
	if cfg.CaptureLogs() {
		capture = console.NewCapture(console.DefaultCaptureBuffer)
		logOutput = capture
	}

	host := console.NewHost()
	s, err := newSession(cfg, logOutput, host, false)
	if err != nil {
		printError("failed to set up console", err)
		return err
	}

	opts := console.Options{
		Config: console.Config{
			Title:          cfg.Console.Title,
			Prompt:         cfg.Console.Prompt,
			HistorySize:    cfg.Console.HistorySize,
			ScrollbackSize: cfg.Console.ScrollbackSize,
			MaxInputLength: cfg.Console.MaxInputLength,
			CommandTimeout: cfg.Console.CommandTimeout.Duration,
		},
		Dispatcher: s.dispatcher,
		Host:       host,
		Capture:    capture,
	}
	if err := console.Run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "TUI error: %v\n", err)
		return err
	}
	return nil
}
