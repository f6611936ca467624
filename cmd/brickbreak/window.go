package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreak/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play with the mouse. The window can be
resized; the play surface keeps its 3:4 aspect ratio and resets its bricks.

Controls:
  Mouse          - Move the paddle
  Click          - Start, then launch the ball
  Enter          - Start from the title screen
  Esc            - Quit`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Multiplier for the configured window size")
}

func runWindow(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	logger, closeLog, err := newLogger(flagLog, io.Discard, "window")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if err := window.Run(cfg, flagScale, logger); err != nil {
		logger.Error("window session failed", "error", err)
		fail(closeLog, err)
	}
}
