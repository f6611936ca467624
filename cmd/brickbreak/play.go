package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickbreak/internal/core"
	"github.com/vovakirdan/brickbreak/internal/platform/tui"
)

var flagFPS int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal. The mouse moves the paddle; the
terminal must report mouse motion.

Controls:
  Mouse          - Move the paddle
  Click/Space    - Launch the ball
  Enter/Click    - Start from the title screen
  ?              - Toggle key help
  Q/Ctrl+C       - Quit

Examples:
  brickbreak play
  brickbreak play --fps 30
  brickbreak play --config ./my-breakout.yaml --log ~/.brickbreak/play.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = terminal.tick_rate from config)")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	// The terminal owns stdout, so logs go to a file or nowhere.
	logger, closeLog, err := newLogger(flagLog, io.Discard, "play")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	rt := core.DefaultConfig()
	rt.TickRate = cfg.Terminal.TickRate
	if flagFPS > 0 {
		rt.TickRate = flagFPS
	}
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	if err := tui.Run(cfg, rt, logger); err != nil {
		logger.Error("terminal session failed", "error", err)
		fail(closeLog, err)
	}
}
