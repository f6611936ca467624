package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreak/internal/config"
	"github.com/vovakirdan/brickbreak/internal/game"
)

var (
	flagTicks   int
	flagWidth   float64
	flagHeight  float64
	flagPointer float64
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless session and print a summary",
	Long: `Start a session for a viewport of --width x --height units, launch
the ball and run --ticks frames without a display. The paddle tracks the
ball unless --pointer pins it to a viewport x coordinate. A lost ball is
relaunched on the next frame.

Examples:
  brickbreak sim
  brickbreak sim --ticks 10000 --width 768 --height 1024
  brickbreak sim --pointer 0`,
	Args: cobra.NoArgs,
	Run:  runSimCmd,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Number of frames to run")
	simCmd.Flags().Float64Var(&flagWidth, "width", 540, "Viewport width")
	simCmd.Flags().Float64Var(&flagHeight, "height", 720, "Viewport height")
	simCmd.Flags().Float64Var(&flagPointer, "pointer", -1, "Fixed pointer x (negative = follow the ball)")
}

// simOptions configures a headless run.
type simOptions struct {
	Ticks         int
	Width, Height float64
	Pointer       float64 // Negative follows the ball
}

// simSummary totals what happened during a headless run.
type simSummary struct {
	Surface         game.Surface
	Frames          uint64
	Launches        int
	BallsLost       int
	WallBounces     int
	PaddleBounces   int
	BricksDestroyed int
	BricksLeft      int
	ClearedAt       uint64 // Frame the grid emptied, 0 if it never did
	DrawCalls       int
}

// countingCanvas counts draw calls.
type countingCanvas struct {
	calls int
}

func (c *countingCanvas) ClearRect(x, y, w, h float64)  { c.calls++ }
func (c *countingCanvas) FillRect(x, y, w, h float64)   { c.calls++ }
func (c *countingCanvas) FillCircle(cx, cy, r float64) { c.calls++ }

// simulate runs a session without a display.
func simulate(cfg config.Config, opts simOptions, logger *log.Logger) simSummary {
	loop := game.NewLoop(cfg)
	loop.Start(opts.Width, opts.Height)
	s := loop.State()

	sum := simSummary{Surface: s.Surface}
	logger.Info("session started", "surface", fmt.Sprintf("%gx%g", s.Surface.Width, s.Surface.Height))

	bounds := game.Bounds{Width: s.Surface.Width, Height: s.Surface.Height}
	var canvas countingCanvas

	for range opts.Ticks {
		x := opts.Pointer
		if x < 0 {
			x = s.Ball.X
		}
		loop.PointerMove(x, bounds)

		if s.Ball.OnPaddle && loop.Click() {
			sum.Launches++
		}

		res := loop.Tick(&canvas)
		sum.WallBounces += res.WallBounces
		sum.BricksDestroyed += res.BricksDestroyed
		if res.PaddleBounce {
			sum.PaddleBounces++
		}
		if res.BallLost {
			sum.BallsLost++
			logger.Debug("ball lost", "frame", loop.Frames())
		}
		if res.BricksDestroyed > 0 && sum.ClearedAt == 0 && s.AliveBricks() == 0 {
			sum.ClearedAt = loop.Frames()
			logger.Info("grid cleared", "frame", sum.ClearedAt)
		}
	}

	sum.Frames = loop.Frames()
	sum.BricksLeft = s.AliveBricks()
	sum.DrawCalls = canvas.calls
	return sum
}

type summaryRow struct {
	label string
	value any
}

// print writes the summary as aligned rows.
func (s simSummary) print(w io.Writer) {
	rows := []summaryRow{
		{"Surface", fmt.Sprintf("%gx%g", s.Surface.Width, s.Surface.Height)},
		{"Frames", s.Frames},
		{"Launches", s.Launches},
		{"Balls lost", s.BallsLost},
		{"Wall bounces", s.WallBounces},
		{"Paddle bounces", s.PaddleBounces},
		{"Bricks destroyed", s.BricksDestroyed},
		{"Bricks left", s.BricksLeft},
		{"Draw calls", s.DrawCalls},
	}
	if s.ClearedAt > 0 {
		rows = append(rows, summaryRow{"Cleared at frame", s.ClearedAt})
	}

	fmt.Fprintln(w, "Simulation summary")
	fmt.Fprintln(w)
	for _, r := range rows {
		fmt.Fprintf(w, "  %-16s  %v\n", r.label, r.value)
	}
}

func runSimCmd(cmd *cobra.Command, args []string) {
	if flagTicks < 0 {
		fmt.Fprintln(os.Stderr, "Error: --ticks must not be negative")
		os.Exit(1)
	}
	cfg := loadConfig()

	logger, closeLog, err := newLogger(flagLog, os.Stderr, "sim")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	sum := simulate(cfg, simOptions{
		Ticks:   flagTicks,
		Width:   flagWidth,
		Height:  flagHeight,
		Pointer: flagPointer,
	}, logger)
	sum.print(os.Stdout)
}
