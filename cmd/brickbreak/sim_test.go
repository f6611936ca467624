package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/brickbreak/internal/config"
	"github.com/vovakirdan/brickbreak/internal/game"
)

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestSimulateFollowingPaddleNeverLoses(t *testing.T) {
	sum := simulate(config.DefaultConfig(), simOptions{Ticks: 5000, Width: 540, Height: 720, Pointer: -1}, discardLogger())

	assert.Equal(t, game.Surface{Width: 540, Height: 720}, sum.Surface)
	assert.Equal(t, uint64(5000), sum.Frames)
	assert.Equal(t, 1, sum.Launches)
	assert.Zero(t, sum.BallsLost)
	assert.Positive(t, sum.PaddleBounces)
	assert.Positive(t, sum.WallBounces)
	assert.Positive(t, sum.BricksDestroyed)
	assert.Equal(t, 40, sum.BricksDestroyed+sum.BricksLeft)
	// clear + bricks + paddle + ball, every frame
	assert.GreaterOrEqual(t, sum.DrawCalls, 5000*3)
}

func TestSimulatePinnedPointerLosesBalls(t *testing.T) {
	// Paddle parked at the far left; the first launch goes right.
	sum := simulate(config.DefaultConfig(), simOptions{Ticks: 2000, Width: 540, Height: 720, Pointer: 0}, discardLogger())

	assert.Positive(t, sum.BallsLost)
	assert.Equal(t, sum.BallsLost+1, sum.Launches, "every lost ball is relaunched")
}

func TestSimulateZeroTicks(t *testing.T) {
	sum := simulate(config.DefaultConfig(), simOptions{Ticks: 0, Width: 800, Height: 600, Pointer: -1}, discardLogger())

	assert.Equal(t, game.Surface{Width: 450, Height: 600}, sum.Surface)
	assert.Zero(t, sum.Frames)
	assert.Equal(t, 40, sum.BricksLeft)
	assert.Zero(t, sum.DrawCalls)
}

func TestSummaryPrint(t *testing.T) {
	var buf bytes.Buffer
	simSummary{
		Surface:         game.Surface{Width: 540, Height: 720},
		Frames:          10,
		BricksDestroyed: 40,
		ClearedAt:       9,
	}.print(&buf)

	out := buf.String()
	require.Contains(t, out, "Simulation summary")
	assert.Contains(t, out, "Surface           540x720")
	assert.Contains(t, out, "Bricks destroyed  40")
	assert.Contains(t, out, "Cleared at frame  9")
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/player")

	assert.Equal(t, "/home/player/logs/bb.log", expandHome("~/logs/bb.log"))
	assert.Equal(t, "/tmp/bb.log", expandHome("/tmp/bb.log"))
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := t.TempDir() + "/nested/bb.log"

	logger, closeLog, err := newLogger(path, io.Discard, "test")
	require.NoError(t, err)
	logger.Debug("ball lost", "frame", 3)
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ball lost")
	assert.Contains(t, string(data), "frame=3")
}

func TestReportClosesLogBeforePrinting(t *testing.T) {
	var out bytes.Buffer
	closed := false

	report(&out, func() {
		closed = true
		assert.Empty(t, out.String())
	}, errors.New("terminal gone"))

	assert.True(t, closed)
	assert.Equal(t, "Error: terminal gone\n", out.String())
}
