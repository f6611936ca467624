package window

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/brickbreak/internal/config"
	"github.com/vovakirdan/brickbreak/internal/game"
)

// countingCanvas counts draw calls without touching the GPU.
type countingCanvas struct {
	clears, rects, circles int
}

func (c *countingCanvas) ClearRect(x, y, w, h float64)  { c.clears++ }
func (c *countingCanvas) FillRect(x, y, w, h float64)   { c.rects++ }
func (c *countingCanvas) FillCircle(cx, cy, r float64) { c.circles++ }

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g, err := NewGame(config.DefaultConfig(), nil)
	require.NoError(t, err)
	return g
}

func startedGame(t *testing.T) *Game {
	t.Helper()
	g := newTestGame(t)
	g.Layout(540, 720)
	require.NoError(t, g.step(input{click: true}, nil))
	require.True(t, g.Loop().Running())
	return g
}

func TestNewGameRejectsBadColors(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Render.Color = "not a color"

	_, err := NewGame(cfg, nil)
	assert.ErrorContains(t, err, "window: object color")

	cfg = config.DefaultConfig()
	cfg.Render.Background = "#xyz"
	_, err = NewGame(cfg, nil)
	assert.ErrorContains(t, err, "window: background color")
}

func TestIdleLayoutFollowsWindow(t *testing.T) {
	g := newTestGame(t)

	w, h := g.Layout(800, 600)
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)

	w, h = g.Layout(0, 0)
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)
}

func TestIdleIgnoresPointerUntilStart(t *testing.T) {
	g := newTestGame(t)
	g.Layout(540, 720)

	var c countingCanvas
	require.NoError(t, g.step(input{cursorX: 10}, &c))
	assert.False(t, g.Loop().Running())
	assert.Zero(t, c.clears)

	require.NoError(t, g.step(input{start: true}, &c))
	assert.True(t, g.Loop().Running())
	assert.True(t, g.Loop().State().Ball.OnPaddle, "starting does not launch")
}

func TestRunningLayoutIsSurface(t *testing.T) {
	g := startedGame(t)

	w, h := g.Layout(540, 720)
	assert.Equal(t, 540, w)
	assert.Equal(t, 720, h)

	// A wide window keeps the portrait surface; Ebitengine letterboxes it.
	w, h = g.Layout(1600, 900)
	assert.Equal(t, 675, w)
	assert.Equal(t, 900, h)
}

func TestStepMovesPaddleAndTicks(t *testing.T) {
	g := startedGame(t)
	s := g.Loop().State()

	var c countingCanvas
	require.NoError(t, g.step(input{cursorX: 0}, &c))

	assert.Zero(t, s.Paddle.X)
	assert.Equal(t, 1, c.clears)
	assert.Equal(t, 41, c.rects)
	assert.Equal(t, 1, c.circles)
	assert.Equal(t, uint64(1), g.Loop().Frames())
}

func TestStepClickLaunches(t *testing.T) {
	g := startedGame(t)
	s := g.Loop().State()

	require.NoError(t, g.step(input{cursorX: 270, click: true}, &countingCanvas{}))

	assert.False(t, s.Ball.OnPaddle)
	assert.Equal(t, s.Ball.Speed, s.Ball.DX)
}

func TestResizeWhileRunning(t *testing.T) {
	g := startedGame(t)
	s := g.Loop().State()
	s.Bricks[1][1].Status = game.BrickDestroyed

	g.Layout(360, 480)

	assert.Equal(t, game.Surface{Width: 360, Height: 480}, s.Surface)
	assert.Equal(t, 40, s.AliveBricks())
}

func TestEscapeTerminates(t *testing.T) {
	g := startedGame(t)
	assert.ErrorIs(t, g.step(input{quit: true}, &countingCanvas{}), ebiten.Termination)
}

func TestLogsPhaseAndLaunchSpeed(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	g, err := NewGame(config.DefaultConfig(), logger)
	require.NoError(t, err)
	g.Layout(540, 720)
	require.NoError(t, g.step(input{start: true}, nil))
	require.NoError(t, g.step(input{cursorX: 270, click: true}, &countingCanvas{}))
	g.Layout(360, 480)

	out := buf.String()
	assert.Contains(t, out, "session started")
	assert.Contains(t, out, "phase=running")
	assert.Contains(t, out, "speed=10.6")
	assert.Contains(t, out, "window resized")
}
