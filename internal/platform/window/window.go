// Package window runs the game in a desktop window with Ebitengine.
//
// Ebitengine calls Layout, Update and Draw from one goroutine. Update polls
// the cursor and buttons, then runs one loop tick that renders into an
// offscreen frame; Draw only copies that frame to the screen.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/brickbreak/internal/config"
	"github.com/vovakirdan/brickbreak/internal/game"
)

// input is one frame of polled input.
type input struct {
	cursorX float64 // In layout coordinates
	click   bool    // Left button just pressed
	start   bool    // Enter just pressed
	quit    bool    // Escape just pressed
}

// Game implements ebiten.Game around a loop driver.
type Game struct {
	cfg    config.Config
	loop   *game.Loop
	logger *log.Logger

	fg, bg color.Color
	frame  *ebiten.Image // Last rendered frame, surface sized

	outW, outH int  // Last outside size passed to Layout
	cleared    bool // Grid-cleared event already logged for the current grid
}

// NewGame creates an idle game. A nil logger discards output.
func NewGame(cfg config.Config, logger *log.Logger) (*Game, error) {
	fg, err := cfg.Render.ObjectColor()
	if err != nil {
		return nil, fmt.Errorf("window: object color: %w", err)
	}
	bg, err := cfg.Render.BackgroundColor()
	if err != nil {
		return nil, fmt.Errorf("window: background color: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Game{
		cfg:    cfg,
		loop:   game.NewLoop(cfg),
		logger: logger,
		fg:     fg,
		bg:     bg,
	}, nil
}

// Loop returns the loop driver the game runs.
func (g *Game) Loop() *game.Loop {
	return g.loop
}

// Update polls input and runs one tick.
func (g *Game) Update() error {
	x, _ := ebiten.CursorPosition()
	in := input{
		cursorX: float64(x),
		click:   inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		start:   inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		quit:    inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}

	var c game.Canvas
	if g.loop.Running() {
		g.ensureFrame()
		c = newVectorCanvas(g.frame, g.fg, g.bg)
	}
	return g.step(in, c)
}

// step applies one frame of input, then ticks the loop onto c.
func (g *Game) step(in input, c game.Canvas) error {
	if in.quit {
		return ebiten.Termination
	}

	if !g.loop.Running() {
		if in.click || in.start {
			g.start()
		}
		return nil
	}

	s := g.loop.State()
	g.loop.PointerMove(in.cursorX, game.Bounds{Width: s.Surface.Width, Height: s.Surface.Height})
	if in.click && g.loop.Click() {
		g.logger.Debug("ball launched", "x", s.Ball.X, "y", s.Ball.Y, "speed", s.Ball.Velocity())
	}

	if c == nil {
		return nil
	}
	res := g.loop.Tick(c)
	if res.BallLost {
		g.logger.Info("ball lost", "frame", g.loop.Frames())
	}
	if res.BricksDestroyed > 0 {
		alive := s.AliveBricks()
		g.logger.Debug("bricks destroyed", "count", res.BricksDestroyed, "alive", alive)
		if alive == 0 && !g.cleared {
			g.cleared = true
			g.logger.Info("grid cleared", "frame", g.loop.Frames())
		}
	}
	return nil
}

func (g *Game) start() {
	if !g.loop.Start(float64(g.outW), float64(g.outH)) {
		return
	}
	s := g.loop.State()
	g.logger.Info("session started",
		"phase", g.loop.Phase(),
		"surface", fmt.Sprintf("%gx%g", s.Surface.Width, s.Surface.Height),
		"window", fmt.Sprintf("%dx%d", g.outW, g.outH),
		"bricks", s.AliveBricks(),
	)
}

// ensureFrame (re)allocates the offscreen frame at the surface size.
func (g *Game) ensureFrame() {
	s := g.loop.State().Surface
	w, h := int(s.Width), int(s.Height)
	if g.frame != nil && g.frame.Bounds().Dx() == w && g.frame.Bounds().Dy() == h {
		return
	}
	if g.frame != nil {
		g.frame.Deallocate()
	}
	g.frame = ebiten.NewImage(w, h)
}

// Draw copies the last frame to the screen, or shows the start overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	if !g.loop.Running() {
		screen.Fill(g.fg)
		ebitenutil.DebugPrintAt(screen, "BRICKBREAK\n\nClick or press Enter to start\nEsc quits", 16, 16)
		return
	}
	screen.Fill(g.bg)
	if g.frame != nil {
		screen.DrawImage(g.frame, nil)
	}
}

// Layout resizes the game when the window size changes. Once running, the
// logical screen is the surface itself and Ebitengine scales it to the
// window, so cursor positions arrive in surface units.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.outW || outsideHeight != g.outH {
		g.outW, g.outH = outsideWidth, outsideHeight
		if g.loop.Running() {
			g.loop.Resize(float64(outsideWidth), float64(outsideHeight))
			g.cleared = false
			s := g.loop.State().Surface
			g.logger.Debug("window resized", "phase", g.loop.Phase(),
				"window", fmt.Sprintf("%dx%d", outsideWidth, outsideHeight),
				"surface", fmt.Sprintf("%gx%g", s.Width, s.Height))
		}
	}

	if !g.loop.Running() {
		return max(outsideWidth, 1), max(outsideHeight, 1)
	}
	s := g.loop.State().Surface
	return int(s.Width), int(s.Height)
}

// Run opens the window and blocks until it is closed. scale multiplies the
// configured window size.
func Run(cfg config.Config, scale float64, logger *log.Logger) error {
	g, err := NewGame(cfg, logger)
	if err != nil {
		return err
	}
	if scale <= 0 {
		scale = 1
	}

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(int(float64(cfg.Window.Width)*scale), int(float64(cfg.Window.Height)*scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Window.TPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
