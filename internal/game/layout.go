package game

import (
	"math"

	"github.com/vovakirdan/brickbreak/internal/config"
	"github.com/vovakirdan/brickbreak/internal/core"
)

// SurfaceFor computes the surface that fits a viewport of viewW x viewH.
//
// The width is clamped to [MinWidth, MaxWidth] and the height follows the
// aspect ratio. A viewport too short for that height shrinks the surface to
// fit, but never below MinWidth: past that point the surface overflows the
// viewport instead of producing degenerate bricks. Both sides are truncated
// to whole units.
func SurfaceFor(cfg config.SurfaceConfig, viewW, viewH float64) Surface {
	if !core.Finite(viewW) {
		viewW = cfg.MaxWidth
	}

	w := core.ClampF(viewW, cfg.MinWidth, cfg.MaxWidth)
	h := w * cfg.AspectHeight / cfg.AspectWidth

	if h > viewH {
		h = viewH
		w = h * cfg.AspectWidth / cfg.AspectHeight
	}
	if w < cfg.MinWidth || !core.Finite(w) {
		w = cfg.MinWidth
		h = w * cfg.AspectHeight / cfg.AspectWidth
	}

	return Surface{Width: math.Floor(w), Height: math.Floor(h)}
}

// BrickWidth returns the width shared by every brick on a surface of the
// given width.
func BrickWidth(surfaceWidth float64, cfg config.BricksConfig) float64 {
	cols := float64(cfg.Columns)
	return (surfaceWidth - cfg.Padding*(cols+1)) / cols
}

// GridHeight returns the height of the brick area including the padding
// below the last row.
func GridHeight(cfg config.BricksConfig) float64 {
	return float64(cfg.Rows) * (cfg.Height + cfg.Padding)
}

// Resize recomputes the surface for a new viewport, then the paddle and a
// fresh brick grid. Brick damage is discarded. A resting ball is re-seated
// on the paddle; a ball in flight keeps its velocity but is pulled back
// inside the new surface.
func (s *State) Resize(viewW, viewH float64) {
	s.Surface = SurfaceFor(s.cfg.Surface, viewW, viewH)
	s.layoutPaddle()
	s.buildBricks()

	if s.Ball.OnPaddle {
		s.Ball.Radius = s.cfg.Ball.Radius
		s.seatBall()
		return
	}
	s.containBall()
}

// layoutPaddle sizes the paddle from the surface and centers it.
// Position is recomputed unconditionally so it can never end up outside.
func (s *State) layoutPaddle() {
	p := &s.Paddle
	p.Width = s.Surface.Width * s.cfg.Paddle.WidthRatio
	p.Height = s.cfg.Paddle.Height
	p.X = (s.Surface.Width - p.Width) / 2
	p.Y = s.Surface.Height - p.Height - s.cfg.Paddle.BottomMargin
}

// buildBricks replaces the grid with a fully alive one.
func (s *State) buildBricks() {
	bc := s.cfg.Bricks
	width := BrickWidth(s.Surface.Width, bc)

	s.Bricks = make([][]Brick, bc.Columns)
	for c := range bc.Columns {
		s.Bricks[c] = make([]Brick, bc.Rows)
		for r := range bc.Rows {
			s.Bricks[c][r] = Brick{
				X:      bc.Padding + float64(c)*(width+bc.Padding),
				Y:      bc.Padding + float64(r)*(bc.Height+bc.Padding),
				Width:  width,
				Height: bc.Height,
				Status: BrickAlive,
			}
		}
	}
}

// containBall clamps a ball in flight into the surface.
func (s *State) containBall() {
	b := &s.Ball
	b.X = core.ClampF(b.X, b.Radius, s.Surface.Width-b.Radius)
	b.Y = core.ClampF(b.Y, b.Radius, s.Surface.Height-b.Radius)
}
