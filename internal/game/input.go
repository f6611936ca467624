package game

import "github.com/vovakirdan/brickbreak/internal/core"

// Bounds is the surface's on-screen rectangle in viewport coordinates
// (terminal cells, window pixels). It maps pointer positions into surface
// units.
type Bounds struct {
	Left, Top     float64
	Width, Height float64
}

// ToSurfaceX converts a viewport x coordinate into surface units.
// Zero-width bounds fall back to a scale of one.
func (b Bounds) ToSurfaceX(clientX, surfaceWidth float64) float64 {
	x := clientX - b.Left
	if b.Width > 0 {
		x *= surfaceWidth / b.Width
	}
	return x
}

// PointerMove centers the paddle under the pointer, clamped to the surface.
// A ball resting on the paddle follows it immediately. Non-finite
// coordinates are ignored.
func (s *State) PointerMove(clientX float64, bounds Bounds) {
	x := bounds.ToSurfaceX(clientX, s.Surface.Width)
	if !core.Finite(x) {
		return
	}

	p := &s.Paddle
	p.X = core.ClampF(x-p.Width/2, 0, s.Surface.Width-p.Width)

	if s.Ball.OnPaddle {
		s.seatBall()
	}
}

// Launch sends a resting ball up and to the right at 45 degrees.
// It reports whether the ball was launched; while the ball is already in
// flight it does nothing.
func (s *State) Launch() bool {
	b := &s.Ball
	if !b.OnPaddle {
		return false
	}
	b.DX = b.Speed
	b.DY = -b.Speed
	b.OnPaddle = false
	return true
}
