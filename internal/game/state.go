// Package game implements the brick-breaking simulation: surface and grid
// layout, pointer input, the physics step, rendering onto a Canvas, and the
// loop driver that ties them together.
//
// Nothing here is safe for concurrent use. Every method must be called from
// the host's single event goroutine (the Bubble Tea update loop or
// Ebitengine's Update), which already serialises ticks, input and resize
// events so each runs to completion before the next begins.
package game

import (
	"math"

	"github.com/vovakirdan/brickbreak/internal/config"
	"github.com/vovakirdan/brickbreak/internal/core"
)

// Surface is the logical drawing area in surface units.
type Surface struct {
	Width, Height float64
}

// Rect returns the surface as a rectangle anchored at the origin.
func (s Surface) Rect() core.Rect {
	return core.NewRect(0, 0, s.Width, s.Height)
}

// Paddle represents the player's paddle.
type Paddle struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
}

// Rect returns the paddle's bounding box.
func (p *Paddle) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// CenterX returns the horizontal center of the paddle.
func (p *Paddle) CenterX() float64 {
	return p.X + p.Width/2
}

// Ball represents the ball.
type Ball struct {
	X, Y     float64 // Center
	Radius   float64
	DX, DY   float64 // Velocity per tick
	Speed    float64 // Per-axis launch speed
	OnPaddle bool    // Resting on the paddle rather than in flight
}

// Move advances the ball by its velocity.
func (b *Ball) Move() {
	b.X += b.DX
	b.Y += b.DY
}

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() {
	b.DX = -b.DX
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.DY = -b.DY
}

// Velocity returns the magnitude of the ball's velocity.
func (b *Ball) Velocity() float64 {
	return math.Hypot(b.DX, b.DY)
}

// BrickStatus is the two-state lifecycle of a brick.
type BrickStatus int

const (
	BrickAlive BrickStatus = iota
	BrickDestroyed
)

// String returns a human-readable name for the status.
func (s BrickStatus) String() string {
	switch s {
	case BrickAlive:
		return "alive"
	case BrickDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// Brick is one cell of the brick grid.
type Brick struct {
	X, Y          float64
	Width, Height float64
	Status        BrickStatus
}

// Alive reports whether the brick is still in play.
func (b *Brick) Alive() bool {
	return b.Status == BrickAlive
}

// Rect returns the brick's bounding box.
func (b *Brick) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.Width, b.Height)
}

// State holds everything one session mutates.
type State struct {
	Surface Surface
	Paddle  Paddle
	Ball    Ball
	Bricks  [][]Brick // [column][row]

	cfg config.Config
}

// NewState creates a state with an unsized surface and the ball resting on
// the paddle. Call Resize before using it.
func NewState(cfg config.Config) *State {
	return &State{
		Paddle: Paddle{Height: cfg.Paddle.Height},
		Ball: Ball{
			Radius:   cfg.Ball.Radius,
			Speed:    cfg.Ball.Speed,
			OnPaddle: true,
		},
		cfg: cfg,
	}
}

// Config returns the configuration the state was built from.
func (s *State) Config() config.Config {
	return s.cfg
}

// AliveBricks returns the number of bricks still in play.
func (s *State) AliveBricks() int {
	count := 0
	for c := range s.Bricks {
		for r := range s.Bricks[c] {
			if s.Bricks[c][r].Alive() {
				count++
			}
		}
	}
	return count
}

// seatBall parks the ball on top of the paddle, centered.
func (s *State) seatBall() {
	s.Ball.X = s.Paddle.CenterX()
	s.Ball.Y = s.Paddle.Y - s.Ball.Radius
}
