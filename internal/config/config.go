// Package config provides YAML-based configuration loading for the game
// and its frontends.
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Config contains all tunables for the game and its frontends.
type Config struct {
	Surface  SurfaceConfig  `yaml:"surface"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Bricks   BricksConfig   `yaml:"bricks"`
	Ball     BallConfig     `yaml:"ball"`
	Render   RenderConfig   `yaml:"render"`
	Terminal TerminalConfig `yaml:"terminal"`
	Window   WindowConfig   `yaml:"window"`
}

// SurfaceConfig bounds the logical drawing surface.
type SurfaceConfig struct {
	MinWidth     float64 `yaml:"min_width"`
	MaxWidth     float64 `yaml:"max_width"`
	AspectWidth  float64 `yaml:"aspect_width"`  // 3 in a 3:4 portrait surface
	AspectHeight float64 `yaml:"aspect_height"` // 4 in a 3:4 portrait surface
}

// PaddleConfig defines paddle geometry relative to the surface.
type PaddleConfig struct {
	WidthRatio   float64 `yaml:"width_ratio"`   // Fraction of surface width
	Height       float64 `yaml:"height"`        // Fixed height
	BottomMargin float64 `yaml:"bottom_margin"` // Gap between paddle and bottom edge
}

// BricksConfig defines the brick grid.
type BricksConfig struct {
	Rows    int     `yaml:"rows"`
	Columns int     `yaml:"columns"`
	Height  float64 `yaml:"height"`
	Padding float64 `yaml:"padding"` // Gap between bricks and around the grid
}

// BallConfig defines the ball.
type BallConfig struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"` // Per-axis speed per tick
}

// RenderConfig defines colors as hex strings.
type RenderConfig struct {
	Color      string `yaml:"color"`      // Every game object
	Background string `yaml:"background"` // Window frontend clear color
}

// TerminalConfig defines the terminal frontend.
type TerminalConfig struct {
	TickRate   int     `yaml:"tick_rate"`
	CellWidth  float64 `yaml:"cell_width"`  // Surface units per character column
	CellHeight float64 `yaml:"cell_height"` // Surface units per character row
}

// WindowConfig defines the desktop window frontend.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	TPS    int    `yaml:"tps"`
}

// ObjectColor parses the object color.
func (r RenderConfig) ObjectColor() (colorful.Color, error) {
	return colorful.Hex(r.Color)
}

// BackgroundColor parses the background color.
func (r RenderConfig) BackgroundColor() (colorful.Color, error) {
	return colorful.Hex(r.Background)
}

// MaxGridSize bounds bricks.rows and bricks.columns.
const MaxGridSize = 64

// finite reports whether every value is a real number.
func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Validate checks that the configuration can produce sane geometry.
// It returns the first problem found.
func (c Config) Validate() error {
	s := c.Surface
	switch {
	case !finite(s.MinWidth, s.MaxWidth, s.AspectWidth, s.AspectHeight):
		return errors.New("config: surface values must be finite")
	case s.MinWidth <= 0:
		return errors.New("config: surface.min_width must be positive")
	case s.MaxWidth < s.MinWidth:
		return fmt.Errorf("config: surface.max_width %v is below min_width %v", s.MaxWidth, s.MinWidth)
	case s.AspectWidth <= 0 || s.AspectHeight <= 0:
		return errors.New("config: surface aspect ratio must be positive")
	}

	p := c.Paddle
	switch {
	case !finite(p.WidthRatio, p.Height, p.BottomMargin):
		return errors.New("config: paddle values must be finite")
	case p.WidthRatio <= 0 || p.WidthRatio > 1:
		return fmt.Errorf("config: paddle.width_ratio %v must be in (0, 1]", p.WidthRatio)
	case p.Height <= 0:
		return errors.New("config: paddle.height must be positive")
	case p.BottomMargin < 0:
		return errors.New("config: paddle.bottom_margin must not be negative")
	}

	b := c.Bricks
	switch {
	case b.Rows < 1 || b.Columns < 1:
		return fmt.Errorf("config: brick grid %dx%d must have at least one row and column", b.Columns, b.Rows)
	case b.Rows > MaxGridSize || b.Columns > MaxGridSize:
		return fmt.Errorf("config: brick grid %dx%d exceeds %d rows or columns", b.Columns, b.Rows, MaxGridSize)
	case !finite(b.Height, b.Padding):
		return errors.New("config: bricks values must be finite")
	case b.Height <= 0:
		return errors.New("config: bricks.height must be positive")
	case b.Padding < 0:
		return errors.New("config: bricks.padding must not be negative")
	case s.MinWidth-b.Padding*float64(b.Columns+1) <= 0:
		return fmt.Errorf("config: %d columns with padding %v do not fit surface.min_width %v",
			b.Columns, b.Padding, s.MinWidth)
	}

	switch {
	case !finite(c.Ball.Radius, c.Ball.Speed):
		return errors.New("config: ball values must be finite")
	case c.Ball.Radius <= 0:
		return errors.New("config: ball.radius must be positive")
	case c.Ball.Speed <= 0:
		return errors.New("config: ball.speed must be positive")
	}

	if _, err := c.Render.ObjectColor(); err != nil {
		return fmt.Errorf("config: render.color %q: %w", c.Render.Color, err)
	}
	if _, err := c.Render.BackgroundColor(); err != nil {
		return fmt.Errorf("config: render.background %q: %w", c.Render.Background, err)
	}

	t := c.Terminal
	switch {
	case t.TickRate <= 0:
		return errors.New("config: terminal.tick_rate must be positive")
	case !finite(t.CellWidth, t.CellHeight):
		return errors.New("config: terminal cell size must be finite")
	case t.CellWidth <= 0 || t.CellHeight <= 0:
		return errors.New("config: terminal cell size must be positive")
	}

	w := c.Window
	switch {
	case w.Width <= 0 || w.Height <= 0:
		return fmt.Errorf("config: window size %dx%d must be positive", w.Width, w.Height)
	case w.TPS <= 0:
		return errors.New("config: window.tps must be positive")
	}

	return nil
}
