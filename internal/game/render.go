package game

// Canvas is a drawing surface addressed in surface units. Implementations
// pick the single color every game object is drawn with.
type Canvas interface {
	// ClearRect erases a region to the background.
	ClearRect(x, y, w, h float64)
	// FillRect fills an axis-aligned rectangle.
	FillRect(x, y, w, h float64)
	// FillCircle fills a circle centered on (cx, cy).
	FillCircle(cx, cy, r float64)
}

// Render draws the current state: clear the surface, then every alive
// brick, the paddle and the ball. It does not modify the state.
func Render(s *State, c Canvas) {
	c.ClearRect(0, 0, s.Surface.Width, s.Surface.Height)

	for col := range s.Bricks {
		for row := range s.Bricks[col] {
			b := &s.Bricks[col][row]
			if b.Alive() {
				c.FillRect(b.X, b.Y, b.Width, b.Height)
			}
		}
	}

	p := &s.Paddle
	c.FillRect(p.X, p.Y, p.Width, p.Height)

	c.FillCircle(s.Ball.X, s.Ball.Y, s.Ball.Radius)
}
