package game

// StepResult reports what happened during one Update.
type StepResult struct {
	Moved           bool // Ball was in flight and advanced
	WallBounces     int  // Side and top reflections
	PaddleBounce    bool // Ball reflected off the paddle
	BallLost        bool // Ball passed the bottom edge and was re-seated
	BricksDestroyed int  // Bricks destroyed this step
}

// Update advances the simulation by one tick.
//
// The ball moves first; wall tests then look one step ahead (position plus
// velocity), so a reflection decided on this tick shows on the next move.
// The paddle and every brick are tested afterwards against the moved
// position, each hit negating DY independently. There is no repeat guard:
// a ball that stays inside the paddle zone flips DY every tick.
func (s *State) Update() StepResult {
	var res StepResult
	b := &s.Ball
	if b.OnPaddle {
		return res
	}

	b.Move()
	res.Moved = true

	w, h := s.Surface.Width, s.Surface.Height

	if nx := b.X + b.DX; nx > w-b.Radius || nx < b.Radius {
		b.BounceX()
		res.WallBounces++
	}

	if ny := b.Y + b.DY; ny < b.Radius {
		b.BounceY()
		res.WallBounces++
	} else if ny > h-b.Radius {
		s.loseBall()
		res.BallLost = true
	}

	if s.hitsPaddle() {
		b.BounceY()
		res.PaddleBounce = true
	}

	res.BricksDestroyed = s.collideBricks()
	return res
}

// loseBall returns the ball to the paddle. There are no lives to lose.
func (s *State) loseBall() {
	s.Ball.OnPaddle = true
	s.Ball.DX = 0
	s.Ball.DY = 0
	s.seatBall()
}

// hitsPaddle reports whether the ball's bottom edge is past the paddle's
// top edge while its center is strictly within the paddle's span.
func (s *State) hitsPaddle() bool {
	b, p := &s.Ball, &s.Paddle
	return b.Y+b.Radius > p.Y && b.X > p.X && b.X < p.X+p.Width
}

// collideBricks destroys every alive brick containing the ball center and
// negates DY once per brick. It returns the number destroyed.
func (s *State) collideBricks() int {
	destroyed := 0
	for c := range s.Bricks {
		for r := range s.Bricks[c] {
			brick := &s.Bricks[c][r]
			if !brick.Alive() {
				continue
			}
			if brick.Rect().ContainsOpen(s.Ball.X, s.Ball.Y) {
				s.Ball.BounceY()
				brick.Status = BrickDestroyed
				destroyed++
			}
		}
	}
	return destroyed
}
