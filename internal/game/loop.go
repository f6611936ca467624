package game

import "github.com/vovakirdan/brickbreak/internal/config"

// Phase is the loop driver's state.
type Phase int

const (
	PhaseIdle    Phase = iota // Start overlay shown, nothing simulated
	PhaseRunning              // Started; there is no way back to idle
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	default:
		return "unknown"
	}
}

// Loop drives one session. It owns the State and forwards input to it only
// once started. Scheduling the next tick is the host's job.
type Loop struct {
	cfg    config.Config
	phase  Phase
	state  *State
	frames uint64
}

// NewLoop creates an idle loop.
func NewLoop(cfg config.Config) *Loop {
	return &Loop{cfg: cfg}
}

// Phase returns the current phase.
func (l *Loop) Phase() Phase {
	return l.phase
}

// Running reports whether Start has happened.
func (l *Loop) Running() bool {
	return l.phase == PhaseRunning
}

// State returns the session state, or nil while idle.
func (l *Loop) State() *State {
	return l.state
}

// Frames returns the number of ticks run since Start.
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Start initializes every entity for a viewport of viewW x viewH and moves
// to Running. It only has an effect the first time; later calls return
// false.
func (l *Loop) Start(viewW, viewH float64) bool {
	if l.phase == PhaseRunning {
		return false
	}
	l.state = NewState(l.cfg)
	l.state.Resize(viewW, viewH)
	l.phase = PhaseRunning
	return true
}

// Tick renders the current state, then advances it. Before Start it does
// nothing.
func (l *Loop) Tick(c Canvas) StepResult {
	if l.phase != PhaseRunning {
		return StepResult{}
	}
	Render(l.state, c)
	res := l.state.Update()
	l.frames++
	return res
}

// PointerMove forwards pointer motion while running.
func (l *Loop) PointerMove(clientX float64, bounds Bounds) {
	if l.phase == PhaseRunning {
		l.state.PointerMove(clientX, bounds)
	}
}

// Click launches the ball while running. It reports whether the ball left
// the paddle.
func (l *Loop) Click() bool {
	if l.phase != PhaseRunning {
		return false
	}
	return l.state.Launch()
}

// Resize forwards a viewport change while running. While idle the next
// Start receives the current viewport anyway.
func (l *Loop) Resize(viewW, viewH float64) {
	if l.phase == PhaseRunning {
		l.state.Resize(viewW, viewH)
	}
}
