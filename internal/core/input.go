package core

// Action represents a semantic input intent, abstracted from physical keys
// and mouse buttons.
type Action int

const (
	ActionNone   Action = iota
	ActionStart         // Enter/Space or a click on the start overlay
	ActionLaunch        // Left click or Space while playing
	ActionHelp          // ? - toggle full help
	ActionQuit          // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionLaunch:
		return "Launch"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
