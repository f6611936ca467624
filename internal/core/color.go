package core

// Color is a semantic color role for a screen cell. The platform decides
// what each role looks like (see the tui palette).
type Color uint8

const (
	ColorDefault Color = iota
	ColorObject        // Bricks, paddle and ball
	ColorFrame         // Border around the play surface
	ColorText          // Overlay and status text
	ColorDim           // Hints and help
)
