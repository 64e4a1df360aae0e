// Package chomp implements the maze-chase simulation: a grid-constrained
// player collects dots in a fixed maze while four ghosts with distinct
// targeting personalities pursue it. The package is pure logic with no
// platform dependencies; an external caller drives it tick by tick.
package chomp

// Direction is a 4-way movement direction plus the resting state.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// cardinalDirections is the canonical enumeration order. Direction
// choices that break ties do so in this order.
var cardinalDirections = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// Delta returns the unit grid offset for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction. DirNone maps to itself, so the
// function is total and its own inverse.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

// IsHorizontal reports whether the direction is LEFT or RIGHT.
func (d Direction) IsHorizontal() bool {
	return d == DirLeft || d == DirRight
}

// IsVertical reports whether the direction is UP or DOWN.
func (d Direction) IsVertical() bool {
	return d == DirUp || d == DirDown
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirNone:
		return "none"
	default:
		return "unknown"
	}
}
