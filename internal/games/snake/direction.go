package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Delta returns the one-cell step for the direction. Grid y grows downward.
func (d Direction) Delta() core.Point {
	switch d {
	case DirUp:
		return core.Pt(0, -1)
	case DirDown:
		return core.Pt(0, 1)
	case DirLeft:
		return core.Pt(-1, 0)
	default:
		return core.Pt(1, 0)
	}
}

// directionForKey maps a directional key to its direction.
// ok is false for KeyOther.
func directionForKey(k core.Key) (d Direction, ok bool) {
	switch k {
	case core.KeyUp:
		return DirUp, true
	case core.KeyDown:
		return DirDown, true
	case core.KeyLeft:
		return DirLeft, true
	case core.KeyRight:
		return DirRight, true
	}
	return 0, false
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
	default:
		return "unknown"
	}
}
