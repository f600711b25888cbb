package core

// Key is a discrete key press as seen by the game, abstracted from physical keys.
// The platform maps terminal keys onto these; anything that is not a direction
// arrives as KeyOther.
type Key int

const (
	KeyOther Key = iota // Catch-all for any non-directional key
	KeyUp               // W, K, Up arrow
	KeyDown             // S, J, Down arrow
	KeyLeft             // A, H, Left arrow
	KeyRight            // D, L, Right arrow
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	default:
		return "Other"
	}
}

// ParseKey converts a key name ("up", "down", "left", "right") to a Key.
// Any other name yields KeyOther.
func ParseKey(name string) Key {
	switch name {
	case "up", "Up", "UP":
		return KeyUp
	case "down", "Down", "DOWN":
		return KeyDown
	case "left", "Left", "LEFT":
		return KeyLeft
	case "right", "Right", "RIGHT":
		return KeyRight
	default:
		return KeyOther
	}
}
