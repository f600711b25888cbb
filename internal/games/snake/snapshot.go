package snake

import (
	"fmt"
	"strings"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StateGameOver GameStateType = "game_over"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Frames      uint64
	Restarts    int
	State       GameStateType
	SnakeLen    int
	HeadX       int
	HeadY       int
	Dir         Direction
	FoodExists  bool
	FoodX       int
	FoodY       int
	WaitingTime float64
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	if g.gameOver {
		state = StateGameOver
	}

	headX, headY := g.snake.HeadPosition()

	return Snapshot{
		Frames:      g.frames,
		Restarts:    g.restarts,
		State:       state,
		SnakeLen:    g.snake.Len(),
		HeadX:       headX,
		HeadY:       headY,
		Dir:         g.snake.HeadDirection(),
		FoodExists:  g.foodExists,
		FoodX:       g.food.X,
		FoodY:       g.food.Y,
		WaitingTime: g.waitingTime,
	}
}

// String returns a multi-line description of the snapshot.
func (s Snapshot) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Frames: %d, Restarts: %d, State: %s\n", s.Frames, s.Restarts, s.State)
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s, Head: (%d, %d)\n", s.SnakeLen, s.Dir, s.HeadX, s.HeadY)
	if s.FoodExists {
		fmt.Fprintf(&b, "Food: (%d, %d)\n", s.FoodX, s.FoodY)
	} else {
		b.WriteString("Food: none\n")
	}
	fmt.Fprintf(&b, "Waiting: %.3fs", s.WaitingTime)
	return b.String()
}
