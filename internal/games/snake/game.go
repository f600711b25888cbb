// Package snake implements the classic single-player snake: a deterministic,
// time-stepped state machine driven by key presses and elapsed-time deltas.
package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// timeEpsilon absorbs float drift when deltas are summed, so ten updates of
// 0.1s reach a 1.0s threshold.
const timeEpsilon = 1e-9

// Game implements the snake game.
type Game struct {
	settings Settings
	rng      *rand.Rand

	snake *Snake

	// Food state; food is only meaningful while foodExists is true
	foodExists bool
	food       core.Point

	gameOver    bool
	waitingTime float64 // Seconds since the last move, or since death while game over

	frames   uint64 // Update calls
	restarts int
}

// New creates a game on a width x height arena (border included) with the
// classic settings, adjusted by opts.
func New(width, height int, opts ...Option) *Game {
	g := &Game{settings: DefaultSettings(width, height)}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(g.settings.Seed))
	}
	g.reset()
	return g
}

// NewFromSettings creates a game from fully specified settings.
func NewFromSettings(s Settings) *Game {
	g := &Game{
		settings: s,
		rng:      rand.New(rand.NewSource(s.Seed)),
	}
	g.reset()
	return g
}

// reset puts the snake, food and flags back to their construction-time values.
func (g *Game) reset() {
	g.snake = NewSnake(g.settings.Start.X, g.settings.Start.Y)
	g.waitingTime = 0
	g.foodExists = true
	g.food = g.settings.InitialFood
	g.gameOver = false
}

// Restart starts a fresh round, exactly as if the game had just been created.
func (g *Game) Restart() {
	g.reset()
	g.restarts++
}

// KeyPressed handles a discrete key press. Directional keys turn the snake and
// step it at once; any other key steps it in its current heading. Reversing
// straight into the body is refused. Ignored while the game is over.
func (g *Game) KeyPressed(key core.Key) {
	if g.gameOver {
		return
	}

	heading := g.snake.HeadDirection()
	dir, ok := directionForKey(key)
	if !ok {
		dir = heading
	}

	// Can't turn back into the body
	if dir == heading.Opposite() {
		return
	}

	g.updateSnake(dir)
}

// Update advances the game clock by dt seconds.
func (g *Game) Update(dt float64) {
	g.frames++
	g.waitingTime += dt

	if g.gameOver {
		if g.elapsed(g.settings.RestartTime) {
			g.Restart()
		}
		return
	}

	if !g.foodExists {
		// ErrArenaFull leaves the arena without food; nothing else to do.
		_ = g.addFood()
	}

	if g.elapsed(g.settings.MovingPeriod) {
		g.updateSnake(g.snake.HeadDirection())
	}
}

func (g *Game) elapsed(threshold float64) bool {
	return g.waitingTime+timeEpsilon >= threshold
}

// checkEating consumes the food if the head is on it and schedules growth.
func (g *Game) checkEating() {
	headX, headY := g.snake.HeadPosition()
	if g.foodExists && g.food.X == headX && g.food.Y == headY {
		g.foodExists = false
		g.snake.AddTail()
	}
}

// checkIfSnakeAlive reports whether one step toward dir is survivable: the
// next cell must be free of the body and strictly inside the border.
func (g *Game) checkIfSnakeAlive(dir Direction) bool {
	nextX, nextY := g.snake.NextHead(dir)

	if g.snake.OverlapTail(nextX, nextY) {
		return false
	}

	return g.interior().Contains(nextX, nextY)
}

// updateSnake performs one step toward dir, or ends the game if that step is
// fatal. The move timer restarts either way.
func (g *Game) updateSnake(dir Direction) {
	if g.checkIfSnakeAlive(dir) {
		g.snake.MoveForward(dir)
		g.checkEating()
	} else {
		g.gameOver = true
	}

	g.waitingTime = 0
}

// interior is the playable area inside the one-cell border.
func (g *Game) interior() core.Rect {
	return core.NewRect(0, 0, g.settings.Width, g.settings.Height).Inset(1)
}

// Draw renders the snake, the food, the four walls and, when the game is
// over, a translucent overlay across the whole arena.
func (g *Game) Draw(dst core.Canvas) {
	p := g.settings.Palette
	w, h := g.settings.Width, g.settings.Height

	g.snake.Draw(dst, p.Snake)

	if g.foodExists {
		dst.FillBlock(p.Food, g.food.X, g.food.Y)
	}

	for _, wall := range Walls(w, h) {
		dst.FillRect(p.Border, wall)
	}

	if g.gameOver {
		dst.FillRect(p.GameOver, core.NewRect(0, 0, w, h))
	}
}

// Walls returns the top, bottom, left and right border rectangles of a
// width x height arena.
func Walls(width, height int) [4]core.Rect {
	return [4]core.Rect{
		core.NewRect(0, 0, width, 1),
		core.NewRect(0, height-1, width, 1),
		core.NewRect(0, 0, 1, height),
		core.NewRect(width-1, 0, 1, height),
	}
}

// Width returns the arena width in cells.
func (g *Game) Width() int {
	return g.settings.Width
}

// Height returns the arena height in cells.
func (g *Game) Height() int {
	return g.settings.Height
}

// GameOver reports whether the snake is dead and waiting for the restart.
func (g *Game) GameOver() bool {
	return g.gameOver
}

// Food returns the food position and whether food is on the board.
func (g *Game) Food() (core.Point, bool) {
	return g.food, g.foodExists
}

// WaitingTime returns the seconds accumulated toward the next forced move,
// or toward the restart while the game is over.
func (g *Game) WaitingTime() float64 {
	return g.waitingTime
}

// Snake returns the snake. Callers must not move it.
func (g *Game) Snake() *Snake {
	return g.snake
}

// Settings returns the settings the game was built with.
func (g *Game) Settings() Settings {
	return g.settings
}

// Restarts returns how many times the game has restarted after a game over.
func (g *Game) Restarts() int {
	return g.restarts
}
