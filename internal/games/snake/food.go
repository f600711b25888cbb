package snake

import (
	"errors"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrArenaFull is returned when the snake covers every interior cell and
// food has nowhere to go.
var ErrArenaFull = errors.New("snake: no free cell for food")

// addFood places food on a uniformly random interior cell the snake does not
// cover.
func (g *Game) addFood() error {
	free := g.freeCells()
	if len(free) == 0 {
		return ErrArenaFull
	}

	g.food = free[g.rng.Intn(len(free))]
	g.foodExists = true
	return nil
}

// freeCells collects every interior cell not covered by the snake, row by row.
func (g *Game) freeCells() []core.Point {
	inner := g.interior()
	if inner.W <= 0 || inner.H <= 0 {
		return nil
	}
	cells := make([]core.Point, 0, inner.W*inner.H)
	for y := inner.Y; y < inner.Bottom(); y++ {
		for x := inner.X; x < inner.Right(); x++ {
			if !g.snake.OverlapTail(x, y) {
				cells = append(cells, core.Pt(x, y))
			}
		}
	}
	return cells
}
