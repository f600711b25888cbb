package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// InitialLength is the number of segments a fresh snake has.
const InitialLength = 3

// Snake is the player-controlled body. It knows how to move and grow but not
// where the walls are; legality of a move is the Game's business.
type Snake struct {
	body        []core.Point // Head at index 0
	direction   Direction
	growPending bool // If true, keep the tail on the next move
}

// NewSnake creates a 3-segment snake with its head at (startX, startY),
// the body trailing to the left and heading right.
func NewSnake(startX, startY int) *Snake {
	body := make([]core.Point, 0, InitialLength)
	for i := range InitialLength {
		body = append(body, core.Pt(startX-i, startY))
	}
	return &Snake{
		body:      body,
		direction: DirRight,
	}
}

// HeadPosition returns the head coordinates.
func (s *Snake) HeadPosition() (x, y int) {
	head := s.body[0]
	return head.X, head.Y
}

// HeadDirection returns the current heading.
func (s *Snake) HeadDirection() Direction {
	return s.direction
}

// Len returns the number of body segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns a copy of the body, head first.
func (s *Snake) Body() []core.Point {
	out := make([]core.Point, len(s.body))
	copy(out, s.body)
	return out
}

// GrowPending reports whether the next move will keep the tail.
func (s *Snake) GrowPending() bool {
	return s.growPending
}

// NextHead returns where the head would be after one step toward dir.
// Pass HeadDirection() to continue straight.
func (s *Snake) NextHead(dir Direction) (x, y int) {
	next := s.body[0].Add(dir.Delta())
	return next.X, next.Y
}

// MoveForward advances one cell toward dir, which becomes the new heading.
// No legality check is made here.
func (s *Snake) MoveForward(dir Direction) {
	s.direction = dir
	x, y := s.NextHead(dir)

	if s.growPending {
		s.body = append(s.body, core.Point{})
		s.growPending = false
	}
	// Shift everything back one slot, dropping the last segment.
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = core.Pt(x, y)
}

// AddTail schedules one segment of growth for the next MoveForward.
func (s *Snake) AddTail() {
	s.growPending = true
}

// OverlapTail reports whether (x, y) is covered by any segment, head included.
func (s *Snake) OverlapTail(x, y int) bool {
	p := core.Pt(x, y)
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}

// Draw paints every segment in color c.
func (s *Snake) Draw(dst core.Canvas, c core.Color) {
	for _, seg := range s.body {
		dst.FillBlock(c, seg.X, seg.Y)
	}
}
