package core

import (
	"strings"
)

// Cell is one grid cell of a Screen.
type Cell struct {
	Color  Color // Displayed color after blending
	Fill   Color // Last opaque fill, used for legend lookups
	Filled bool  // Whether an opaque fill has touched this cell
	Tinted bool  // Whether a translucent fill has blended over this cell
}

// Screen is a 2D cell buffer implementing Canvas.
// It decouples game rendering from the terminal: games paint colored grid
// cells and the platform decides how each cell looks on screen.
type Screen struct {
	width      int
	height     int
	background Color
	cells      [][]Cell
	legend     map[Color]rune
}

// NewScreen creates a new screen buffer with the given dimensions, cleared to
// the background color.
func NewScreen(width, height int, background Color) *Screen {
	s := &Screen{
		width:      width,
		height:     height,
		background: background,
		legend:     make(map[Color]rune),
	}
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
	s.Clear()
	return s
}

// Width returns the screen width in cells.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in cells.
func (s *Screen) Height() int {
	return s.height
}

// Background returns the color empty cells are cleared to.
func (s *Screen) Background() Color {
	return s.background
}

// Clear resets every cell to the background color.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Color: s.background}
		}
	}
}

// FillBlock implements Canvas.
func (s *Screen) FillBlock(c Color, x, y int) {
	s.FillRect(c, NewRect(x, y, 1, 1))
}

// FillRect implements Canvas.
// Out-of-bounds cells are silently ignored.
func (s *Screen) FillRect(c Color, r Rect) {
	for y := max(r.Y, 0); y < r.Bottom() && y < s.height; y++ {
		for x := max(r.X, 0); x < r.Right() && x < s.width; x++ {
			cell := &s.cells[y][x]
			if c.Opaque() {
				*cell = Cell{Color: c, Fill: c, Filled: true}
				continue
			}
			cell.Color = c.Over(cell.Color)
			cell.Tinted = true
		}
	}
}

// Get returns the cell at the given position.
// Returns an empty background cell for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Color: s.background}
	}
	return s.cells[y][x]
}

// SetLegend assigns the rune String uses for cells filled with color c.
func (s *Screen) SetLegend(c Color, r rune) {
	s.legend[c] = r
}

// glyph returns the ASCII representation of a cell.
func (s *Screen) glyph(cell Cell) rune {
	switch {
	case cell.Filled:
		if r, ok := s.legend[cell.Fill]; ok {
			return r
		}
		return '#'
	case cell.Tinted:
		return '~'
	default:
		return '.'
	}
}

// Row returns the ASCII representation of the specified row.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for x := 0; x < s.width; x++ {
		sb.WriteRune(s.glyph(s.cells[y][x]))
	}
	return sb.String()
}

// String converts the screen buffer to an ASCII picture, one line per row.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(s.Row(y))
	}
	return sb.String()
}
