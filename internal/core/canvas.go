package core

// Canvas is the drawing surface games render into. Coordinates and sizes are
// in grid cells; the platform decides how big a cell is on the terminal.
type Canvas interface {
	// FillBlock paints a single grid cell.
	FillBlock(c Color, x, y int)
	// FillRect paints every cell of r. Translucent colors blend over what is
	// already there.
	FillRect(c Color, r Rect)
}

// DrawKind distinguishes single-cell blocks from rectangles in a DrawList.
type DrawKind int

const (
	DrawBlock DrawKind = iota
	DrawRectangle
)

// DrawOp is a single recorded draw call.
type DrawOp struct {
	Kind  DrawKind
	Color Color
	Rect  Rect // For blocks: 1x1 at the block position
}

// DrawList is a Canvas that records draw calls in order. It is the render
// snapshot handed to anything that wants to inspect a frame without a screen.
type DrawList struct {
	Ops []DrawOp
}

// FillBlock implements Canvas.
func (d *DrawList) FillBlock(c Color, x, y int) {
	d.Ops = append(d.Ops, DrawOp{Kind: DrawBlock, Color: c, Rect: NewRect(x, y, 1, 1)})
}

// FillRect implements Canvas.
func (d *DrawList) FillRect(c Color, r Rect) {
	d.Ops = append(d.Ops, DrawOp{Kind: DrawRectangle, Color: c, Rect: r})
}

// Reset drops all recorded operations, keeping the backing array.
func (d *DrawList) Reset() {
	d.Ops = d.Ops[:0]
}

// Blocks returns the positions of all blocks drawn with color c, in draw order.
func (d *DrawList) Blocks(c Color) []Point {
	var pts []Point
	for _, op := range d.Ops {
		if op.Kind == DrawBlock && op.Color == c {
			pts = append(pts, Point{X: op.Rect.X, Y: op.Rect.Y})
		}
	}
	return pts
}

// Rects returns all rectangles drawn with color c, in draw order.
func (d *DrawList) Rects(c Color) []Rect {
	var rects []Rect
	for _, op := range d.Ops {
		if op.Kind == DrawRectangle && op.Color == c {
			rects = append(rects, op.Rect)
		}
	}
	return rects
}

// Replay issues every recorded operation against dst, in order.
func (d *DrawList) Replay(dst Canvas) {
	for _, op := range d.Ops {
		switch op.Kind {
		case DrawBlock:
			dst.FillBlock(op.Color, op.Rect.X, op.Rect.Y)
		case DrawRectangle:
			dst.FillRect(op.Color, op.Rect)
		}
	}
}
