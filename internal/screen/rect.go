package screen

// Rect is a rectangular region of the screen in character cells.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// NewRect returns a Rect anchored at (x, y).
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

func (r Rect) Left() int   { return r.X }
func (r Rect) Right() int  { return r.X + r.Width }
func (r Rect) Top() int    { return r.Y }
func (r Rect) Bottom() int { return r.Y + r.Height }

// Empty reports whether the rect covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Intersection returns the overlap of r and o. The result is empty when the
// rects do not overlap.
func (r Rect) Intersection(o Rect) Rect {
	x := max(r.Left(), o.Left())
	y := max(r.Top(), o.Top())
	right := min(r.Right(), o.Right())
	bottom := min(r.Bottom(), o.Bottom())
	if right < x {
		right = x
	}
	if bottom < y {
		bottom = y
	}
	return Rect{X: x, Y: y, Width: right - x, Height: bottom - y}
}
