package common

import "github.com/jakecoffman/cp"

// Rect is an axis-aligned box with its origin at the top-left corner and y
// growing downwards.
type Rect struct {
	Min           cp.Vector
	Width, Height float64
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{Min: cp.Vector{X: x, Y: y}, Width: w, Height: h}
}

func (r Rect) Left() float64   { return r.Min.X }
func (r Rect) Top() float64    { return r.Min.Y }
func (r Rect) Right() float64  { return r.Min.X + r.Width }
func (r Rect) Bottom() float64 { return r.Min.Y + r.Height }

// Intersects reports strict overlap. Boxes that only share an edge do not
// intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.Left() < other.Right() &&
		r.Right() > other.Left() &&
		r.Top() < other.Bottom() &&
		r.Bottom() > other.Top()
}

// Translate returns r moved by d.
func (r Rect) Translate(d cp.Vector) Rect {
	r.Min = r.Min.Add(d)
	return r
}

// BB converts r to a chipmunk bounding box.
func (r Rect) BB() cp.BB {
	return cp.BB{L: r.Left(), B: r.Top(), R: r.Right(), T: r.Bottom()}
}
