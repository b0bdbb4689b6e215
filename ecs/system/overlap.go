package system

import (
	"math"

	"github.com/milk9111/starfall/common"
)

// Axis is the direction a collision is resolved along.
type Axis int

//go:generate go tool stringer -type=Axis -trimprefix=Axis

const (
	AxisVertical Axis = iota
	AxisHorizontal
)

// Overlap is the penetration depth of two boxes on each axis. A non-positive
// value on either axis means the boxes do not intersect.
type Overlap struct {
	Horizontal float64
	Vertical   float64
}

func CalculateOverlap(a, b common.Rect) Overlap {
	return Overlap{
		Horizontal: math.Min(a.Right(), b.Right()) - math.Max(a.Left(), b.Left()),
		Vertical:   math.Min(a.Bottom(), b.Bottom()) - math.Max(a.Top(), b.Top()),
	}
}

// Axis picks the shallower penetration. Ties resolve vertically.
func (o Overlap) Axis() Axis {
	if o.Horizontal < o.Vertical {
		return AxisHorizontal
	}
	return AxisVertical
}

// Depth is the penetration along Axis.
func (o Overlap) Depth() float64 {
	if o.Axis() == AxisHorizontal {
		return o.Horizontal
	}
	return o.Vertical
}

func (o Overlap) Separated() bool {
	return o.Horizontal <= 0 || o.Vertical <= 0
}
