package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/starfall/common"
	"github.com/milk9111/starfall/ecs"
)

// Collision is an axis-aligned collision box. Offset places the box relative
// to the entity's Location and does not change after construction; Current
// and Previous are absolute. The four contact flags describe the frame that
// just finished.
type Collision struct {
	Top    bool
	Bottom bool
	Left   bool
	Right  bool

	// Onset latches for the player, written at the end of each collision pass.
	WasStandingLast     bool
	WasTouchingWallLast bool

	Offset   cp.Vector
	Current  common.Rect
	Previous common.Rect

	Static      bool
	Initialized bool
}

// NewCollision builds a box from a rect relative to the entity location.
// WasStandingLast starts true so spawning onto the ground does not count as a
// landing.
func NewCollision(box common.Rect, static bool) Collision {
	return Collision{
		WasStandingLast: true,
		Offset:          box.Min,
		Current:         box,
		Previous:        box,
		Static:          static,
	}
}

func (c *Collision) ClearContacts() {
	c.Top = false
	c.Bottom = false
	c.Left = false
	c.Right = false
}

// TouchingWall reports a side contact this frame.
func (c *Collision) TouchingWall() bool {
	return c.Left || c.Right
}

var CollisionComponent = ecs.Register[Collision](Types, "collision")
