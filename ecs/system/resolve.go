package system

import (
	"math"

	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
)

// body gathers what resolution needs from one side of a colliding pair.
type body struct {
	id     ecs.EntityID
	col    *component.Collision
	loc    *component.Location
	mov    *component.Movement
	player bool
}

func newBody(w *ecs.World, id ecs.EntityID, col *component.Collision, player ecs.EntityID) body {
	b := body{id: id, col: col, player: id == player}
	b.loc, _ = ecs.TryGet(w, id, component.LocationComponent)
	b.mov, _ = ecs.TryGet(w, id, component.MovementComponent)
	return b
}

// push moves the entity and its cached box together.
func (b body) push(dx, dy float64) {
	b.loc.Position.X += dx
	b.loc.Position.Y += dy
	b.col.Current.Min.X += dx
	b.col.Current.Min.Y += dy
}

func (cs *CollisionSystem) resolve(w *ecs.World, a, b body, overlap Overlap, camera ecs.EntityID) {
	for _, side := range [...]body{a, b} {
		if !side.col.Static && side.loc == nil {
			w.Violate("resolve collision", side.id, component.LocationComponent.Name(), ecs.ErrMissingCoComponent)
			return
		}
	}

	if !a.col.Static && !b.col.Static {
		if overlap.Axis() == AxisHorizontal {
			cs.separateDynamicX(a, b, overlap.Horizontal)
		} else {
			cs.separateDynamicY(a, b, overlap.Vertical)
		}
		return
	}

	dyn, static := a, b
	if a.col.Static {
		dyn, static = b, a
	}
	if overlap.Axis() == AxisHorizontal {
		cs.separateStaticX(w, dyn, static, overlap.Horizontal, camera)
	} else {
		cs.separateStaticY(w, dyn, static, overlap.Vertical, camera)
	}
}

// separateDynamicX splits the penetration between two moving entities. Two
// non-players trade horizontal velocity with damping; against the player only
// the other side bounces.
func (cs *CollisionSystem) separateDynamicX(a, b body, depth float64) {
	half := depth / 2
	if a.col.Current.Min.X < b.col.Current.Min.X {
		a.push(-half, 0)
		b.push(half, 0)
		a.col.Right = true
		b.col.Left = true
	} else {
		a.push(half, 0)
		b.push(-half, 0)
		a.col.Left = true
		b.col.Right = true
	}

	if a.mov == nil || b.mov == nil {
		return
	}
	damping := cs.tuning.BounceDamping
	switch {
	case !a.player && !b.player:
		a.mov.Velocity.X, b.mov.Velocity.X = b.mov.Velocity.X*damping, a.mov.Velocity.X*damping
	case !a.player && b.player:
		a.mov.Velocity.X = -a.mov.Velocity.X * damping
	case a.player && !b.player:
		b.mov.Velocity.X = -b.mov.Velocity.X * damping
	}
}

// separateDynamicY is the vertical counterpart. Non-player pairs trade
// vertical velocity, and once both have settled they also stop sliding.
func (cs *CollisionSystem) separateDynamicY(a, b body, depth float64) {
	half := depth / 2
	if a.col.Current.Min.Y < b.col.Current.Min.Y {
		a.push(0, -half)
		b.push(0, half)
		a.col.Bottom = true
		b.col.Top = true
	} else {
		a.push(0, half)
		b.push(0, -half)
		a.col.Top = true
		b.col.Bottom = true
	}

	if a.mov == nil || b.mov == nil || a.player || b.player {
		return
	}
	damping := cs.tuning.BounceDamping
	a.mov.Velocity.Y, b.mov.Velocity.Y = b.mov.Velocity.Y*damping, a.mov.Velocity.Y*damping
	if math.Abs(a.mov.Velocity.Y) < cs.tuning.SettleSpeed && math.Abs(b.mov.Velocity.Y) < cs.tuning.SettleSpeed {
		a.mov.Velocity.X = 0
		b.mov.Velocity.X = 0
	}
}

// separateStaticX pushes the moving side fully out of a wall.
func (cs *CollisionSystem) separateStaticX(w *ecs.World, dyn, static body, depth float64, camera ecs.EntityID) {
	dynIsRight := dyn.col.Current.Min.X > static.col.Current.Min.X
	if dynIsRight {
		dyn.col.Left = true
		static.col.Right = true
	} else {
		dyn.col.Right = true
		static.col.Left = true
		depth = -depth
	}
	dyn.push(depth, 0)

	if dyn.mov == nil {
		return
	}
	v := &dyn.mov.Velocity
	if !dyn.player {
		if (dynIsRight && v.X < 0) || (!dynIsRight && v.X > 0) {
			v.X = -v.X * cs.tuning.BounceDamping
		}
		return
	}

	// wall slide
	v.X = 0
	if v.Y > cs.tuning.WallSlideMaxFall {
		v.Y = cs.tuning.WallSlideMaxFall
	}
	if !dyn.col.WasTouchingWallLast {
		if shake := cs.shake(w, camera); shake != nil {
			shake.Trigger(true)
		}
	}
}

// separateStaticY pushes the moving side fully out of a floor or ceiling.
func (cs *CollisionSystem) separateStaticY(w *ecs.World, dyn, static body, depth float64, camera ecs.EntityID) {
	dynIsBelow := dyn.col.Current.Min.Y > static.col.Current.Min.Y
	if dynIsBelow {
		dyn.col.Top = true
		static.col.Bottom = true
	} else {
		dyn.col.Bottom = true
		static.col.Top = true
		depth = -depth
	}
	dyn.push(0, depth)

	if dyn.mov == nil {
		return
	}
	v := &dyn.mov.Velocity
	if !dyn.player {
		if (dynIsBelow && v.Y < 0) || (!dynIsBelow && v.Y > 0) {
			v.Y = -v.Y * cs.tuning.BounceDamping
		}
		if !dynIsBelow && math.Abs(v.Y) < cs.tuning.SettleSpeed {
			v.X = 0
		}
		return
	}

	if (!dynIsBelow && v.Y > 0) || (dynIsBelow && v.Y < 0) {
		v.Y = 0
	}
	if !dyn.col.WasStandingLast {
		if shake := cs.shake(w, camera); shake != nil {
			shake.Trigger(false)
		}
	}
}
