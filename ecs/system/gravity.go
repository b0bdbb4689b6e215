package system

import (
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
)

// GravitySystem accelerates every moving entity downwards unless it stood on
// something last frame. A player pushing into a wall while falling slides at
// reduced gravity.
type GravitySystem struct {
	tuning *Tuning
}

func NewGravitySystem(tuning *Tuning) *GravitySystem {
	return &GravitySystem{tuning: tuningOrDefault(tuning)}
}

func (g *GravitySystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	for id, mov := range ecs.With(w, component.MovementComponent) {
		scale := 1.0
		if col, ok := ecs.TryGet(w, id, component.CollisionComponent); ok {
			if col.Bottom {
				continue
			}
			if input, ok := ecs.TryGet(w, id, component.InputComponent); ok && wallSliding(col, input, mov) {
				scale = g.tuning.WallSlideGravityScale
			}
		}
		mov.Velocity.Y += g.tuning.Gravity * scale * dt
	}
}

// wallSliding reports a falling entity held against the wall it touches.
func wallSliding(col *component.Collision, input *component.Input, mov *component.Movement) bool {
	if col.Bottom || mov.Velocity.Y <= 0 {
		return false
	}
	return (col.Left && input.Held(component.KeyLeft)) ||
		(col.Right && input.Held(component.KeyRight))
}
