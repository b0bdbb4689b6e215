package system

import (
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
)

// MovementSystem integrates velocity into location.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (m *MovementSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	for id, mov := range ecs.With(w, component.MovementComponent) {
		loc, ok := ecs.TryGet(w, id, component.LocationComponent)
		if !ok {
			continue
		}
		loc.Position = loc.Position.Add(mov.Velocity.Mult(dt))
	}
}
