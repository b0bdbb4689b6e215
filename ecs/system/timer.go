package system

import (
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
)

type TimerSystem struct{}

func NewTimerSystem() *TimerSystem {
	return &TimerSystem{}
}

func (s *TimerSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	for _, timer := range ecs.With(w, component.TimerComponent) {
		if !timer.Running {
			continue
		}
		timer.Remaining -= dt
		if timer.Remaining > 0 {
			continue
		}
		timer.Remaining = timer.Total
		if !timer.Restart {
			timer.Running = false
		}
	}
}
