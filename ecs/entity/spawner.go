package entity

import (
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
)

// ConfigureSpawners attaches a copy of spawn to every given entity. Spawners
// start with no time left, so the first spawn happens on the first update.
func ConfigureSpawners(w *ecs.World, spawners []ecs.EntityID, spawn component.Spawn) (int, error) {
	n := 0
	for _, id := range spawners {
		if err := ecs.Add(w, id, component.SpawnComponent, spawn); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
