package component

import "github.com/milk9111/starfall/ecs"

// Spawn periodically creates entities named EntityType at the spawner's
// location.
type Spawn struct {
	EntityType string
	Sprite     SpriteID
	Interval   float64
	TimeToNext float64
	Count      int
	// Max is the spawn limit, -1 for unlimited.
	Max int
}

func NewSpawn(entityType string, sprite SpriteID, interval float64, max int) Spawn {
	return Spawn{EntityType: entityType, Sprite: sprite, Interval: interval, Max: max}
}

// Exhausted reports whether the spawner reached its limit.
func (s *Spawn) Exhausted() bool {
	return s.Max >= 0 && s.Count >= s.Max
}

var SpawnComponent = ecs.Register[Spawn](Types, "spawn")
