package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/starfall/common"
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
)

// SpriteSizer reports the pixel size of a registered sprite.
type SpriteSizer interface {
	SpriteSize(id component.SpriteID) (w, h float64, ok bool)
}

// VelocitySource picks the launch velocity of a spawned entity. speed bounds
// each axis.
type VelocitySource interface {
	Velocity(spawn *component.Spawn, speed float64) (cp.Vector, error)
}

// SpawnSystem counts spawners down and, when one expires, creates an entity
// at the spawner's location with a sprite, a dynamic collision box of the
// sprite's size and a velocity from the configured source.
type SpawnSystem struct {
	tuning   *Tuning
	sprites  SpriteSizer
	velocity VelocitySource
}

func NewSpawnSystem(tuning *Tuning, sprites SpriteSizer, velocity VelocitySource) *SpawnSystem {
	if velocity == nil {
		velocity = NewRandomVelocity(0)
	}
	return &SpawnSystem{
		tuning:   tuningOrDefault(tuning),
		sprites:  sprites,
		velocity: velocity,
	}
}

func (s *SpawnSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	// spawning creates entities, so walk a snapshot
	for _, id := range w.Snapshot() {
		spawn, ok := ecs.TryGet(w, id, component.SpawnComponent)
		if !ok {
			continue
		}
		spawn.TimeToNext -= dt
		if spawn.TimeToNext > 0 || spawn.Exhausted() {
			continue
		}
		loc := ecs.Get(w, id, component.LocationComponent)
		if loc == nil {
			continue
		}
		origin := loc.Position

		if _, err := s.spawn(w, *spawn, origin); err != nil {
			w.Logger().Warn("spawn failed", "spawner", int(id), "type", spawn.EntityType, "err", err)
			continue
		}

		spawn, _ = ecs.TryGet(w, id, component.SpawnComponent)
		spawn.TimeToNext = spawn.Interval
		spawn.Count++
	}
}

func (s *SpawnSystem) spawn(w *ecs.World, spawn component.Spawn, origin cp.Vector) (ecs.EntityID, error) {
	speed := s.tuning.SpawnSpeed
	velocity, err := s.velocity.Velocity(&spawn, speed)
	if err != nil {
		w.Logger().Warn("spawn velocity", "type", spawn.EntityType, "err", err)
		velocity = cp.Vector{}
	}

	var width, height float64
	if s.sprites != nil {
		width, height, _ = s.sprites.SpriteSize(spawn.Sprite)
	}
	box := common.NewRect(0, -height, width, height)

	e := w.CreateEntity(spawn.EntityType)
	if err := ecs.Add(w, e, component.LocationComponent, component.Location{Position: origin}); err != nil {
		w.RemoveEntity(e)
		return ecs.NoEntity, err
	}
	if err := ecs.Add(w, e, component.MovementComponent, component.NewMovement(velocity, speed)); err != nil {
		w.RemoveEntity(e)
		return ecs.NoEntity, err
	}
	if err := ecs.Add(w, e, component.SpriteComponent, component.NewSprite(spawn.Sprite, box, true)); err != nil {
		w.RemoveEntity(e)
		return ecs.NoEntity, err
	}
	if err := ecs.Add(w, e, component.CollisionComponent, component.NewCollision(box, false)); err != nil {
		w.RemoveEntity(e)
		return ecs.NoEntity, err
	}
	return e, nil
}
