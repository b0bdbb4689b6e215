package system

import (
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
)

// CollisionSnapshotSystem copies each box into Previous. It runs before any
// system moves entities. Static boxes are only copied until initialized.
type CollisionSnapshotSystem struct{}

func NewCollisionSnapshotSystem() *CollisionSnapshotSystem {
	return &CollisionSnapshotSystem{}
}

func (s *CollisionSnapshotSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}
	for _, col := range ecs.With(w, component.CollisionComponent) {
		if !col.Static || !col.Initialized {
			col.Previous = col.Current
		}
	}
}

// CollisionSystem refreshes every box from its entity location, resolves all
// overlapping pairs and latches the player's contact state for the next
// frame.
type CollisionSystem struct {
	tuning *Tuning
	sound  SoundPlayer

	entities []ecs.EntityID
}

func NewCollisionSystem(tuning *Tuning, sound SoundPlayer) *CollisionSystem {
	return &CollisionSystem{
		tuning: tuningOrDefault(tuning),
		sound:  soundOrSilent(sound),
	}
}

func (cs *CollisionSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}
	camera, player := cs.refresh(w)
	cs.resolvePairs(w, camera, player)
	cs.latch(w, player)
}

// refresh clears contact flags, moves boxes to their entity locations and
// collects the entities taking part in this frame. It also finds the camera
// (by name) and the player (the entity reading input).
func (cs *CollisionSystem) refresh(w *ecs.World) (camera, player ecs.EntityID) {
	camera, player = ecs.NoEntity, ecs.NoEntity
	cs.entities = cs.entities[:0]

	for e := range w.Entities() {
		if !e.Alive {
			continue
		}
		if e.Name == cs.tuning.CameraName {
			camera = e.ID
		}
		if ecs.Has(w, e.ID, component.InputComponent) {
			player = e.ID
		}

		col, ok := ecs.TryGet(w, e.ID, component.CollisionComponent)
		if !ok {
			continue
		}
		col.ClearContacts()

		loc, ok := ecs.TryGet(w, e.ID, component.LocationComponent)
		if !ok {
			w.Violate("collision refresh", e.ID, component.LocationComponent.Name(), ecs.ErrMissingCoComponent)
			continue
		}
		if !col.Static || !col.Initialized {
			col.Current.Min = loc.Position.Add(col.Offset)
			col.Initialized = true
		}
		cs.entities = append(cs.entities, e.ID)
	}
	return camera, player
}

func (cs *CollisionSystem) resolvePairs(w *ecs.World, camera, player ecs.EntityID) {
	for i := 0; i < len(cs.entities); i++ {
		for j := i + 1; j < len(cs.entities); j++ {
			e1, e2 := cs.entities[i], cs.entities[j]
			if !w.ValidEntity(e1) || !w.ValidEntity(e2) {
				continue
			}
			col1, ok1 := ecs.TryGet(w, e1, component.CollisionComponent)
			col2, ok2 := ecs.TryGet(w, e2, component.CollisionComponent)
			if !ok1 || !ok2 {
				continue
			}
			if col1.Static && col2.Static {
				continue
			}
			if !col1.Current.Intersects(col2.Current) {
				continue
			}

			if star := cs.collectible(w, e1, e2, player); star != ecs.NoEntity {
				cs.collect(w, player, star)
				continue
			}

			overlap := CalculateOverlap(col1.Current, col2.Current)
			a := newBody(w, e1, col1, player)
			b := newBody(w, e2, col2, player)
			cs.resolve(w, a, b, overlap, camera)
		}
	}
}

// collectible returns the non-player side of a (player, collectible) pair.
func (cs *CollisionSystem) collectible(w *ecs.World, e1, e2, player ecs.EntityID) ecs.EntityID {
	if player == ecs.NoEntity {
		return ecs.NoEntity
	}
	switch {
	case e1 == player && w.Name(e2) == cs.tuning.CollectibleName:
		return e2
	case e2 == player && w.Name(e1) == cs.tuning.CollectibleName:
		return e1
	}
	return ecs.NoEntity
}

// collect scores the pickup, hides and destroys the collectible and plays the
// pickup sound. Nothing is pushed apart.
func (cs *CollisionSystem) collect(w *ecs.World, player, star ecs.EntityID) {
	score := ecs.Get(w, player, component.ScoreComponent)
	sprite := ecs.Get(w, star, component.SpriteComponent)
	if score == nil || sprite == nil {
		return
	}
	score.Value += cs.tuning.PickupPoints
	sprite.Alive = false
	w.RemoveEntity(star)
	cs.sound.Play(cs.tuning.PickupSound)
}

func (cs *CollisionSystem) latch(w *ecs.World, player ecs.EntityID) {
	if player == ecs.NoEntity {
		return
	}
	col, ok := ecs.TryGet(w, player, component.CollisionComponent)
	if !ok {
		return
	}
	col.WasTouchingWallLast = col.TouchingWall()
	col.WasStandingLast = col.Bottom
}

// shake returns the camera shake to trigger, or nil when there is no camera.
func (cs *CollisionSystem) shake(w *ecs.World, camera ecs.EntityID) *component.CameraShake {
	if !w.ValidEntity(camera) {
		return nil
	}
	return ecs.Get(w, camera, component.CameraShakeComponent)
}
