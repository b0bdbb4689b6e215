package ecs

import "iter"

// Entities walks every entity slot in id order, dead ones included, so
// callers must skip entries with Alive false. The walk is bounded by the slot
// count at the start and re-reads liveness at each step: it is a live view.
// Entities removed mid-walk show up dead. New entities are only visited when
// they reuse an id the walk has not reached yet.
func (w *World) Entities() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		end := len(w.alive)
		for i := 0; i < end; i++ {
			e := Entity{ID: EntityID(i), Name: w.names[i], Alive: w.alive[i]}
			if !yield(e) {
				return
			}
		}
	}
}

// Snapshot copies the currently valid ids, in id order. Use it for passes
// that create or remove entities while walking.
func (w *World) Snapshot() []EntityID {
	ids := make([]EntityID, 0, w.live)
	for i, alive := range w.alive {
		if alive {
			ids = append(ids, EntityID(i))
		}
	}
	return ids
}

// With yields the valid entities that carry a T, with their component, in id
// order.
func With[T any](w *World, typ Type[T]) iter.Seq2[EntityID, *T] {
	return func(yield func(EntityID, *T) bool) {
		if typ.set != w.types {
			return
		}
		store := w.storages[typ.index].(*Storage[T])
		end := len(w.alive)
		for i := 0; i < end; i++ {
			if !w.alive[i] {
				continue
			}
			v := store.Access(w.row(EntityID(i))[typ.index])
			if v == nil {
				continue
			}
			if !yield(EntityID(i), v) {
				return
			}
		}
	}
}

// First returns the lowest valid id carrying a T.
func First[T any](w *World, typ Type[T]) (EntityID, bool) {
	for id := range With(w, typ) {
		return id, true
	}
	return NoEntity, false
}
