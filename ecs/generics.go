package ecs

// Add attaches value to id. The entity must be valid and must not already
// carry a T; a violation panics in Strict mode and is returned without
// touching the world in Lenient mode.
func Add[T any](w *World, id EntityID, typ Type[T], value T) error {
	store, err := storageFor(w, "add", id, typ)
	if err != nil {
		return err
	}
	if !w.ValidEntity(id) {
		return w.Violate("add", id, typ.name, ErrEntityNotAlive)
	}
	row := w.row(id)
	if row[typ.index] != NoHandle {
		return w.Violate("add", id, typ.name, ErrDuplicateComponent)
	}
	row[typ.index] = store.Store(value)
	return nil
}

// Remove detaches T from id. It reports whether anything was removed; an
// invalid id or an absent component is a no-op.
func Remove[T any](w *World, id EntityID, typ Type[T]) bool {
	store, err := storageFor(w, "remove", id, typ)
	if err != nil || !w.ValidEntity(id) {
		return false
	}
	row := w.row(id)
	h := row[typ.index]
	if h == NoHandle {
		return false
	}
	if err := store.Remove(h); err != nil {
		w.Violate("remove", id, typ.name, err)
		return false
	}
	row[typ.index] = NoHandle
	return true
}

// Has reports whether id carries a T. The entity must be valid.
func Has[T any](w *World, id EntityID, typ Type[T]) bool {
	if _, err := storageFor(w, "has", id, typ); err != nil {
		return false
	}
	if !w.ValidEntity(id) {
		w.Violate("has", id, typ.name, ErrEntityNotAlive)
		return false
	}
	return w.row(id)[typ.index] != NoHandle
}

// Get returns the T attached to id. The entity must be valid and carry a T;
// in Lenient mode a violation yields nil.
func Get[T any](w *World, id EntityID, typ Type[T]) *T {
	store, err := storageFor(w, "get", id, typ)
	if err != nil {
		return nil
	}
	if !w.ValidEntity(id) {
		w.Violate("get", id, typ.name, ErrEntityNotAlive)
		return nil
	}
	h := w.row(id)[typ.index]
	if h == NoHandle {
		w.Violate("get", id, typ.name, ErrMissingComponent)
		return nil
	}
	return store.Access(h)
}

// TryGet is the checked form of Get: it never reports a violation.
func TryGet[T any](w *World, id EntityID, typ Type[T]) (*T, bool) {
	if typ.set != w.types || !w.ValidEntity(id) {
		return nil, false
	}
	store := w.storages[typ.index].(*Storage[T])
	v := store.Access(w.row(id)[typ.index])
	return v, v != nil
}

// StorageOf exposes the storage of T for bulk iteration.
func StorageOf[T any](w *World, typ Type[T]) *Storage[T] {
	store, err := storageFor(w, "storage", NoEntity, typ)
	if err != nil {
		return nil
	}
	return store
}

// HandleOf returns the storage handle of T on id, or NoHandle.
func HandleOf[T any](w *World, id EntityID, typ Type[T]) Handle {
	if typ.set != w.types || !w.ValidEntity(id) {
		return NoHandle
	}
	return w.row(id)[typ.index]
}

func storageFor[T any](w *World, op string, id EntityID, typ Type[T]) (*Storage[T], error) {
	if typ.set != w.types {
		return nil, w.Violate(op, id, typ.name, ErrForeignType)
	}
	return w.storages[typ.index].(*Storage[T]), nil
}
