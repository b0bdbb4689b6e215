package ecs

import (
	"io"
	"log/slog"
)

// World owns one storage per registered component type and the table mapping
// (entity, type) to a storage handle.
type World struct {
	types    *TypeSet
	storages []componentStorage

	// table holds len(types) handles per entity slot.
	table []Handle
	names []string
	alive []bool
	free  []EntityID
	live  int

	mode   Mode
	logger *slog.Logger
}

type Option func(*World)

// WithMode selects Strict or Lenient handling of contract violations.
func WithMode(mode Mode) Option {
	return func(w *World) {
		w.mode = mode
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(w *World) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// NewWorld seals types and builds an empty world over it.
func NewWorld(types *TypeSet, opts ...Option) (*World, error) {
	if types.Len() == 0 {
		return nil, ErrEmptyTypeSet
	}
	types.Seal()

	w := &World{
		types:    types,
		storages: make([]componentStorage, types.Len()),
		mode:     Strict,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for i, info := range types.types {
		w.storages[i] = info.newStorage()
	}
	for _, opt := range opts {
		if opt != nil {
			opt(w)
		}
	}
	return w, nil
}

func (w *World) Mode() Mode {
	return w.mode
}

func (w *World) Logger() *slog.Logger {
	return w.logger
}

func (w *World) Types() *TypeSet {
	return w.types
}

// CreateEntity reuses the most recently freed id, or allocates a new one.
// Every component slot of the new entity starts absent.
func (w *World) CreateEntity(name string) EntityID {
	n := len(w.storages)
	var id EntityID
	if k := len(w.free); k > 0 {
		id = w.free[k-1]
		w.free = w.free[:k-1]
		w.names[id] = name
		w.alive[id] = true
	} else {
		id = EntityID(len(w.alive))
		w.names = append(w.names, name)
		w.alive = append(w.alive, true)
		for range n {
			w.table = append(w.table, NoHandle)
		}
	}
	w.live++
	return id
}

// RemoveEntity detaches every component of id and frees the id. Removing an
// id that is not valid is a no-op.
func (w *World) RemoveEntity(id EntityID) {
	if !w.ValidEntity(id) {
		return
	}
	row := w.row(id)
	for t, h := range row {
		if h == NoHandle {
			continue
		}
		if err := w.storages[t].Remove(h); err != nil {
			w.Violate("remove entity", id, w.types.Name(TypeIndex(t)), err)
		}
		row[t] = NoHandle
	}
	w.names[id] = ""
	w.alive[id] = false
	w.free = append(w.free, id)
	w.live--
}

// ValidEntity is safe for any integer.
func (w *World) ValidEntity(id EntityID) bool {
	return id >= 0 && int(id) < len(w.alive) && w.alive[id]
}

// Name returns the debug name of id, or "" when id is not valid.
func (w *World) Name(id EntityID) string {
	if !w.ValidEntity(id) {
		return ""
	}
	return w.names[id]
}

// FindByName returns the lowest valid id carrying name.
func (w *World) FindByName(name string) (EntityID, bool) {
	for id, alive := range w.alive {
		if alive && w.names[id] == name {
			return EntityID(id), true
		}
	}
	return NoEntity, false
}

// Count is the number of valid entities.
func (w *World) Count() int {
	return w.live
}

// Cap is the number of entity slots, valid or free.
func (w *World) Cap() int {
	return len(w.alive)
}

func (w *World) row(id EntityID) []Handle {
	n := len(w.storages)
	start := int(id) * n
	return w.table[start : start+n : start+n]
}
