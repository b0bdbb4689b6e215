package ecs

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrDuplicateType = errors.New("ecs: component type already registered")
	ErrTypeSetSealed = errors.New("ecs: type set sealed")
	ErrEmptyTypeSet  = errors.New("ecs: type set is empty")
)

// TypeIndex is the dense index a component type occupies in its TypeSet.
type TypeIndex int

// TypeSet is the closed list of component types a World is built from.
// Types are registered at package init and the set is sealed when the
// first World is created from it.
type TypeSet struct {
	types  []typeInfo
	byName map[string]TypeIndex
	byType map[reflect.Type]TypeIndex
	sealed bool
}

type typeInfo struct {
	name       string
	newStorage func() componentStorage
}

func NewTypeSet() *TypeSet {
	return &TypeSet{
		byName: make(map[string]TypeIndex),
		byType: make(map[reflect.Type]TypeIndex),
	}
}

// Type is the typed handle returned by Register. It is the only way to reach
// a component of type T through a World.
type Type[T any] struct {
	set   *TypeSet
	index TypeIndex
	name  string
}

// Register adds T to the set under name. Registering the same Go type or name
// twice, or registering after the set was sealed, panics: it is a
// configuration error and must surface before any World exists.
func Register[T any](set *TypeSet, name string) Type[T] {
	if set == nil {
		panic(fmt.Errorf("ecs: register %s: nil type set", name))
	}
	if set.sealed {
		panic(fmt.Errorf("ecs: register %s: %w", name, ErrTypeSetSealed))
	}
	rt := reflect.TypeFor[T]()
	if _, ok := set.byName[name]; ok {
		panic(fmt.Errorf("ecs: register %s: %w", name, ErrDuplicateType))
	}
	if prev, ok := set.byType[rt]; ok {
		panic(fmt.Errorf("ecs: register %s: %w (as %s)", name, ErrDuplicateType, set.types[prev].name))
	}

	index := TypeIndex(len(set.types))
	set.types = append(set.types, typeInfo{
		name:       name,
		newStorage: func() componentStorage { return NewStorage[T]() },
	})
	set.byName[name] = index
	set.byType[rt] = index
	return Type[T]{set: set, index: index, name: name}
}

func (t Type[T]) Index() TypeIndex {
	return t.index
}

func (t Type[T]) Name() string {
	return t.name
}

// Valid reports whether t came from Register.
func (t Type[T]) Valid() bool {
	return t.set != nil
}

func (s *TypeSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.types)
}

// Seal closes the set. It is idempotent.
func (s *TypeSet) Seal() {
	if s == nil {
		return
	}
	s.sealed = true
}

func (s *TypeSet) Sealed() bool {
	return s != nil && s.sealed
}

// Name returns the registered name for index, or "" when out of range.
func (s *TypeSet) Name(index TypeIndex) string {
	if s == nil || index < 0 || int(index) >= len(s.types) {
		return ""
	}
	return s.types[index].name
}

// Lookup resolves a registered name to its index.
func (s *TypeSet) Lookup(name string) (TypeIndex, bool) {
	if s == nil {
		return 0, false
	}
	index, ok := s.byName[name]
	return index, ok
}
