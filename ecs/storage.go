package ecs

import "iter"

// Handle addresses one slot of a Storage. It stays valid until removed.
type Handle int

// NoHandle marks a component type as absent on an entity.
const NoHandle Handle = -1

// componentStorage is the type-erased view the World keeps per type so that
// RemoveEntity can detach components without knowing T.
type componentStorage interface {
	Remove(h Handle) error
	Valid(h Handle) bool
	Size() int
}

// Storage is a slot array of T. Removed slots are reset to the zero value and
// pushed on a free list; memory is never released.
type Storage[T any] struct {
	slots []T
	valid bitset
	free  []Handle
	size  int
}

func NewStorage[T any]() *Storage[T] {
	return &Storage[T]{}
}

// Store places value in a free slot, or appends one.
func (s *Storage[T]) Store(value T) Handle {
	var h Handle
	if n := len(s.free); n > 0 {
		h = s.free[n-1]
		s.free = s.free[:n-1]
		s.slots[h] = value
	} else {
		h = Handle(len(s.slots))
		s.slots = append(s.slots, value)
		s.valid.grow(len(s.slots))
	}
	s.valid.set(int(h))
	s.size++
	return h
}

// Remove releases h. Removing an invalid handle returns ErrInvalidHandle and
// leaves the storage untouched.
func (s *Storage[T]) Remove(h Handle) error {
	if !s.Valid(h) {
		return ErrInvalidHandle
	}
	var zero T
	s.slots[h] = zero
	s.valid.clear(int(h))
	s.free = append(s.free, h)
	s.size--
	return nil
}

// Access returns a pointer into the slot for h, or nil when h is not valid.
// The pointer must not be kept across a Store or Remove.
func (s *Storage[T]) Access(h Handle) *T {
	if !s.Valid(h) {
		return nil
	}
	return &s.slots[h]
}

// Valid is safe for any handle value.
func (s *Storage[T]) Valid(h Handle) bool {
	if s == nil || h < 0 || int(h) >= len(s.slots) {
		return false
	}
	return s.valid.test(int(h))
}

// Size is the number of live slots.
func (s *Storage[T]) Size() int {
	if s == nil {
		return 0
	}
	return s.size
}

// Cap is the number of slots ever allocated, live or free.
func (s *Storage[T]) Cap() int {
	if s == nil {
		return 0
	}
	return len(s.slots)
}

// Reserve grows the backing array so n more values can be stored without
// reallocating.
func (s *Storage[T]) Reserve(n int) {
	if n <= len(s.free) {
		return
	}
	need := len(s.slots) + n - len(s.free)
	if need <= cap(s.slots) {
		return
	}
	slots := make([]T, len(s.slots), need)
	copy(slots, s.slots)
	s.slots = slots
}

// All yields every valid slot in handle order.
func (s *Storage[T]) All() iter.Seq2[Handle, *T] {
	return func(yield func(Handle, *T) bool) {
		if s == nil {
			return
		}
		for i := range s.slots {
			if !s.valid.test(i) {
				continue
			}
			if !yield(Handle(i), &s.slots[i]) {
				return
			}
		}
	}
}

// bitset is a growable validity bitmap.
type bitset []uint64

func (b *bitset) grow(n int) {
	words := (n + 63) >> 6
	for len(*b) < words {
		*b = append(*b, 0)
	}
}

func (b bitset) set(i int) {
	b[i>>6] |= 1 << (uint(i) & 63)
}

func (b bitset) clear(i int) {
	b[i>>6] &^= 1 << (uint(i) & 63)
}

func (b bitset) test(i int) bool {
	w := i >> 6
	if w >= len(b) {
		return false
	}
	return b[w]&(1<<(uint(i)&63)) != 0
}
