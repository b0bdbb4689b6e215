// Package sound synthesizes and plays the game's named sound effects.
package sound

import (
	"errors"
	"slices"
	"sync"
)

const (
	Jump    = "jump"
	Sparkle = "sparkle"
)

var ErrUnknownSound = errors.New("sound: unknown sound")

// Player plays a named sound without blocking.
type Player interface {
	Play(name string)
}

// Silent drops every sound.
type Silent struct{}

func (Silent) Play(string) {}

// Recorder remembers what was played, in order.
type Recorder struct {
	mu     sync.Mutex
	played []string
}

func (r *Recorder) Play(name string) {
	r.mu.Lock()
	r.played = append(r.played, name)
	r.mu.Unlock()
}

func (r *Recorder) Played() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.played)
}

func (r *Recorder) Count(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, p := range r.played {
		if p == name {
			n++
		}
	}
	return n
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	r.played = nil
	r.mu.Unlock()
}
