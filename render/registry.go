package render

import (
	"image"
	"iter"

	"github.com/milk9111/starfall/ecs/component"
)

// Frame is a source rectangle on a named sprite sheet.
type Frame struct {
	Sheet string
	Src   image.Rectangle
}

// Registry hands out sprite ids for sheet frames. Every Register call gets a
// new id, even for a frame seen before, and ids are never reused.
type Registry struct {
	frames []Frame
}

func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) Register(sheet string, src image.Rectangle) component.SpriteID {
	r.frames = append(r.frames, Frame{Sheet: sheet, Src: src.Canon()})
	return component.SpriteID(len(r.frames) - 1)
}

func (r *Registry) Frame(id component.SpriteID) (Frame, bool) {
	if id < 0 || int(id) >= len(r.frames) {
		return Frame{}, false
	}
	return r.frames[id], true
}

// SpriteSize reports the frame size in pixels.
func (r *Registry) SpriteSize(id component.SpriteID) (float64, float64, bool) {
	f, ok := r.Frame(id)
	if !ok {
		return 0, 0, false
	}
	return float64(f.Src.Dx()), float64(f.Src.Dy()), true
}

func (r *Registry) Len() int {
	return len(r.frames)
}

func (r *Registry) All() iter.Seq2[component.SpriteID, Frame] {
	return func(yield func(component.SpriteID, Frame) bool) {
		for i, f := range r.frames {
			if !yield(component.SpriteID(i), f) {
				return
			}
		}
	}
}
