package render

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/starfall/common"
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
)

// DrawOp is one sprite to draw. Dst is in window pixels.
type DrawOp struct {
	Entity ecs.EntityID
	Sprite component.SpriteID
	Frame  Frame
	Dst    common.Rect
	Screen bool
}

// Plan lists the visible sprites in entity order, which is also the draw
// order. World-space sprites are placed at location plus bounds, mapped
// through the camera; screen-space sprites sit at their location. Dead
// sprites and unregistered ids are skipped. A world-space sprite without a
// location is a contract violation.
func Plan(w *ecs.World, sprites *Registry, cam *component.Camera, ops []DrawOp) []DrawOp {
	ops = ops[:0]
	if w == nil || sprites == nil {
		return ops
	}
	view := component.Camera{UnitsPerPixel: 1}
	if cam != nil {
		view = *cam
	}
	scale := view.UnitsPerPixel
	if scale == 0 {
		scale = 1
	}

	for id, sprite := range ecs.With(w, component.SpriteComponent) {
		if !sprite.Alive {
			continue
		}
		frame, ok := sprites.Frame(sprite.ID)
		if !ok {
			continue
		}

		var dst common.Rect
		if sprite.WorldSpace {
			loc := ecs.Get(w, id, component.LocationComponent)
			if loc == nil {
				continue
			}
			topLeft := view.WorldToScreen(loc.Position.Add(sprite.Bounds.Min))
			dst = common.Rect{Min: topLeft, Width: sprite.Bounds.Width / scale, Height: sprite.Bounds.Height / scale}
		} else {
			var at cp.Vector
			if loc, ok := ecs.TryGet(w, id, component.LocationComponent); ok {
				at = loc.Position
			}
			dst = common.Rect{Min: at, Width: sprite.Bounds.Width, Height: sprite.Bounds.Height}
		}

		ops = append(ops, DrawOp{
			Entity: id,
			Sprite: sprite.ID,
			Frame:  frame,
			Dst:    dst,
			Screen: !sprite.WorldSpace,
		})
	}
	return ops
}

// Visible reports whether op overlaps a window of the given size.
func (op DrawOp) Visible(width, height float64) bool {
	return op.Dst.Intersects(common.Rect{Width: width, Height: height})
}
