package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/starfall/common"
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
)

// CameraSystem moves the first camera after its follow target and applies
// any running shake. The result is written to Camera.View.
type CameraSystem struct {
	tuning *Tuning
}

func NewCameraSystem(tuning *Tuning) *CameraSystem {
	return &CameraSystem{tuning: tuningOrDefault(tuning)}
}

func (cs *CameraSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	id, ok := ecs.First(w, component.CameraComponent)
	if !ok {
		return
	}
	cam := ecs.Get(w, id, component.CameraComponent)

	offset := cs.shakeOffset(w, id, dt)
	cs.follow(w, id, cam)
	cam.View = cam.Position.Add(offset)
}

func (cs *CameraSystem) shakeOffset(w *ecs.World, id ecs.EntityID, dt float64) cp.Vector {
	shake, ok := ecs.TryGet(w, id, component.CameraShakeComponent)
	if !ok {
		return cp.Vector{}
	}
	timer := ecs.Get(w, id, component.TimerComponent)
	if timer == nil {
		return cp.Vector{}
	}

	if shake.Triggered {
		timer.Start()
		shake.Elapsed = 0
		shake.Triggered = false
	}
	if !timer.Running || timer.Remaining <= 0 {
		shake.Elapsed = 0
		return cp.Vector{}
	}

	shake.Elapsed += dt
	intensity := timer.Fraction()
	if shake.Horizontal {
		return cp.Vector{X: shake.Magnitude.X * math.Sin(shake.Elapsed*shake.Frequency.X) * intensity}
	}
	return cp.Vector{Y: shake.Magnitude.Y * math.Cos(shake.Elapsed*shake.Frequency.Y) * intensity}
}

func (cs *CameraSystem) follow(w *ecs.World, id ecs.EntityID, cam *component.Camera) {
	follower, ok := ecs.TryGet(w, id, component.CameraFollowerComponent)
	if !ok {
		return
	}
	target, ok := ecs.TryGet(w, follower.Target, component.LocationComponent)
	if !ok {
		return
	}

	scale := cam.UnitsPerPixel
	if scale == 0 {
		scale = 1
	}
	// measured from the undisturbed position, not the shaken view
	screen := target.Position.Sub(cam.Position).Mult(1 / scale)

	var adjust cp.Vector
	if follower.FollowX {
		adjust.X = cs.deadzone(screen.X, cam.Viewport.X)
	}
	if follower.FollowY {
		adjust.Y = cs.deadzone(screen.Y, cam.Viewport.Y)
	}
	cam.Position = cam.Position.Add(adjust.Mult(scale))
}

// deadzone returns how far, in pixels, the camera moves along one axis for a
// target at pos on a window of size extent. Near the edges the camera keeps
// the target in view directly, in the tracking band it eases towards it, and
// in the middle it stays put.
func (cs *CameraSystem) deadzone(pos, extent float64) float64 {
	center := extent / 2
	offset := pos - center
	outer := center - extent*cs.tuning.CameraOuterEdge
	tracking := center - extent*cs.tuning.CameraTrackingZone

	switch {
	case offset > outer:
		return offset - outer
	case offset < -outer:
		return offset + outer
	case offset > tracking:
		return common.Lerp(0, offset-tracking, cs.tuning.CameraTween)
	case offset < -tracking:
		return common.Lerp(0, offset+tracking, cs.tuning.CameraTween)
	}
	return 0
}
