package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/starfall/ecs"
)

// Camera is the world-space top-left of the view. Viewport is the window size
// in pixels and is kept current by the host. View is Position plus any shake
// offset, and is what renderers read.
type Camera struct {
	Position      cp.Vector
	UnitsPerPixel float64
	Viewport      cp.Vector
	View          cp.Vector
}

// WorldToScreen maps a world point into window pixels.
func (c *Camera) WorldToScreen(p cp.Vector) cp.Vector {
	scale := c.UnitsPerPixel
	if scale == 0 {
		scale = 1
	}
	return p.Sub(c.View).Mult(1 / scale)
}

var CameraComponent = ecs.Register[Camera](Types, "camera")

type CameraFollower struct {
	Target  ecs.EntityID
	FollowX bool
	FollowY bool
}

var CameraFollowerComponent = ecs.Register[CameraFollower](Types, "camera_follower")

// CameraShake holds shake parameters. Timing comes from a Timer on the same
// entity; setting Triggered restarts it.
type CameraShake struct {
	Triggered  bool
	Horizontal bool
	Magnitude  cp.Vector
	Frequency  cp.Vector
	Elapsed    float64
}

func NewCameraShake(magnitudeX, frequencyX, magnitudeY, frequencyY float64) CameraShake {
	return CameraShake{
		Magnitude: cp.Vector{X: magnitudeX, Y: magnitudeY},
		Frequency: cp.Vector{X: frequencyX, Y: frequencyY},
	}
}

// Trigger asks the camera to shake along one axis from the next update on.
func (s *CameraShake) Trigger(horizontal bool) {
	s.Triggered = true
	s.Horizontal = horizontal
}

var CameraShakeComponent = ecs.Register[CameraShake](Types, "camera_shake")
