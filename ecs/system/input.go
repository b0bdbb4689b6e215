package system

import (
	"math"

	"github.com/milk9111/starfall/common"
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
)

// InputSystem turns held keys into player velocity: run with acceleration
// and drag, jump from the ground, wall jump while sliding and fast fall.
type InputSystem struct {
	tuning *Tuning
	sound  SoundPlayer
}

func NewInputSystem(tuning *Tuning, sound SoundPlayer) *InputSystem {
	return &InputSystem{
		tuning: tuningOrDefault(tuning),
		sound:  soundOrSilent(sound),
	}
}

func (s *InputSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	for id, input := range ecs.With(w, component.InputComponent) {
		mov, ok := ecs.TryGet(w, id, component.MovementComponent)
		if !ok {
			continue
		}
		accel := ecs.Get(w, id, component.AccelerationComponent)
		if accel == nil {
			continue
		}
		s.control(w, id, input, mov, accel.Accel.X, dt)
	}
}

func (s *InputSystem) control(w *ecs.World, id ecs.EntityID, input *component.Input, mov *component.Movement, accel, dt float64) {
	var grounded, leftWall, rightWall, sliding bool
	falling := mov.Velocity.Y > 0
	if col, ok := ecs.TryGet(w, id, component.CollisionComponent); ok {
		grounded = col.Bottom
		leftWall = col.Left
		rightWall = col.Right
		sliding = wallSliding(col, input, mov)
		if falling {
			col.WasStandingLast = false
		}
	}

	dir := 0.0
	if input.Held(component.KeyLeft) {
		dir--
	}
	if input.Held(component.KeyRight) {
		dir++
	}

	v := &mov.Velocity
	if dir != 0 {
		if !grounded {
			accel *= s.tuning.AirControl
		}
		target := dir * mov.MaxSpeed
		if math.Abs(target-v.X) < accel*dt {
			v.X = target
		} else {
			v.X += common.Sign(target-v.X) * accel * dt
		}
		v.X = common.Clamp(v.X, -mov.MaxSpeed, mov.MaxSpeed)
	} else {
		decel := accel * s.tuning.AirDecel
		if grounded {
			decel = accel * s.tuning.GroundDecel
		}
		if math.Abs(v.X) < decel*dt {
			v.X = 0
		} else {
			v.X -= common.Sign(v.X) * decel * dt
		}
	}

	if input.Held(component.KeyJump) {
		switch {
		case grounded:
			v.Y = s.tuning.JumpVelocity
			s.sound.Play(s.tuning.JumpSound)
		case sliding:
			v.Y = s.tuning.WallJumpY
			s.sound.Play(s.tuning.JumpSound)
			if leftWall {
				v.X = s.tuning.WallJumpX
			} else if rightWall {
				v.X = -s.tuning.WallJumpX
			}
		}
	}

	if input.Held(component.KeyDown) {
		v.Y += s.tuning.FastFall
	}
}
