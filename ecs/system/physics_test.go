package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/starfall/common"
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGravity(t *testing.T) {
	cases := []struct {
		name   string
		setup  func(w *ecs.World, id ecs.EntityID)
		player bool
		v      cp.Vector
		wantVY float64
	}{
		{"airborne", nil, false, cp.Vector{}, 490},
		{"grounded", func(w *ecs.World, id ecs.EntityID) { collision(w, id).Bottom = true }, false, cp.Vector{Y: 5}, 5},
		{"touching_wall_not_holding", func(w *ecs.World, id ecs.EntityID) { collision(w, id).Left = true }, true, cp.Vector{Y: 10}, 500},
		{"wall_slide", func(w *ecs.World, id ecs.EntityID) {
			collision(w, id).Left = true
			ecs.Get(w, id, component.InputComponent).Set(component.KeyLeft, true)
		}, true, cp.Vector{Y: 10}, 157},
		{"rising_against_wall", func(w *ecs.World, id ecs.EntityID) {
			collision(w, id).Right = true
			ecs.Get(w, id, component.InputComponent).Set(component.KeyRight, true)
		}, true, cp.Vector{Y: -100}, 390},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, _ := newWorld(t, ecs.Strict)
			var id ecs.EntityID
			if c.player {
				id = addPlayer(t, w, common.NewRect(0, 0, 10, 10), c.v)
			} else {
				id = addMover(t, w, "rock", common.NewRect(0, 0, 10, 10), c.v)
			}
			if c.setup != nil {
				c.setup(w, id)
			}
			NewGravitySystem(nil).Update(w, 0.5)
			assert.InDelta(t, c.wantVY, velocity(w, id).Y, 1e-9)
		})
	}
}

func TestGravityWithoutCollision(t *testing.T) {
	w, _ := newWorld(t, ecs.Strict)
	id := w.CreateEntity("dust")
	require.NoError(t, ecs.Add(w, id, component.MovementComponent, component.NewMovement(cp.Vector{}, 0)))

	NewGravitySystem(nil).Update(w, 0.25)

	assert.InDelta(t, 245.0, velocity(w, id).Y, 1e-9)
}

func TestMovementIntegratesVelocity(t *testing.T) {
	w, _ := newWorld(t, ecs.Strict)
	id := addMover(t, w, "rock", common.NewRect(10, 20, 5, 5), cp.Vector{X: 100, Y: -40})
	still := w.CreateEntity("no_location")
	require.NoError(t, ecs.Add(w, still, component.MovementComponent, component.NewMovement(cp.Vector{X: 1}, 0)))

	NewMovementSystem().Update(w, 0.5)

	assert.Equal(t, cp.Vector{X: 60, Y: 0}, location(w, id))
	assert.Equal(t, cp.Vector{X: 100, Y: -40}, velocity(w, id), "movement does not change velocity")
}

func TestInputRun(t *testing.T) {
	cases := []struct {
		name     string
		keys     []component.Key
		grounded bool
		vx       float64
		want     float64
	}{
		{"accelerate_grounded", []component.Key{component.KeyRight}, true, 0, 60},
		{"accelerate_air", []component.Key{component.KeyRight}, false, 0, 48},
		{"accelerate_left", []component.Key{component.KeyLeft}, true, 0, -60},
		{"snap_to_max", []component.Key{component.KeyRight}, true, 280, 300},
		{"opposite_keys_cancel", []component.Key{component.KeyLeft, component.KeyRight}, true, 100, 10},
		{"decel_grounded", nil, true, 100, 10},
		{"decel_air", nil, false, 100, 70},
		{"decel_to_rest", nil, true, -20, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, _ := newWorld(t, ecs.Strict)
			id := addPlayer(t, w, common.NewRect(0, 0, 10, 10), cp.Vector{X: c.vx})
			collision(w, id).Bottom = c.grounded
			input := ecs.Get(w, id, component.InputComponent)
			for _, k := range c.keys {
				input.Set(k, true)
			}

			NewInputSystem(nil, nil).Update(w, 0.1)

			assert.InDelta(t, c.want, velocity(w, id).X, 1e-9)
		})
	}
}

func TestInputJump(t *testing.T) {
	t.Run("grounded", func(t *testing.T) {
		w, _ := newWorld(t, ecs.Strict)
		var sounds soundLog
		id := addPlayer(t, w, common.NewRect(0, 0, 10, 10), cp.Vector{})
		collision(w, id).Bottom = true
		ecs.Get(w, id, component.InputComponent).Set(component.KeyJump, true)

		NewInputSystem(nil, &sounds).Update(w, 0.1)

		assert.Equal(t, -400.0, velocity(w, id).Y)
		assert.Equal(t, soundLog{"jump"}, sounds)
	})

	t.Run("airborne", func(t *testing.T) {
		w, _ := newWorld(t, ecs.Strict)
		var sounds soundLog
		id := addPlayer(t, w, common.NewRect(0, 0, 10, 10), cp.Vector{Y: -50})
		ecs.Get(w, id, component.InputComponent).Set(component.KeyJump, true)

		NewInputSystem(nil, &sounds).Update(w, 0.1)

		assert.Equal(t, -50.0, velocity(w, id).Y)
		assert.Empty(t, sounds)
	})

	t.Run("wall_jump", func(t *testing.T) {
		for _, c := range []struct {
			name   string
			key    component.Key
			left   bool
			wantVX float64
		}{
			{"off_left_wall", component.KeyLeft, true, 250},
			{"off_right_wall", component.KeyRight, false, -250},
		} {
			t.Run(c.name, func(t *testing.T) {
				w, _ := newWorld(t, ecs.Strict)
				var sounds soundLog
				id := addPlayer(t, w, common.NewRect(0, 0, 10, 10), cp.Vector{Y: 50})
				col := collision(w, id)
				col.Left, col.Right = c.left, !c.left
				input := ecs.Get(w, id, component.InputComponent)
				input.Set(c.key, true)
				input.Set(component.KeyJump, true)

				NewInputSystem(nil, &sounds).Update(w, 0.1)

				assert.Equal(t, cp.Vector{X: c.wantVX, Y: -350}, velocity(w, id))
				assert.Equal(t, soundLog{"jump"}, sounds)
			})
		}
	})
}

func TestInputFastFallAndLandingLatch(t *testing.T) {
	w, _ := newWorld(t, ecs.Strict)
	id := addPlayer(t, w, common.NewRect(0, 0, 10, 10), cp.Vector{Y: 30})
	require.True(t, collision(w, id).WasStandingLast)
	ecs.Get(w, id, component.InputComponent).Set(component.KeyDown, true)

	NewInputSystem(nil, nil).Update(w, 0.1)

	assert.Equal(t, 230.0, velocity(w, id).Y)
	assert.False(t, collision(w, id).WasStandingLast, "falling re-arms the landing shake")
}

func TestInputNeedsAcceleration(t *testing.T) {
	w, logs := newWorld(t, ecs.Lenient)
	id := addMover(t, w, "puppet", common.NewRect(0, 0, 10, 10), cp.Vector{X: 100})
	require.NoError(t, ecs.Add(w, id, component.InputComponent, component.Input{}))

	NewInputSystem(nil, nil).Update(w, 0.1)

	assert.Equal(t, 100.0, velocity(w, id).X)
	assert.Contains(t, logs.String(), "contract violation")
}

func TestTimer(t *testing.T) {
	w, _ := newWorld(t, ecs.Strict)
	repeat := w.CreateEntity("repeat")
	once := w.CreateEntity("once")
	stopped := w.CreateEntity("stopped")
	require.NoError(t, ecs.Add(w, repeat, component.TimerComponent, component.NewTimer(1, true)))
	require.NoError(t, ecs.Add(w, once, component.TimerComponent, component.NewTimer(1, false)))
	require.NoError(t, ecs.Add(w, stopped, component.TimerComponent, component.Timer{Total: 1, Remaining: 0.5}))
	timer := func(id ecs.EntityID) *component.Timer { return ecs.Get(w, id, component.TimerComponent) }
	ts := NewTimerSystem()

	ts.Update(w, 0.75)
	assert.InDelta(t, 0.25, timer(repeat).Remaining, 1e-9)
	assert.InDelta(t, 0.25, timer(once).Fraction(), 1e-9)

	ts.Update(w, 0.75)
	assert.Equal(t, 1.0, timer(repeat).Remaining)
	assert.True(t, timer(repeat).Running)
	assert.Equal(t, 1.0, timer(once).Remaining)
	assert.False(t, timer(once).Running)
	assert.Equal(t, 0.5, timer(stopped).Remaining)

	ts.Update(w, 0.75)
	assert.Equal(t, 1.0, timer(once).Remaining, "stopped timers hold")
}
