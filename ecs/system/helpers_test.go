package system

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/starfall/common"
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
	"github.com/stretchr/testify/require"
)

type soundLog []string

func (s *soundLog) Play(name string) {
	*s = append(*s, name)
}

type spriteSizes map[component.SpriteID]cp.Vector

func (s spriteSizes) SpriteSize(id component.SpriteID) (float64, float64, bool) {
	size, ok := s[id]
	return size.X, size.Y, ok
}

func newWorld(t *testing.T, mode ecs.Mode) (*ecs.World, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	w, err := ecs.NewWorld(component.Types,
		ecs.WithMode(mode),
		ecs.WithLogger(slog.New(slog.NewTextHandler(&logs, nil))),
	)
	require.NoError(t, err)
	return w, &logs
}

// addBox creates an entity whose location is the top-left of its box.
func addBox(t *testing.T, w *ecs.World, name string, box common.Rect, static bool) ecs.EntityID {
	t.Helper()
	id := w.CreateEntity(name)
	require.NoError(t, ecs.Add(w, id, component.LocationComponent, component.Location{Position: box.Min}))
	require.NoError(t, ecs.Add(w, id, component.CollisionComponent,
		component.NewCollision(common.NewRect(0, 0, box.Width, box.Height), static)))
	return id
}

func addMover(t *testing.T, w *ecs.World, name string, box common.Rect, velocity cp.Vector) ecs.EntityID {
	t.Helper()
	id := addBox(t, w, name, box, false)
	require.NoError(t, ecs.Add(w, id, component.MovementComponent, component.NewMovement(velocity, 0)))
	return id
}

// addPlayer makes id the player by giving it input, a score and acceleration.
func addPlayer(t *testing.T, w *ecs.World, box common.Rect, velocity cp.Vector) ecs.EntityID {
	t.Helper()
	id := addMover(t, w, "player", box, velocity)
	require.NoError(t, ecs.Add(w, id, component.InputComponent, component.Input{}))
	require.NoError(t, ecs.Add(w, id, component.ScoreComponent, component.Score{}))
	require.NoError(t, ecs.Add(w, id, component.AccelerationComponent, component.Acceleration{Accel: cp.Vector{X: 600}}))
	return id
}

func addCamera(t *testing.T, w *ecs.World) ecs.EntityID {
	t.Helper()
	id := w.CreateEntity("main_camera")
	require.NoError(t, ecs.Add(w, id, component.CameraComponent, component.Camera{UnitsPerPixel: 1, Viewport: cp.Vector{X: 1000, Y: 500}}))
	require.NoError(t, ecs.Add(w, id, component.CameraShakeComponent, component.NewCameraShake(5, 2, 5, 2.1)))
	require.NoError(t, ecs.Add(w, id, component.TimerComponent, component.Timer{Total: 0.2, Remaining: 0.2}))
	return id
}

func location(w *ecs.World, id ecs.EntityID) cp.Vector {
	return ecs.Get(w, id, component.LocationComponent).Position
}

func velocity(w *ecs.World, id ecs.EntityID) cp.Vector {
	return ecs.Get(w, id, component.MovementComponent).Velocity
}

func collision(w *ecs.World, id ecs.EntityID) *component.Collision {
	return ecs.Get(w, id, component.CollisionComponent)
}
