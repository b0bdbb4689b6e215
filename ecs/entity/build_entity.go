package entity

import (
	"errors"
	"fmt"
	"image"
	"path"
	"sort"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/starfall/common"
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
	"github.com/milk9111/starfall/prefabs"
)

// SpriteRegistry hands out sprite ids for sheet frames.
type SpriteRegistry interface {
	Register(sheet string, src image.Rectangle) component.SpriteID
	SpriteSize(id component.SpriteID) (w, h float64, ok bool)
}

var (
	ErrNoSprites      = errors.New("entity: sprite registry is nil")
	ErrNoCollisionBox = errors.New("entity: collision box needs a box or a sprite")
)

// Options carries what component builders need from the host.
type Options struct {
	Sprites SpriteRegistry
	// Viewport is the window size in pixels, copied into cameras.
	Viewport cp.Vector
}

type buildContext struct {
	PrefabPath string
	Options

	spriteBounds *common.Rect
	// children are extra entities made while building, removed on failure.
	children []ecs.EntityID
}

type componentBuildFn func(w *ecs.World, e ecs.EntityID, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	component.LocationComponent.Name():       addLocation,
	component.MovementComponent.Name():       addMovement,
	component.AccelerationComponent.Name():   addAcceleration,
	component.InputComponent.Name():          addInput,
	component.SpriteComponent.Name():         addSprite,
	component.CollisionComponent.Name():      addCollision,
	component.ScoreComponent.Name():          addScore,
	component.CameraComponent.Name():         addCamera,
	component.CameraFollowerComponent.Name(): addCameraFollower,
	component.TimerComponent.Name():          addTimer,
	component.CameraShakeComponent.Name():    addCameraShake,
}

// collision defaults to the sprite bounds, so sprite comes first.
var componentBuildOrder = []string{
	component.LocationComponent.Name(),
	component.MovementComponent.Name(),
	component.AccelerationComponent.Name(),
	component.InputComponent.Name(),
	component.SpriteComponent.Name(),
	component.CollisionComponent.Name(),
	component.ScoreComponent.Name(),
	component.CameraComponent.Name(),
	component.CameraFollowerComponent.Name(),
	component.TimerComponent.Name(),
	component.CameraShakeComponent.Name(),
}

// BuildEntity creates an entity from a prefab file.
func BuildEntity(w *ecs.World, prefabPath string, opts Options) (ecs.EntityID, error) {
	if w == nil {
		return ecs.NoEntity, fmt.Errorf("build entity: world is nil")
	}
	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return ecs.NoEntity, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	return Build(w, prefabPath, spec, opts)
}

// Build creates an entity from a decoded prefab. Components are added in a
// fixed order; on any failure the entity, and anything made for it, is
// removed again.
func Build(w *ecs.World, prefabPath string, spec prefabs.EntityBuildSpec, opts Options) (ecs.EntityID, error) {
	if len(spec.Components) == 0 {
		return ecs.NoEntity, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}
	name := spec.Name
	if name == "" {
		name = strings.TrimSuffix(path.Base(prefabPath), path.Ext(prefabPath))
	}

	var unknown []string
	for k := range spec.Components {
		if _, ok := componentRegistry[k]; !ok {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return ecs.NoEntity, fmt.Errorf("build entity: %q: no builder for components %s", prefabPath, strings.Join(unknown, ", "))
	}

	e := w.CreateEntity(name)
	ctx := &buildContext{PrefabPath: prefabPath, Options: opts}
	for _, key := range componentBuildOrder {
		raw, ok := spec.Components[key]
		if !ok {
			continue
		}
		if err := componentRegistry[key](w, e, raw, ctx); err != nil {
			for _, child := range ctx.children {
				w.RemoveEntity(child)
			}
			w.RemoveEntity(e)
			return ecs.NoEntity, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, key, err)
		}
	}
	return e, nil
}

func addLocation(w *ecs.World, e ecs.EntityID, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.LocationComponentSpec](raw)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.LocationComponent, component.Location{Position: cp.Vector{X: spec.X, Y: spec.Y}})
}

func addMovement(w *ecs.World, e ecs.EntityID, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.MovementComponentSpec](raw)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.MovementComponent, component.NewMovement(cp.Vector{X: spec.VX, Y: spec.VY}, spec.MaxSpeed))
}

func addAcceleration(w *ecs.World, e ecs.EntityID, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.AccelerationComponentSpec](raw)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.AccelerationComponent, component.Acceleration{Accel: cp.Vector{X: spec.X, Y: spec.Y}})
}

func addInput(w *ecs.World, e ecs.EntityID, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent, component.Input{})
}

func addSprite(w *ecs.World, e ecs.EntityID, raw any, ctx *buildContext) error {
	if ctx.Sprites == nil {
		return ErrNoSprites
	}
	spec, err := prefabs.DecodeComponentSpec[prefabs.SpriteComponentSpec](raw)
	if err != nil {
		return err
	}
	id := ctx.Sprites.Register(spec.Sheet, frameRect(spec.Frame))

	bounds := rect(spec.Bounds)
	if spec.Bounds == (prefabs.RectSpec{}) {
		bounds = common.NewRect(0, -spec.Frame.Height, spec.Frame.Width, spec.Frame.Height)
	}
	ctx.spriteBounds = &bounds
	return ecs.Add(w, e, component.SpriteComponent, component.NewSprite(id, bounds, !spec.ScreenSpace))
}

func addCollision(w *ecs.World, e ecs.EntityID, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.CollisionComponentSpec](raw)
	if err != nil {
		return err
	}
	box := rect(spec.Box)
	if spec.Box == (prefabs.RectSpec{}) {
		if ctx.spriteBounds == nil {
			return ErrNoCollisionBox
		}
		box = *ctx.spriteBounds
	}
	return ecs.Add(w, e, component.CollisionComponent, component.NewCollision(box, spec.Static))
}

func addScore(w *ecs.World, e ecs.EntityID, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.ScoreComponentSpec](raw)
	if err != nil {
		return err
	}
	score, digits, err := NewScoreDisplay(w, ctx.Sprites, spec)
	ctx.children = append(ctx.children, digits...)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.ScoreComponent, score)
}

func addCamera(w *ecs.World, e ecs.EntityID, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.CameraComponentSpec](raw)
	if err != nil {
		return err
	}
	upp := spec.UnitsPerPixel
	if upp <= 0 {
		upp = 1
	}
	pos := cp.Vector{X: spec.X, Y: spec.Y}
	return ecs.Add(w, e, component.CameraComponent, component.Camera{
		Position:      pos,
		UnitsPerPixel: upp,
		Viewport:      ctx.Viewport,
		View:          pos,
	})
}

func addCameraFollower(w *ecs.World, e ecs.EntityID, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.CameraFollowerComponentSpec](raw)
	if err != nil {
		return err
	}
	target, ok := w.FindByName(spec.Target)
	if !ok {
		return fmt.Errorf("camera follower: target %q not found", spec.Target)
	}
	return ecs.Add(w, e, component.CameraFollowerComponent, component.CameraFollower{
		Target:  target,
		FollowX: spec.FollowX,
		FollowY: spec.FollowY,
	})
}

func addTimer(w *ecs.World, e ecs.EntityID, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.TimerComponentSpec](raw)
	if err != nil {
		return err
	}
	timer := component.NewTimer(spec.Duration, spec.Restart)
	timer.Running = spec.Running && spec.Duration > 0
	return ecs.Add(w, e, component.TimerComponent, timer)
}

func addCameraShake(w *ecs.World, e ecs.EntityID, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.CameraShakeComponentSpec](raw)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.CameraShakeComponent,
		component.NewCameraShake(spec.MagnitudeX, spec.FrequencyX, spec.MagnitudeY, spec.FrequencyY))
}

func rect(r prefabs.RectSpec) common.Rect {
	return common.NewRect(r.X, r.Y, r.Width, r.Height)
}

func frameRect(r prefabs.RectSpec) image.Rectangle {
	x, y := int(r.X), int(r.Y)
	return image.Rect(x, y, x+int(r.Width), y+int(r.Height))
}
