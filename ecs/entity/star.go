package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
	"github.com/milk9111/starfall/prefabs"
)

// NewStar places a collectible built from <kind>.yaml at a fixed position.
func NewStar(w *ecs.World, kind string, at cp.Vector, opts Options) (ecs.EntityID, error) {
	id, err := BuildEntity(w, kind+".yaml", opts)
	if err != nil {
		return ecs.NoEntity, fmt.Errorf("star: %w", err)
	}
	loc, ok := ecs.TryGet(w, id, component.LocationComponent)
	if !ok {
		w.RemoveEntity(id)
		return ecs.NoEntity, fmt.Errorf("star: %s.yaml has no location", kind)
	}
	loc.Position = at
	return id, nil
}

// PrefabSprite registers the sprite frame of a prefab without building it,
// so spawners can hand the id to the entities they create.
func PrefabSprite(sprites SpriteRegistry, prefabPath string) (component.SpriteID, error) {
	if sprites == nil {
		return component.NoSprite, ErrNoSprites
	}
	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return component.NoSprite, fmt.Errorf("prefab sprite: %w", err)
	}
	raw, ok := spec.Components[component.SpriteComponent.Name()]
	if !ok {
		return component.NoSprite, fmt.Errorf("prefab sprite: %q has no sprite", prefabPath)
	}
	sprite, err := prefabs.DecodeComponentSpec[prefabs.SpriteComponentSpec](raw)
	if err != nil {
		return component.NoSprite, fmt.Errorf("prefab sprite: %q: %w", prefabPath, err)
	}
	return sprites.Register(sprite.Sheet, frameRect(sprite.Frame)), nil
}
