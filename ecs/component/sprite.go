package component

import (
	"github.com/milk9111/starfall/common"
	"github.com/milk9111/starfall/ecs"
)

// SpriteID is an opaque handle into the host's sprite registry.
type SpriteID int

const NoSprite SpriteID = -1

type Sprite struct {
	ID SpriteID
	// Bounds is relative to the entity location for world space sprites.
	Bounds     common.Rect
	WorldSpace bool
	Alive      bool
}

func NewSprite(id SpriteID, bounds common.Rect, worldSpace bool) Sprite {
	return Sprite{ID: id, Bounds: bounds, WorldSpace: worldSpace, Alive: true}
}

var SpriteComponent = ecs.Register[Sprite](Types, "sprite")
