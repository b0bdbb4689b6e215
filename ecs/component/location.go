package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/starfall/ecs"
)

// Location is the authoritative world position of an entity. Sprites and
// collision boxes are placed relative to it.
type Location struct {
	Position cp.Vector
}

var LocationComponent = ecs.Register[Location](Types, "location")
