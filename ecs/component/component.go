package component

import "github.com/milk9111/starfall/ecs"

// Types is the closed set of component types every game World is built from.
// Each component file registers its type at init; NewWorld seals the set.
var Types = ecs.NewTypeSet()
