package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/starfall/ecs"
)

// Acceleration is how fast input can change an entity's velocity.
type Acceleration struct {
	Accel cp.Vector
}

var AccelerationComponent = ecs.Register[Acceleration](Types, "acceleration")
