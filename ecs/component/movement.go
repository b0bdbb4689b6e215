package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/starfall/ecs"
)

const DefaultMaxSpeed = 300.0

type Movement struct {
	Velocity cp.Vector
	MaxSpeed float64
}

func NewMovement(velocity cp.Vector, maxSpeed float64) Movement {
	if maxSpeed <= 0 {
		maxSpeed = DefaultMaxSpeed
	}
	return Movement{Velocity: velocity, MaxSpeed: maxSpeed}
}

var MovementComponent = ecs.Register[Movement](Types, "movement")
