package component

import "github.com/milk9111/starfall/ecs"

// Score is carried by the player. Display lists the digit entities, most
// significant first, and Digits maps 0-9 to sprites.
type Score struct {
	Value   int
	Display []ecs.EntityID
	Digits  [10]SpriteID
}

var ScoreComponent = ecs.Register[Score](Types, "score")
