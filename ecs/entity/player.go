package entity

import (
	"fmt"

	"github.com/milk9111/starfall/ecs"
)

// NewPlayer builds the player, and its score display, from player.yaml.
func NewPlayer(w *ecs.World, opts Options) (ecs.EntityID, error) {
	id, err := BuildEntity(w, "player.yaml", opts)
	if err != nil {
		return ecs.NoEntity, fmt.Errorf("player: %w", err)
	}
	return id, nil
}
