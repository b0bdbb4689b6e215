package entity

import (
	"fmt"

	"github.com/milk9111/starfall/ecs"
)

// NewCamera builds the camera from camera.yaml. Its follow target must
// already exist.
func NewCamera(w *ecs.World, opts Options) (ecs.EntityID, error) {
	id, err := BuildEntity(w, "camera.yaml", opts)
	if err != nil {
		return ecs.NoEntity, fmt.Errorf("camera: %w", err)
	}
	return id, nil
}
