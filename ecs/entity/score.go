package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/starfall/common"
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
	"github.com/milk9111/starfall/prefabs"
)

const scoreDigits = 10

// NewScoreDisplay creates one screen-space entity per decimal digit, named
// Num0 to Num9, each starting on its own digit's frame. Only the first
// spec.Shown are alive and listed in Score.Display. The created entities are
// returned even on error so the caller can clean up.
func NewScoreDisplay(w *ecs.World, sprites SpriteRegistry, spec prefabs.ScoreComponentSpec) (component.Score, []ecs.EntityID, error) {
	var score component.Score
	if sprites == nil {
		return score, nil, ErrNoSprites
	}
	if spec.Shown < 1 || spec.Shown > scoreDigits {
		return score, nil, fmt.Errorf("score: shown digits %d out of range 1-%d", spec.Shown, scoreDigits)
	}

	digits := make([]ecs.EntityID, 0, scoreDigits)
	bounds := common.NewRect(0, 0, spec.First.Width, spec.First.Height)
	for i := range scoreDigits {
		frame := spec.First
		frame.X += spec.StepX * float64(i)
		frame.Y += spec.StepY * float64(i)
		id := sprites.Register(spec.Sheet, frameRect(frame))
		score.Digits[i] = id

		e := w.CreateEntity(fmt.Sprintf("Num%d", i))
		digits = append(digits, e)

		sprite := component.NewSprite(id, bounds, false)
		sprite.Alive = i < spec.Shown
		if err := ecs.Add(w, e, component.SpriteComponent, sprite); err != nil {
			return score, digits, err
		}
		at := cp.Vector{X: spec.X + spec.Spacing*float64(i), Y: spec.Y}
		if err := ecs.Add(w, e, component.LocationComponent, component.Location{Position: at}); err != nil {
			return score, digits, err
		}
		if i < spec.Shown {
			score.Display = append(score.Display, e)
		}
	}
	return score, digits, nil
}
