package system

import (
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
)

// ScoreSystem shows the first score it finds on its digit entities, padded
// with leading zeros and capped at Tuning.ScoreCap.
type ScoreSystem struct {
	tuning *Tuning
}

func NewScoreSystem(tuning *Tuning) *ScoreSystem {
	return &ScoreSystem{tuning: tuningOrDefault(tuning)}
}

func (s *ScoreSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}
	for _, score := range ecs.With(w, component.ScoreComponent) {
		if len(score.Display) == 0 {
			continue
		}
		digits := Digits(min(score.Value, s.tuning.ScoreCap), len(score.Display))
		for i, display := range score.Display {
			if !w.ValidEntity(display) {
				continue
			}
			sprite := ecs.Get(w, display, component.SpriteComponent)
			if sprite == nil {
				continue
			}
			sprite.ID = score.Digits[digits[i]]
		}
		return
	}
}

// Digits splits a non-negative value into n decimal digits, most significant
// first. Higher digits that do not fit are dropped.
func Digits(value, n int) []int {
	if value < 0 {
		value = 0
	}
	digits := make([]int, n)
	for i := n - 1; i >= 0; i-- {
		digits[i] = value % 10
		value /= 10
	}
	return digits
}
