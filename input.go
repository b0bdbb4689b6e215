package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/starfall/ecs/component"
	"github.com/milk9111/starfall/ecs/entity"
)

var keyBindings = map[component.Key][]ebiten.Key{
	component.KeyLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	component.KeyRight: {ebiten.KeyD, ebiten.KeyArrowRight},
	component.KeyJump:  {ebiten.KeySpace, ebiten.KeyW, ebiten.KeyArrowUp},
	component.KeyDown:  {ebiten.KeyS, ebiten.KeyArrowDown},
}

// pollKeys copies the held state of every bound key into the player's input.
func pollKeys(scene *entity.Scene) {
	for k, keys := range keyBindings {
		down := false
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				down = true
				break
			}
		}
		scene.SetKey(k, down)
	}
}
