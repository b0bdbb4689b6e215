package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
	"github.com/milk9111/starfall/ecs/entity"
)

var (
	staticBoxColor  = color.RGBA{R: 0xff, G: 0x40, B: 0x40, A: 0xff}
	dynamicBoxColor = color.RGBA{R: 0x40, G: 0xff, B: 0x40, A: 0xff}
	contactColor    = color.RGBA{R: 0xff, G: 0xff, B: 0x00, A: 0xff}
)

func drawCollisionBoxes(screen *ebiten.Image, scene *entity.Scene) {
	cam := scene.CameraView()
	if cam == nil {
		return
	}
	scale := cam.UnitsPerPixel
	if scale <= 0 {
		scale = 1
	}
	for _, col := range ecs.With(scene.World, component.CollisionComponent) {
		at := cam.WorldToScreen(col.Current.Min)
		w, h := float32(col.Current.Width/scale), float32(col.Current.Height/scale)
		clr := dynamicBoxColor
		if col.Static {
			clr = staticBoxColor
		}
		if col.Top || col.Bottom || col.Left || col.Right {
			clr = contactColor
		}
		vector.StrokeRect(screen, float32(at.X), float32(at.Y), w, h, 1, clr, false)
	}
}
