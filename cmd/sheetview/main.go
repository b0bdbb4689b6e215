// Sheetview previews the generated sprite sheets, cycling through every
// distinct frame the level registers on one sheet.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"log/slog"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/entity"
	"github.com/milk9111/starfall/prefabs"
	"github.com/milk9111/starfall/render"
	"github.com/milk9111/starfall/sound"
)

const viewSize = 512

type viewer struct {
	sheet       string
	frames      []*ebiten.Image
	rects       []image.Rectangle
	current     int
	tick        int
	ticksPerFrm int
}

func (v *viewer) Update() error {
	if len(v.frames) <= 1 {
		return nil
	}
	v.tick++
	if v.tick >= v.ticksPerFrm {
		v.tick = 0
		v.current = (v.current + 1) % len(v.frames)
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x20, 0x20, 0x20, 0xff})
	if len(v.frames) == 0 {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("no frames on sheet %q", v.sheet))
		return
	}
	frame := v.frames[v.current]
	fw, fh := frame.Bounds().Dx(), frame.Bounds().Dy()
	scale := min(float64(viewSize)/float64(fw), float64(viewSize)/float64(fh)) / 2
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate((viewSize-float64(fw)*scale)/2, (viewSize-float64(fh)*scale)/2)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(frame, op)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s %d/%d %v", v.sheet, v.current+1, len(v.frames), v.rects[v.current]))
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewSize, viewSize
}

// distinctFrames returns the frames registered on sheet, first
// registration order, without repeats.
func distinctFrames(sprites *render.Registry, sheet string) []image.Rectangle {
	var rects []image.Rectangle
	for _, f := range sprites.All() {
		if f.Sheet == sheet && !slices.Contains(rects, f.Src) {
			rects = append(rects, f.Src)
		}
	}
	return rects
}

func loadFrames(sprites *render.Registry, sheet string, fps int) ([]*ebiten.Image, []image.Rectangle, int) {
	rects := distinctFrames(sprites, sheet)
	img := ebiten.NewImageFromImage(render.PaintSheet(sprites, sheet))
	frames := make([]*ebiten.Image, len(rects))
	for i, r := range rects {
		frames[i] = img.SubImage(r).(*ebiten.Image)
	}
	ticks := 1
	if fps > 0 {
		ticks = max(60/fps, 1)
	}
	return frames, rects, ticks
}

func main() {
	sheet := flag.String("sheet", render.TilesSheet, "sheet to preview")
	fps := flag.Int("fps", 2, "frames per second")
	flag.Parse()

	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		log.Fatal(err)
	}
	sprites := render.NewRegistry()
	if _, err := entity.NewScene(entity.SceneConfig{
		Game:    spec,
		Sprites: sprites,
		Sound:   sound.Silent{},
		Mode:    ecs.Lenient,
		Logger:  slog.Default(),
	}); err != nil {
		log.Fatal(err)
	}

	frames, rects, ticks := loadFrames(sprites, *sheet, *fps)
	v := &viewer{sheet: *sheet, frames: frames, rects: rects, ticksPerFrm: ticks}
	ebiten.SetWindowSize(viewSize, viewSize)
	ebiten.SetWindowTitle("Sheet preview: " + *sheet)
	if err := ebiten.RunGame(v); err != nil {
		log.Fatal(err)
	}
}
