// Package assets turns generated sprite sheets and synthesized sounds into
// ebiten images and audio players.
package assets

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/starfall/ecs/component"
	"github.com/milk9111/starfall/render"
)

type paintedSheet struct {
	image *ebiten.Image
	// upTo is the registry length when the sheet was painted; later ids are
	// not on it.
	upTo int
}

// Sheets holds one ebiten image per sprite sheet and hands out sub-images
// per sprite id.
type Sheets struct {
	registry *render.Registry
	sheets   map[string]paintedSheet
	frames   map[component.SpriteID]*ebiten.Image
}

func NewSheets(registry *render.Registry) *Sheets {
	return &Sheets{
		registry: registry,
		sheets:   make(map[string]paintedSheet),
		frames:   make(map[component.SpriteID]*ebiten.Image),
	}
}

// Image returns the sub-image for a sprite, painting its sheet on first use
// and again when the sprite was registered after the last paint.
func (s *Sheets) Image(id component.SpriteID) *ebiten.Image {
	if img, ok := s.frames[id]; ok {
		return img
	}
	f, ok := s.registry.Frame(id)
	if !ok {
		return nil
	}
	sheet, ok := s.sheets[f.Sheet]
	if !ok || int(id) >= sheet.upTo {
		if ok {
			sheet.image.Deallocate()
		}
		sheet = paintedSheet{
			image: ebiten.NewImageFromImage(render.PaintSheet(s.registry, f.Sheet)),
			upTo:  s.registry.Len(),
		}
		s.sheets[f.Sheet] = sheet
		for cached := range s.frames {
			if g, _ := s.registry.Frame(cached); g.Sheet == f.Sheet {
				delete(s.frames, cached)
			}
		}
	}
	img, ok := sheet.image.SubImage(f.Src).(*ebiten.Image)
	if !ok {
		return nil
	}
	s.frames[id] = img
	return img
}
