package render

import (
	"image"
	"image/color"
)

// Sheet names used by prefabs and maps. The sheets are generated at start-up
// rather than loaded, so every frame's look is derived from where it sits.
const (
	TilesSheet       = "tiles"
	CharactersSheet  = "characters"
	BackgroundsSheet = "backgrounds"

	CellSize = 64
)

// SheetSize is the pixel size of each generated sheet.
var SheetSize = map[string]image.Point{
	TilesSheet:       {X: 16 * CellSize, Y: 16 * CellSize},
	CharactersSheet:  {X: 16 * CellSize, Y: 2 * CellSize},
	BackgroundsSheet: {X: 4 * CellSize, Y: CellSize},
}

// Well-known frames on the tiles sheet.
var (
	StarFrame = image.Rect(640, 320, 704, 384)
)

// DigitFrame is the frame showing digit d, stacked upwards from (832, 832).
func DigitFrame(d int) image.Rectangle {
	y := 832 - CellSize*d
	return image.Rect(832, y, 832+CellSize, y+CellSize)
}

// Look is how a frame is painted: a fill colour and a glyph drawn over it.
// Terminal hosts use the glyph alone.
type Look struct {
	Glyph rune
	Fill  color.RGBA
	Ink   color.RGBA
}

var (
	white  = color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}
	yellow = color.RGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}
	green  = color.RGBA{R: 0x3c, G: 0xb3, B: 0x71, A: 0xff}
	none   = color.RGBA{}

	groundGlyphs  = []rune{'#', '=', '^', '%'}
	groundPalette = []color.RGBA{
		{R: 0x8b, G: 0x5a, B: 0x2b, A: 0xff},
		{R: 0x6b, G: 0x8e, B: 0x23, A: 0xff},
		{R: 0x70, G: 0x70, B: 0x80, A: 0xff},
		{R: 0xa0, G: 0x52, B: 0x2d, A: 0xff},
	}
	skyPalette = []color.RGBA{
		{R: 0x87, G: 0xce, B: 0xeb, A: 0xff},
		{R: 0x5f, G: 0x9e, B: 0xd8, A: 0xff},
		{R: 0x41, G: 0x69, B: 0xe1, A: 0xff},
		{R: 0xf5, G: 0xf5, B: 0xf5, A: 0xff},
	}
)

// Describe returns the look of a frame.
func Describe(f Frame) Look {
	cell := image.Pt(f.Src.Min.X/CellSize, f.Src.Min.Y/CellSize)
	switch f.Sheet {
	case TilesSheet:
		if f.Src.Min == StarFrame.Min {
			return Look{Glyph: '*', Fill: none, Ink: yellow}
		}
		for d := range 10 {
			if f.Src.Min == DigitFrame(d).Min {
				return Look{Glyph: rune('0' + d), Fill: none, Ink: white}
			}
		}
		return Look{
			Glyph: groundGlyphs[cell.X%len(groundGlyphs)],
			Fill:  groundPalette[(cell.X+cell.Y)%len(groundPalette)],
			Ink:   white,
		}
	case CharactersSheet:
		return Look{Glyph: '@', Fill: none, Ink: green}
	case BackgroundsSheet:
		glyph := ' '
		if cell.X == len(skyPalette)-1 {
			glyph = '~'
		}
		return Look{Glyph: glyph, Fill: skyPalette[cell.X%len(skyPalette)], Ink: white}
	}
	return Look{Glyph: '?', Fill: none, Ink: white}
}
