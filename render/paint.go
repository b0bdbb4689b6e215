package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"
)

var glyphFace = basicfont.Face7x13

// PaintSheet draws every frame registered on sheet into a transparent image
// of the sheet's size. Frames are painted in registration order.
func PaintSheet(r *Registry, sheet string) *image.RGBA {
	var bounds image.Rectangle
	if size, ok := SheetSize[sheet]; ok {
		bounds.Max = size
	}
	for _, f := range r.All() {
		if f.Sheet == sheet {
			bounds = bounds.Union(f.Src)
		}
	}

	img := image.NewRGBA(bounds)
	for _, f := range r.All() {
		if f.Sheet == sheet {
			paintFrame(img, f)
		}
	}
	return img
}

// paintFrame fills the frame and scales its glyph into the middle half.
func paintFrame(dst *image.RGBA, f Frame) {
	look := Describe(f)
	if look.Fill.A > 0 {
		draw.Draw(dst, f.Src, image.NewUniform(look.Fill), image.Point{}, draw.Src)
	}
	if look.Glyph == ' ' {
		return
	}

	glyph := renderGlyph(look.Glyph, look.Ink)
	inset := image.Pt(f.Src.Dx()/4, f.Src.Dy()/4)
	target := image.Rectangle{Min: f.Src.Min.Add(inset), Max: f.Src.Max.Sub(inset)}
	xdraw.NearestNeighbor.Scale(dst, target, glyph, glyph.Bounds(), xdraw.Over, nil)
}

func renderGlyph(r rune, ink color.RGBA) *image.RGBA {
	adv, ok := glyphFace.GlyphAdvance(r)
	if !ok {
		adv = fixed.I(glyphFace.Advance)
	}
	img := image.NewRGBA(image.Rect(0, 0, adv.Ceil(), glyphFace.Height))
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(ink),
		Face: glyphFace,
		Dot:  fixed.P(0, glyphFace.Ascent),
	}
	d.DrawString(string(r))
	return img
}
