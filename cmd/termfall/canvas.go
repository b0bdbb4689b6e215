package main

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/starfall/render"
)

type cell struct {
	glyph rune
	fg    color.RGBA
	bg    color.RGBA
}

// canvas maps window pixels onto terminal cells. Each cell covers
// cellW x cellH pixels of the game window.
type canvas struct {
	cols, rows   int
	cellW, cellH float64
	cells        []cell
	sky          color.RGBA
}

func newCanvas(cols, rows int, windowW, windowH float64, sky color.RGBA) *canvas {
	c := &canvas{sky: sky}
	c.resize(cols, rows, windowW, windowH)
	return c
}

func (c *canvas) resize(cols, rows int, windowW, windowH float64) {
	c.cols, c.rows = max(cols, 1), max(rows, 1)
	c.cellW = windowW / float64(c.cols)
	c.cellH = windowH / float64(c.rows)
	c.cells = make([]cell, c.cols*c.rows)
}

func (c *canvas) clear() {
	for i := range c.cells {
		c.cells[i] = cell{glyph: ' ', bg: c.sky}
	}
}

func (c *canvas) at(x, y int) *cell {
	if x < 0 || y < 0 || x >= c.cols || y >= c.rows {
		return nil
	}
	return &c.cells[y*c.cols+x]
}

// paint draws ops in order. Filled frames cover every cell they touch;
// transparent frames put their glyph on the centre cell only.
func (c *canvas) paint(ops []render.DrawOp) {
	for _, op := range ops {
		look := render.Describe(op.Frame)
		bb := op.Dst.BB()
		x0 := int(math.Floor(bb.L / c.cellW))
		y0 := int(math.Floor(bb.B / c.cellH))
		x1 := max(int(math.Ceil(bb.R/c.cellW))-1, x0)
		y1 := max(int(math.Ceil(bb.T/c.cellH))-1, y0)

		if look.Fill.A == 0 {
			cc := c.at((x0+x1)/2, (y0+y1)/2)
			if cc != nil && look.Glyph != ' ' {
				cc.glyph, cc.fg = look.Glyph, look.Ink
			}
			continue
		}
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				if cc := c.at(x, y); cc != nil {
					*cc = cell{glyph: look.Glyph, fg: look.Ink, bg: look.Fill}
				}
			}
		}
	}
}

// text writes s on row y starting at column x.
func (c *canvas) text(x, y int, s string, fg color.RGBA) {
	for _, r := range s {
		if cc := c.at(x, y); cc != nil {
			cc.glyph, cc.fg = r, fg
		}
		x++
	}
}

func (c *canvas) flush(screen tcell.Screen) {
	for y := range c.rows {
		for x := range c.cols {
			cc := c.cells[y*c.cols+x]
			style := tcell.StyleDefault.Foreground(rgb(cc.fg)).Background(rgb(cc.bg))
			screen.SetContent(x, y, cc.glyph, nil, style)
		}
	}
	screen.Show()
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
