// Package calcface extends an ASCII tinyfont font with the calculator operator glyphs
// (× ÷ – ←), drawn procedurally inside the box of the base font's '+' glyph.
package calcface

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

type shape uint8

const (
	shapeTimes shape = iota + 1
	shapeDivide
	shapeDash
	shapeArrow
)

var shapes = map[rune]shape{
	'×': shapeTimes,
	'÷': shapeDivide,
	'–': shapeDash,
	'←': shapeArrow,
}

// Face implements tinyfont.Fonter.
// Concurrent access is not safe due to internal glyph reuse.
type Face struct {
	base tinyfont.Fonter
	g    glyph
}

// New wraps base. Runes other than the operator glyphs come from base unchanged.
func New(base tinyfont.Fonter) *Face {
	return &Face{base: base}
}

func (f *Face) GetYAdvance() uint8 { return f.base.GetYAdvance() }

func (f *Face) GetGlyph(r rune) tinyfont.Glypher {
	s, ok := shapes[r]
	if !ok {
		return f.base.GetGlyph(r)
	}
	info := f.base.GetGlyph('+').Info()
	info.Rune = r
	f.g = glyph{shape: s, info: info}
	return &f.g
}

// Covers reports whether r is drawn by the face itself rather than the base font.
func Covers(r rune) bool {
	_, ok := shapes[r]
	return ok
}

type glyph struct {
	shape shape
	info  tinyfont.GlyphInfo
}

func (g *glyph) Info() tinyfont.GlyphInfo { return g.info }

func (g *glyph) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	w := int16(g.info.Width)
	h := int16(g.info.Height)
	if w <= 0 || h <= 0 {
		return
	}
	x0 := x + int16(g.info.XOffset)
	y0 := y + int16(g.info.YOffset)

	side := w
	if h < side {
		side = h
	}
	// Centre a square in the '+' box.
	sx := x0 + (w-side)/2
	sy := y0 + (h-side)/2
	mid := sy + side/2
	thick := side/8 + 1

	switch g.shape {
	case shapeTimes:
		for i := int16(0); i < side; i++ {
			for t := int16(0); t < thick; t++ {
				display.SetPixel(sx+i+t, sy+i, c)
				display.SetPixel(sx+side-1-i-t, sy+i, c)
			}
		}
	case shapeDivide:
		hline(display, x0, x0+w-1, mid, thick, c)
		dot := thick + 1
		fill(display, x0+(w-dot)/2, sy, dot, dot, c)
		fill(display, x0+(w-dot)/2, sy+side-dot, dot, dot, c)
	case shapeDash:
		hline(display, x0, x0+w-1, mid, thick, c)
	case shapeArrow:
		hline(display, x0, x0+w-1, mid, thick, c)
		head := side / 2
		for i := int16(0); i <= head; i++ {
			for t := int16(0); t < thick; t++ {
				display.SetPixel(x0+i+t, mid-i, c)
				display.SetPixel(x0+i+t, mid+i, c)
			}
		}
	}
}

func hline(display drivers.Displayer, x0, x1, y, thick int16, c color.RGBA) {
	fill(display, x0, y-thick/2, x1-x0+1, thick, c)
}

func fill(display drivers.Displayer, x, y, w, h int16, c color.RGBA) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			display.SetPixel(xx, yy, c)
		}
	}
}
