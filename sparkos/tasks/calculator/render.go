package calculator

import (
	"image/color"

	"pocketcalc/hal"
	"pocketcalc/sparkos/calc"
	"pocketcalc/sparkos/fonts/calcface"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
)

var (
	colorBG       = color.RGBA{R: 0x10, G: 0x12, B: 0x16, A: 0xFF}
	colorPanel    = color.RGBA{R: 0xB8, G: 0xC4, B: 0xA8, A: 0xFF}
	colorPanelFG  = color.RGBA{R: 0x12, G: 0x16, B: 0x10, A: 0xFF}
	colorError    = color.RGBA{R: 0xA0, G: 0x10, B: 0x10, A: 0xFF}
	colorTitle    = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xFF}
	colorKey      = color.RGBA{R: 0x2B, G: 0x33, B: 0x44, A: 0xFF}
	colorKeyOp    = color.RGBA{R: 0xC0, G: 0x6A, B: 0x1A, A: 0xFF}
	colorKeyClear = color.RGBA{R: 0x8A, G: 0x22, B: 0x22, A: 0xFF}
	colorKeyFG    = color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF}
)

const (
	margin      = 8
	gap         = 6
	titleH      = 18
	panelH      = 56
	panelInsetX = 10
)

// face draws the calculator: a title, the display panel and the keypad grid.
type face struct {
	fb    hal.Framebuffer
	d     *fbDisplay
	big   tinyfont.Fonter
	small tinyfont.Fonter
}

func newFace(fb hal.Framebuffer) *face {
	return &face{
		fb:    fb,
		d:     newFBDisplay(fb),
		big:   calcface.New(&freemono.Bold12pt7b),
		small: &freemono.Regular9pt7b,
	}
}

func (f *face) draw(display string) {
	if f.fb == nil || f.fb.Format() != hal.PixelFormatRGB565 || f.fb.Buffer() == nil {
		return
	}
	w, h := int16(f.fb.Width()), int16(f.fb.Height())

	_ = f.d.FillRectangle(0, 0, w, h, colorBG)
	tinyfont.WriteLine(f.d, f.small, margin, titleH-4, "pocketcalc", colorTitle)

	panelY := int16(margin + titleH)
	_ = f.d.FillRectangle(margin, panelY, w-2*margin, panelH, colorPanel)
	fg := colorPanelFG
	if display == calc.ErrorMarker {
		fg = colorError
	}
	textW, _ := tinyfont.LineWidth(f.big, display)
	x := w - margin - panelInsetX - int16(textW)
	baseline := panelY + panelH/2 + int16(f.big.GetYAdvance())/3
	tinyfont.WriteLine(f.d, f.big, x, baseline, display, fg)

	gridY := panelY + panelH + gap
	f.drawKeypad(margin, gridY, w-2*margin, h-gridY-margin)

	_ = f.d.Display()
}

func (f *face) drawKeypad(x0, y0, w, h int16) {
	cellW := (w - gap*(calc.ButtonCols-1)) / calc.ButtonCols
	cellH := (h - gap*(calc.ButtonRows-1)) / calc.ButtonRows
	if cellW <= 0 || cellH <= 0 {
		return
	}

	for _, btn := range calc.Buttons {
		span := int16(btn.ColSpan)
		bx := x0 + int16(btn.Col)*(cellW+gap)
		by := y0 + int16(btn.Row)*(cellH+gap)
		bw := cellW*span + gap*(span-1)
		_ = f.d.FillRectangle(bx, by, bw, cellH, keyColor(btn.Label))

		lw, _ := tinyfont.LineWidth(f.big, btn.Label)
		lx := bx + (bw-int16(lw))/2
		ly := by + cellH/2 + int16(f.big.GetYAdvance())/3
		tinyfont.WriteLine(f.d, f.big, lx, ly, btn.Label, colorKeyFG)
	}
}

func keyColor(sym string) color.RGBA {
	switch calc.Classify(sym) {
	case calc.ClassClear, calc.ClassDelete:
		return colorKeyClear
	case calc.ClassOperator, calc.ClassPercent, calc.ClassEquals:
		return colorKeyOp
	default:
		return colorKey
	}
}

type fbDisplay struct {
	fb hal.Framebuffer
}

func newFBDisplay(fb hal.Framebuffer) *fbDisplay {
	return &fbDisplay{fb: fb}
}

func (d *fbDisplay) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	pixel := rgb565From888(c.R, c.G, c.B)
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d *fbDisplay) Display() error {
	if d.fb == nil {
		return nil
	}
	return d.fb.Present()
}

func (d *fbDisplay) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return nil
	}
	buf := d.fb.Buffer()
	stride := d.fb.StrideBytes()
	x0, y0 := clampInt(int(x), 0, d.fb.Width()), clampInt(int(y), 0, d.fb.Height())
	x1, y1 := clampInt(int(x)+int(width), 0, d.fb.Width()), clampInt(int(y)+int(height), 0, d.fb.Height())

	pixel := rgb565From888(c.R, c.G, c.B)
	lo, hi := byte(pixel), byte(pixel>>8)
	for yy := y0; yy < y1; yy++ {
		row := yy * stride
		for xx := x0; xx < x1; xx++ {
			off := row + xx*2
			if off+1 >= len(buf) {
				break
			}
			buf[off] = lo
			buf[off+1] = hi
		}
	}
	return nil
}

func (d *fbDisplay) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}

func rgb565From888(r, g, b uint8) uint16 {
	return (uint16(r)&0xF8)<<8 | (uint16(g)&0xFC)<<3 | uint16(b)>>3
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
