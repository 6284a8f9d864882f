package hal

import (
	"bytes"
	"context"
	"image"
	"io"
	"testing"
	"time"
)

func TestRGB565RoundTrip(t *testing.T) {
	tests := []struct {
		r, g, b uint8
	}{
		{0, 0, 0},
		{255, 255, 255},
		{255, 0, 0},
		{0, 255, 0},
		{0, 0, 255},
	}
	for _, tt := range tests {
		r, g, b := rgb888From565(rgb565(tt.r, tt.g, tt.b))
		if r != tt.r || g != tt.g || b != tt.b {
			t.Fatalf("rgb(%d,%d,%d) -> (%d,%d,%d)", tt.r, tt.g, tt.b, r, g, b)
		}
	}
}

func TestFramebufferCopyRGBA(t *testing.T) {
	fb := newHostFramebuffer(4, 3)
	fb.ClearRGB(255, 0, 0)

	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	fb.copyRGBA(img)
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 255 || img.Pix[i+1] != 0 || img.Pix[i+2] != 0 || img.Pix[i+3] != 255 {
			t.Fatalf("pixel %d = %v, want opaque red", i/4, img.Pix[i:i+4])
		}
	}
}

func TestKeyboardTypeRune(t *testing.T) {
	k := newHostKeyboard()
	for _, r := range "7\n\b" {
		if !k.typeRune(r) {
			t.Fatalf("typeRune(%q) rejected", r)
		}
	}

	want := []KeyEvent{
		{Press: true, Rune: '7'},
		{Press: true, Code: KeyEnter},
		{Press: false, Code: KeyEnter},
		{Press: true, Code: KeyBackspace},
		{Press: false, Code: KeyBackspace},
	}
	for i, w := range want {
		select {
		case got := <-k.Events():
			if got != w {
				t.Fatalf("event %d = %+v, want %+v", i, got, w)
			}
		default:
			t.Fatalf("event %d missing", i)
		}
	}
}

func TestHostTimeCatchUp(t *testing.T) {
	ht := newHostTime()
	start := time.Unix(100, 0)
	ht.catchUp(start)
	ht.catchUp(start.Add(5 * time.Millisecond))

	if ht.seq != 6 {
		t.Fatalf("seq=%d, want 6", ht.seq)
	}
}

func TestRunHeadless_TypesScript(t *testing.T) {
	h := newHost(io.Discard)

	var steps int
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := runHeadless(ctx, h, func(HAL) func() error {
		return func() error { steps++; return nil }
	}, HeadlessConfig{Enabled: true, Hz: 1000, Ticks: 10, Keys: "1+2="})
	if err != nil {
		t.Fatalf("runHeadless: %v", err)
	}
	if steps != 10 {
		t.Fatalf("steps=%d, want 10", steps)
	}

	var typed []rune
	for len(h.kbd.ch) > 0 {
		typed = append(typed, (<-h.kbd.ch).Rune)
	}
	if string(typed) != "1+2=" {
		t.Fatalf("typed %q, want %q", string(typed), "1+2=")
	}
}

func TestHostLogger(t *testing.T) {
	var buf bytes.Buffer
	h := newHost(&buf)
	h.Logger().WriteLineString("a")
	h.Logger().WriteLineBytes([]byte("b"))
	if got := buf.String(); got != "a\nb\n" {
		t.Fatalf("log output %q", got)
	}
}
