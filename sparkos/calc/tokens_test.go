package calc

import (
	"reflect"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{in: "", want: []string{""}},
		{in: "12", want: []string{"12"}},
		{in: "200+10", want: []string{"200", "+", "10"}},
		{in: "0.2×0.8", want: []string{"0.2", "×", "0.8"}},
		{in: "5×", want: []string{"5", "×", ""}},
		{in: "-3×2", want: []string{"-3", "×", "2"}},
		{in: "2×-3", want: []string{"2", "×", "-3"}},
		{in: "2–5", want: []string{"2", "–", "5"}},
		{in: "1e+20÷4", want: []string{"1e+20", "÷", "4"}},
		{in: "1e-5-2", want: []string{"1e-5", "-", "2"}},
		{in: "+5", want: []string{"", "+", "5"}},
	}
	for _, tt := range tests {
		if got := Split(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("Split(%q)=%q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsNumeral(t *testing.T) {
	good := []string{"0", "12", "1.5", "5.", ".5", "-3", "–3", "1e5", "1e+5", "2.5e-3", "007"}
	bad := []string{"", ".", "-", "1e", "1e+", "e5", "1..2", "1.2.3", "12a", "Error", "1e5.0", "--3"}

	for _, s := range good {
		if !IsNumeral(s) {
			t.Fatalf("IsNumeral(%q)=false, want true", s)
		}
	}
	for _, s := range bad {
		if IsNumeral(s) {
			t.Fatalf("IsNumeral(%q)=true, want false", s)
		}
	}
}

func TestOpTable(t *testing.T) {
	for _, op := range []Op{OpAdd, OpSub, OpMul, OpDiv} {
		fromGlyph, ok := OpFromRune(op.Glyph())
		if !ok || fromGlyph != op {
			t.Fatalf("OpFromRune(%q)=%v,%v, want %v", op.Glyph(), fromGlyph, ok, op)
		}
		fromCanon, ok := OpFromRune(op.Canonical())
		if !ok || fromCanon != op {
			t.Fatalf("OpFromRune(%q)=%v,%v, want %v", op.Canonical(), fromCanon, ok, op)
		}
	}
	if _, ok := OpFromRune('x'); ok {
		t.Fatal("OpFromRune('x') ok=true, want false")
	}
	if got := ToCanonical("1+2–3×4÷5"); got != "1+2-3*4/5" {
		t.Fatalf("ToCanonical=%q", got)
	}
}

func TestButtons_SendKnownSymbols(t *testing.T) {
	cells := make(map[[2]int]string)
	for _, btn := range Buttons {
		if Classify(btn.Label) == ClassNoise {
			t.Fatalf("button %q sends noise", btn.Label)
		}
		for c := btn.Col; c < btn.Col+btn.ColSpan; c++ {
			key := [2]int{btn.Row, c}
			if prev, ok := cells[key]; ok {
				t.Fatalf("buttons %q and %q overlap at %v", prev, btn.Label, key)
			}
			cells[key] = btn.Label
		}
	}
	if len(cells) != ButtonRows*ButtonCols {
		t.Fatalf("keypad covers %d cells, want %d", len(cells), ButtonRows*ButtonCols)
	}
}
