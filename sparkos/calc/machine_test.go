package calc

import (
	"strings"
	"testing"
)

func press(b *Buffer, syms ...string) *Buffer {
	for _, s := range syms {
		b.Apply(s)
	}
	return b
}

func bufferOf(s string) *Buffer { return &Buffer{text: s} }

func TestApply_Scenarios(t *testing.T) {
	tests := []struct {
		name string
		from string
		syms []string
		want string
	}{
		{name: "addition", from: InitialValue, syms: []string{"1", "+", "2", "="}, want: "3"},
		{name: "canonical multiply", from: InitialValue, syms: []string{"5", "*", "3", "="}, want: "15"},
		{name: "leading decimals", from: InitialValue, syms: []string{".", "2", "×", ".", "8"}, want: "0.2×0.8"},
		{name: "evaluate decimals", from: InitialValue, syms: []string{".", "2", "×", ".", "8", "="}, want: "0.16"},
		{name: "precedence", from: InitialValue, syms: []string{"2", "+", "3", "×", "4", "="}, want: "14"},
		{name: "enter key", from: "6÷4", syms: []string{SymEnter}, want: "1.5"},
		{name: "newline key", from: "6÷4", syms: []string{SymNewline}, want: "1.5"},
		{name: "minus normalized", from: "9", syms: []string{"-", "4"}, want: "9–4"},
		{name: "negative result", from: InitialValue, syms: []string{"2", "-", "5", "="}, want: "-3"},
		{name: "negative operand", from: "-3", syms: []string{"×", "2", "="}, want: "-6"},
		{name: "double operator", from: "5", syms: []string{"+", "+", "×"}, want: "5+"},
		{name: "operator after zero", from: InitialValue, syms: []string{"×"}, want: "0×"},
		{name: "operator after decimal", from: "5.", syms: []string{"+"}, want: "5."},
		{name: "second decimal", from: "1.5", syms: []string{"."}, want: "1.5"},
		{name: "decimal after operator", from: "1.5+", syms: []string{"."}, want: "1.5+0."},
		{name: "decimal on negative", from: "-3", syms: []string{"."}, want: "-3."},
		{name: "decimal with exponent", from: "1e+19", syms: []string{"."}, want: "1e+19"},
		{name: "digit replaces initial", from: InitialValue, syms: []string{"7"}, want: "7"},
		{name: "zero on initial", from: InitialValue, syms: []string{"0"}, want: "0"},
		{name: "equals unchanged", from: "5", syms: []string{"="}, want: "5"},
		{name: "equals trims decimal", from: "5.", syms: []string{"="}, want: "5"},
		{name: "equals keeps tiny literal", from: "0.000000000000123", syms: []string{"="}, want: "1.23e-13"},
		{name: "equals on initial", from: InitialValue, syms: []string{"="}, want: InitialValue},
		{name: "noise ignored", from: "12", syms: []string{"a", "!", " ", "(", "xy"}, want: "12"},
		{name: "clear", from: "12+3", syms: []string{SymClear}, want: InitialValue},
		{name: "cancel", from: "12+3", syms: []string{SymCancel}, want: InitialValue},
		{name: "delete glyph", from: "12+3", syms: []string{SymDelete}, want: "12+"},
		{name: "delete operator glyph", from: "12×", syms: []string{SymBackspace}, want: "12"},
		{name: "delete to empty", from: "7", syms: []string{SymRubout}, want: InitialValue},
		{name: "delete to lone sign", from: "-3", syms: []string{SymDelete}, want: InitialValue},
	}

	for _, tt := range tests {
		got := press(bufferOf(tt.from), tt.syms...).String()
		if got != tt.want {
			t.Fatalf("%s: %q + %q = %q, want %q", tt.name, tt.from, tt.syms, got, tt.want)
		}
	}
}

func TestApply_EqualsDeleteClear(t *testing.T) {
	b := NewBuffer()
	press(b, "5", "*", "3", "=")
	if got := b.String(); got != "15" {
		t.Fatalf("after 5*3= got %q, want 15", got)
	}
	press(b, SymDelete)
	if got := b.String(); got != "1" {
		t.Fatalf("after delete got %q, want 1", got)
	}
	press(b, SymClear)
	if got := b.String(); got != InitialValue {
		t.Fatalf("after clear got %q, want %q", got, InitialValue)
	}
}

func TestApply_ErrorState(t *testing.T) {
	b := press(NewBuffer(), "5", "÷", "0", "=")
	if !b.IsError() {
		t.Fatalf("5÷0= got %q, want %q", b.String(), ErrorMarker)
	}

	for _, sym := range []string{"7", "+", "×", SymPercent, SymDecimal} {
		if b.Apply(sym) {
			t.Fatalf("%q changed error buffer to %q", sym, b.String())
		}
	}

	if !b.Apply(SymEquals) || b.String() != InitialValue {
		t.Fatalf("= on error got %q, want %q", b.String(), InitialValue)
	}

	press(b, "5", "÷", "0", "=")
	if !b.Apply(SymDelete) || b.String() != InitialValue {
		t.Fatalf("delete on error got %q, want %q", b.String(), InitialValue)
	}
}

func TestApply_TrailingOperatorErrors(t *testing.T) {
	b := press(NewBuffer(), "5", "×", "=")
	if !b.IsError() {
		t.Fatalf("5×= got %q, want %q", b.String(), ErrorMarker)
	}
}

func TestApply_DeleteOnInitialIsNoop(t *testing.T) {
	b := NewBuffer()
	if b.Apply(SymDelete) {
		t.Fatalf("delete on initial changed buffer to %q", b.String())
	}
	if b.String() != InitialValue {
		t.Fatalf("got %q, want %q", b.String(), InitialValue)
	}
}

func TestApply_LettersIgnored(t *testing.T) {
	for r := 'a'; r <= 'z'; r++ {
		b := NewBuffer()
		if b.Apply(string(r)) || b.String() != InitialValue {
			t.Fatalf("letter %q changed buffer to %q", r, b.String())
		}
	}
}

func TestApply_LengthCap(t *testing.T) {
	b := NewBuffer()
	for i := 0; i < MaxDisplayLen+5; i++ {
		b.Apply("1")
		if n := runeLen(b.String()); n > MaxDisplayLen {
			t.Fatalf("buffer length %d exceeds %d", n, MaxDisplayLen)
		}
	}
	if got := b.String(); got != strings.Repeat("1", MaxDisplayLen) {
		t.Fatalf("got %q, want %d ones", got, MaxDisplayLen)
	}
	if b.Apply("+") {
		t.Fatalf("operator accepted past cap: %q", b.String())
	}

	b = bufferOf("1234567890123456×")
	if b.Apply(SymDecimal) {
		t.Fatalf("decimal accepted past cap: %q", b.String())
	}
}

func TestApply_ZeroValueBuffer(t *testing.T) {
	var b Buffer
	if b.String() != InitialValue {
		t.Fatalf("zero buffer shows %q", b.String())
	}
	b.Apply("4")
	if b.String() != "4" {
		t.Fatalf("zero buffer + 4 = %q", b.String())
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		sym  string
		want Class
	}{
		{sym: "C", want: ClassClear},
		{sym: "\x1b", want: ClassClear},
		{sym: "←", want: ClassDelete},
		{sym: "\b", want: ClassDelete},
		{sym: "\x7f", want: ClassDelete},
		{sym: "%", want: ClassPercent},
		{sym: "+", want: ClassOperator},
		{sym: "–", want: ClassOperator},
		{sym: "-", want: ClassOperator},
		{sym: "×", want: ClassOperator},
		{sym: "*", want: ClassOperator},
		{sym: "÷", want: ClassOperator},
		{sym: "/", want: ClassOperator},
		{sym: ".", want: ClassDecimal},
		{sym: "9", want: ClassDigit},
		{sym: "=", want: ClassEquals},
		{sym: "\r", want: ClassEquals},
		{sym: "\n", want: ClassEquals},
		{sym: "c", want: ClassNoise},
		{sym: "12", want: ClassNoise},
		{sym: "", want: ClassNoise},
	}
	for _, tt := range tests {
		if got := Classify(tt.sym); got != tt.want {
			t.Fatalf("Classify(%q)=%s, want %s", tt.sym, got, tt.want)
		}
	}
}
