package calc

import "strings"

const (
	// InitialValue is shown on a cleared buffer.
	InitialValue = "0"
	// ErrorMarker is shown when an evaluation fails.
	ErrorMarker = "Error"
	// MaxDisplayLen is the display capacity in runes.
	MaxDisplayLen = 17
	// ExponentMarker separates mantissa and exponent in scientific notation.
	ExponentMarker = 'e'
)

// Input symbols understood by Buffer.Apply besides digits and operators.
const (
	SymClear     = "C"
	SymCancel    = "\x1b"
	SymDelete    = "←"
	SymBackspace = "\b"
	SymRubout    = "\x7f"
	SymPercent   = "%"
	SymDecimal   = "."
	SymEquals    = "="
	SymEnter     = "\r"
	SymNewline   = "\n"
)

// Op is one of the four binary arithmetic operators.
type Op uint8

const (
	OpAdd Op = iota + 1
	OpSub
	OpMul
	OpDiv
)

type opGlyph struct {
	op        Op
	glyph     rune
	canonical rune
}

var opTable = [...]opGlyph{
	{op: OpAdd, glyph: '+', canonical: '+'},
	{op: OpSub, glyph: '–', canonical: '-'},
	{op: OpMul, glyph: '×', canonical: '*'},
	{op: OpDiv, glyph: '÷', canonical: '/'},
}

// OpFromRune maps a display glyph or a canonical operator rune to its Op.
func OpFromRune(r rune) (Op, bool) {
	for _, g := range opTable {
		if r == g.glyph || r == g.canonical {
			return g.op, true
		}
	}
	return 0, false
}

// Glyph returns the rune shown on the display for op.
func (op Op) Glyph() rune {
	for _, g := range opTable {
		if g.op == op {
			return g.glyph
		}
	}
	return 0
}

// Canonical returns the standard arithmetic rune for op.
func (op Op) Canonical() rune {
	for _, g := range opTable {
		if g.op == op {
			return g.canonical
		}
	}
	return 0
}

func (op Op) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	case OpDiv:
		return "div"
	default:
		return "unknown"
	}
}

func isOperator(r rune) bool {
	_, ok := OpFromRune(r)
	return ok
}

func isMinus(r rune) bool {
	op, ok := OpFromRune(r)
	return ok && op == OpSub
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// ToCanonical replaces display glyphs in s with canonical operator runes.
func ToCanonical(s string) string {
	return strings.Map(func(r rune) rune {
		if op, ok := OpFromRune(r); ok {
			return op.Canonical()
		}
		return r
	}, s)
}

// Button is one key on the calculator face.
type Button struct {
	Label   string
	Row     int
	Col     int
	ColSpan int
}

// Buttons is the keypad layout. Each label is also the symbol the key sends.
var Buttons = []Button{
	{Label: SymClear, Row: 0, Col: 0, ColSpan: 1}, {Label: SymDelete, Row: 0, Col: 1, ColSpan: 1}, {Label: SymPercent, Row: 0, Col: 2, ColSpan: 1}, {Label: "÷", Row: 0, Col: 3, ColSpan: 1},
	{Label: "7", Row: 1, Col: 0, ColSpan: 1}, {Label: "8", Row: 1, Col: 1, ColSpan: 1}, {Label: "9", Row: 1, Col: 2, ColSpan: 1}, {Label: "×", Row: 1, Col: 3, ColSpan: 1},
	{Label: "4", Row: 2, Col: 0, ColSpan: 1}, {Label: "5", Row: 2, Col: 1, ColSpan: 1}, {Label: "6", Row: 2, Col: 2, ColSpan: 1}, {Label: "–", Row: 2, Col: 3, ColSpan: 1},
	{Label: "1", Row: 3, Col: 0, ColSpan: 1}, {Label: "2", Row: 3, Col: 1, ColSpan: 1}, {Label: "3", Row: 3, Col: 2, ColSpan: 1}, {Label: "+", Row: 3, Col: 3, ColSpan: 1},
	{Label: "0", Row: 4, Col: 0, ColSpan: 2}, {Label: SymDecimal, Row: 4, Col: 2, ColSpan: 1}, {Label: SymEquals, Row: 4, Col: 3, ColSpan: 1},
}

// ButtonRows and ButtonCols describe the keypad grid size.
const (
	ButtonRows = 5
	ButtonCols = 4
)
