package calc

import "unicode/utf8"

// Class identifies how Buffer.Apply treats an input symbol.
type Class uint8

const (
	ClassNoise Class = iota
	ClassClear
	ClassDelete
	ClassPercent
	ClassOperator
	ClassDecimal
	ClassDigit
	ClassEquals
)

func (c Class) String() string {
	switch c {
	case ClassClear:
		return "clear"
	case ClassDelete:
		return "delete"
	case ClassPercent:
		return "percent"
	case ClassOperator:
		return "operator"
	case ClassDecimal:
		return "decimal"
	case ClassDigit:
		return "digit"
	case ClassEquals:
		return "equals"
	default:
		return "noise"
	}
}

// Classify returns the class of an input symbol, checked in priority order.
func Classify(sym string) Class {
	switch sym {
	case SymClear, SymCancel:
		return ClassClear
	case SymDelete, SymBackspace, SymRubout:
		return ClassDelete
	case SymPercent:
		return ClassPercent
	}

	r, size := utf8.DecodeRuneInString(sym)
	single := size > 0 && size == len(sym) && r != utf8.RuneError
	switch {
	case single && isOperator(r):
		return ClassOperator
	case sym == SymDecimal:
		return ClassDecimal
	case single && isDigit(r):
		return ClassDigit
	}

	switch sym {
	case SymEquals, SymEnter, SymNewline:
		return ClassEquals
	}
	return ClassNoise
}

// Buffer is the calculator display: the single mutable expression string.
//
// The zero value behaves like a cleared buffer. A Buffer is owned by one caller and
// is not safe for concurrent use.
type Buffer struct {
	text string
}

// NewBuffer returns a buffer holding InitialValue.
func NewBuffer() *Buffer {
	return &Buffer{text: InitialValue}
}

func (b *Buffer) String() string {
	if b.text == "" {
		return InitialValue
	}
	return b.text
}

// Reset restores InitialValue.
func (b *Buffer) Reset() { b.text = InitialValue }

// IsError reports whether the buffer shows ErrorMarker.
func (b *Buffer) IsError() bool { return b.text == ErrorMarker }

// Apply interprets one input symbol against the buffer and reports whether the
// content changed. Unknown symbols are ignored.
func (b *Buffer) Apply(sym string) bool {
	if b.text == "" {
		b.text = InitialValue
	}
	before := b.text

	switch Classify(sym) {
	case ClassClear:
		b.Reset()
	case ClassDelete:
		b.deleteLast()
	case ClassPercent:
		b.percent()
	case ClassOperator:
		r, _ := utf8.DecodeRuneInString(sym)
		b.operator(r)
	case ClassDecimal:
		b.decimal()
	case ClassDigit:
		b.digit(sym)
	case ClassEquals:
		b.equals()
	}
	return b.text != before
}

func (b *Buffer) deleteLast() {
	switch b.text {
	case ErrorMarker:
		b.Reset()
		return
	case InitialValue:
		return
	}

	_, size := utf8.DecodeLastRuneInString(b.text)
	b.text = b.text[:len(b.text)-size]
	if b.text == "" || (runeLen(b.text) == 1 && isMinus(lastRune(b.text))) {
		b.Reset()
	}
}

func (b *Buffer) operator(r rune) {
	op, ok := OpFromRune(r)
	if !ok || !isDigit(lastRune(b.text)) {
		return
	}
	b.appendText(string(op.Glyph()))
}

func (b *Buffer) decimal() {
	if b.text == ErrorMarker || hasExponent(b.text) {
		return
	}
	segs := Split(b.text)
	switch last := segs[len(segs)-1]; {
	case last == "":
		b.appendText(InitialValue + SymDecimal)
	case isWhole(last):
		b.appendText(SymDecimal)
	}
}

func (b *Buffer) digit(d string) {
	switch b.text {
	case ErrorMarker:
		return
	case InitialValue:
		b.text = d
		return
	}
	b.appendText(d)
}

func (b *Buffer) equals() {
	if b.text == ErrorMarker || b.text == InitialValue {
		b.Reset()
		return
	}
	if res := Evaluate(b.text).String(); res != b.text {
		b.text = res
	}
}

// appendText rejects the whole append when it would overflow the display.
func (b *Buffer) appendText(s string) {
	if runeLen(b.text)+runeLen(s) > MaxDisplayLen {
		return
	}
	b.text += s
}
