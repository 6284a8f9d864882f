package calc

import "unicode/utf8"

func (b *Buffer) percent() {
	if b.text == ErrorMarker || b.text == InitialValue {
		return
	}
	next, ok := percentOf(b.text)
	if !ok || runeLen(next) > MaxDisplayLen {
		return
	}
	b.text = next
}

// percentOf rewrites expr for the % key.
//
// A lone numeral (or anything in exponent notation) is divided by 100. Otherwise
// the operand after the last operator becomes operand/100 for × and ÷, or
// base×(operand/100) for + and –. ok is false when the rewrite must be discarded.
func percentOf(expr string) (string, bool) {
	segs := Split(expr)
	if len(segs) == 1 || hasExponent(expr) {
		return Evaluate(expr + "/100").String(), true
	}

	opSeg := segs[len(segs)-2]
	operand := segs[len(segs)-1]
	base := expr[:len(expr)-len(operand)-len(opSeg)]

	ratio := Evaluate(operand + "/100")
	if ratio.IsError() {
		return "", false
	}

	r, _ := utf8.DecodeRuneInString(opSeg)
	op, _ := OpFromRune(r)
	scaled := ratio
	if op == OpAdd || op == OpSub {
		scaled = Evaluate(base + string(OpMul.Glyph()) + ratio.String())
		if scaled.IsError() {
			return "", false
		}
	}
	return base + opSeg + scaled.String(), true
}
