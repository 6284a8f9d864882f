package calculator

import "unicode/utf8"

// nextSymbol decodes one calculator symbol from a MsgKeyInput stream.
//
// ok is false when b ends inside a rune; the bytes stay buffered until the rest arrives.
// Invalid bytes are consumed one at a time as empty symbols.
func nextSymbol(b []byte) (consumed int, sym string, ok bool) {
	if len(b) == 0 {
		return 0, "", false
	}
	if b[0] < utf8.RuneSelf {
		return 1, string(b[:1]), true
	}
	if !utf8.FullRune(b) {
		return 0, "", false
	}
	r, sz := utf8.DecodeRune(b)
	if r == utf8.RuneError && sz == 1 {
		return 1, "", true
	}
	return sz, string(b[:sz]), true
}
