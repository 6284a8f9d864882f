package proto

import "unicode/utf8"

// KeyInputPayload encodes calculator symbols for a MsgKeyInput message.
//
// Convention:
//   - Payload is a UTF-8 stream of symbols, one rune per symbol.
//   - Senders split on rune boundaries; a payload never ends mid-rune.
func KeyInputPayload(symbols string) []byte {
	return []byte(symbols)
}

// SplitKeyInput returns the longest prefix of b that ends on a rune boundary, and the
// remainder to carry over to the next payload.
func SplitKeyInput(b []byte, max int) (head, rest []byte) {
	if len(b) <= max {
		return b, nil
	}
	n := max
	for n > 0 && !utf8.RuneStart(b[n]) {
		n--
	}
	if n == 0 {
		n = max
	}
	return b[:n], b[n:]
}
