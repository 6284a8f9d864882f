package calc

import (
	"strings"
	"unicode/utf8"
)

// Split breaks an expression into alternating numeral and operator segments.
//
// The result always has odd length: numeral (operator numeral)*. A trailing operator
// leaves an empty final numeral. A minus at the start, after another operator, or after
// an exponent marker is a sign and stays with its numeral; so does a plus after an
// exponent marker.
func Split(expr string) []string {
	segs := make([]string, 0, 8)
	var cur strings.Builder
	var prev rune
	for _, r := range expr {
		if isOperator(r) && !bindsToNumeral(r, prev, cur.Len()) {
			segs = append(segs, cur.String(), string(r))
			cur.Reset()
			prev = r
			continue
		}
		cur.WriteRune(r)
		prev = r
	}
	return append(segs, cur.String())
}

func bindsToNumeral(r, prev rune, curLen int) bool {
	if curLen == 0 {
		return isMinus(r)
	}
	if prev != ExponentMarker {
		return false
	}
	return isMinus(r) || r == '+'
}

// IsNumeral reports whether s is a complete numeric literal: an optional minus sign,
// digits with at most one decimal point (at least one digit), and an optional
// exponent with at least one digit.
func IsNumeral(s string) bool {
	mant, exp, hasExp := strings.Cut(trimSign(s), string(ExponentMarker))
	if !isMantissa(mant) {
		return false
	}
	if !hasExp {
		return true
	}
	if exp != "" && (exp[0] == '+' || exp[0] == '-') {
		exp = exp[1:]
	}
	return allDigits(exp)
}

// isWhole reports whether s is a signed run of digits with no decimal point.
func isWhole(s string) bool {
	return allDigits(trimSign(s))
}

func isMantissa(s string) bool {
	digits := 0
	dot := false
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			digits++
		case c == '.' && !dot:
			dot = true
		default:
			return false
		}
	}
	return digits > 0
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func trimSign(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size > 0 && isMinus(r) {
		return s[size:]
	}
	return s
}

func hasExponent(s string) bool {
	return strings.ContainsRune(s, ExponentMarker)
}

func runeLen(s string) int { return utf8.RuneCountInString(s) }

func lastRune(s string) rune {
	r, _ := utf8.DecodeLastRuneInString(s)
	return r
}
