package calc

import (
	"math"
	"strconv"
	"strings"
)

// A run this long of 9s or 0s in the fractional digits is float noise.
const noiseRun = 10

const (
	fracDigits      = 15
	noisyFracDigits = 14
	shortFracDigits = 4
)

func formatResult(v float64) (string, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", ErrOverflow
	}

	places := fracDigits
	if hasPrecisionNoise(v) {
		places = noisyFracDigits
	}
	r := roundTo(v, places)

	s := render(r)
	if runeLen(s) > MaxDisplayLen {
		s = render(roundTo(r, shortFracDigits))
	}
	if runeLen(s) > MaxDisplayLen {
		s = fitExponent(r)
	}
	if runeLen(s) > MaxDisplayLen {
		return "", ErrOverflow
	}
	return s, nil
}

func hasPrecisionNoise(v float64) bool {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	whole, frac, ok := strings.Cut(strings.TrimPrefix(s, "-"), ".")
	if !ok {
		return false
	}
	// Leading zeros of a value below one are magnitude, not noise.
	if whole == "0" {
		frac = strings.TrimLeft(frac, "0")
	}
	return strings.Contains(frac, strings.Repeat("9", noiseRun)) ||
		strings.Contains(frac, strings.Repeat("0", noiseRun))
}

func roundTo(v float64, places int) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	if err != nil {
		return v
	}
	return r
}

// render prints v the way the display shows numbers: integers without a fractional
// part, very large or very small magnitudes in exponent notation.
func render(v float64) string {
	if v == 0 {
		return InitialValue
	}
	if v == math.Trunc(v) {
		if s := strconv.FormatFloat(v, 'f', 0, 64); len(s) <= MaxDisplayLen {
			return s
		}
	}
	if exp := decimalExponent(v); exp < -4 || exp >= 16 {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func decimalExponent(v float64) int {
	s := strconv.FormatFloat(v, 'e', -1, 64)
	i := strings.IndexByte(s, 'e')
	if i < 0 {
		return 0
	}
	n, err := strconv.Atoi(s[i+1:])
	if err != nil {
		return 0
	}
	return n
}

// fitExponent shortens the mantissa until the exponent form fits the display.
func fitExponent(v float64) string {
	var s string
	for prec := 16; prec >= 0; prec-- {
		s = trimMantissa(strconv.FormatFloat(v, 'e', prec, 64))
		if len(s) <= MaxDisplayLen {
			return s
		}
	}
	return s
}

func trimMantissa(s string) string {
	mant, exp, ok := strings.Cut(s, "e")
	if !ok || !strings.Contains(mant, ".") {
		return s
	}
	mant = strings.TrimRight(mant, "0")
	mant = strings.TrimSuffix(mant, ".")
	return mant + "e" + exp
}
