package variable

import (
	"math"
	"strconv"
	"strings"
)

// ParseNumber converts a string to the number a Variable holds after
// GetValue. It never fails:
//
//   - Leading whitespace is skipped.
//   - The longest prefix that forms a decimal number, with optional sign,
//     fraction and exponent, is converted; the rest is ignored.
//   - "inf", "infinity" and "nan", in any case, are accepted after the sign.
//   - If there is no such prefix, the result is 0.
//
// Hexadecimal and digit separators are not recognized, so "0x10" parses as 0.
func ParseNumber(s string) float64 {
	s = strings.TrimLeft(s, " \t\n\v\f\r")
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	var f float64
	switch special(s) {
	case "inf", "infinity":
		f = math.Inf(1)
	case "nan":
		return math.NaN()
	default:
		n := scanDecimal(s)
		if n == 0 {
			return 0
		}
		// The prefix is well-formed, so the only possible error is ErrRange,
		// for which ParseFloat returns ±Inf or the nearest denormal.
		f, _ = strconv.ParseFloat(s[:n], 64)
	}
	if neg {
		return -f
	}
	return f
}

// scanDecimal returns the length of the longest prefix of s that is an
// unsigned decimal number, or 0 if there is none.
func scanDecimal(s string) int {
	i, mantissa := 0, 0
	for i < len(s) && isDigit(s[i]) {
		i++
		mantissa++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			mantissa++
		}
	}
	if mantissa == 0 {
		return 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}
	return i
}

// special returns the lower-cased special word s starts with, or "".
func special(s string) string {
	for _, word := range []string{"infinity", "inf", "nan"} {
		if len(s) >= len(word) && strings.EqualFold(s[:len(word)], word) {
			return word
		}
	}
	return ""
}

func isDigit(b byte) bool { return '0' <= b && b <= '9' }
