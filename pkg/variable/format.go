package variable

import (
	"math"
	"strconv"
	"strings"
)

// FormatNumber converts a number to the string a Variable holds after
// GetString. It uses the shortest representation that parses back to the
// same number. Whole numbers with more than 14 digits ending in 0, and
// numbers smaller than 0.0001 in magnitude, use scientific notation.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	digits := strings.TrimPrefix(s, "-")
	noPoint := !strings.ContainsRune(digits, '.')
	if (noPoint && len(digits) > 14 && digits[len(digits)-1] == '0') ||
		strings.HasPrefix(digits, "0.0000") {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	return s
}
