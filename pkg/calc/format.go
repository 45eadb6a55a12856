package calc

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// FormatNumber renders f as the shortest decimal text that parses back to the
// same value. Magnitudes in [1e-6, 1e21) use plain notation, everything else
// uses exponent notation ("1e+21", "1.5e-7"). Negative zero renders as "0".
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	if abs := math.Abs(f); abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	s := strconv.FormatFloat(f, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}

	return mantissa + "e" + sign + digits
}

// ParseNumber reads the longest prefix of s that is a number, so trailing
// input such as a dangling decimal point is ignored. It returns NaN when no
// prefix parses. Overflowing values saturate to ±Inf.
func ParseNumber(s string) float64 {
	for i := len(s); i > 0; i-- {
		v, err := strconv.ParseFloat(s[:i], 64)
		if err == nil || errors.Is(err, strconv.ErrRange) {
			return v
		}
	}
	return math.NaN()
}
