package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{5, "5"},
		{-12.5, "-12.5"},
		{0.5, "0.5"},
		{1e-6, "0.000001"},
		{1e20, "100000000000000000000"},
		{1e21, "1e+21"},
		{-2.5e22, "-2.5e+22"},
		{1.5e-7, "1.5e-7"},
		{1e-10, "1e-10"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(tt.in), "FormatNumber(%v)", tt.in)
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"0", 0},
		{"0.", 0},
		{"12.5", 12.5},
		{"-3", -3},
		{"1e+21", 1e21},
		{"1e-7.", 1e-7},
		{"Infinity", math.Inf(1)},
		{"Infinity5", math.Inf(1)},
		{"-Infinity", math.Inf(-1)},
		{"1e400", math.Inf(1)},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseNumber(tt.in), "ParseNumber(%q)", tt.in)
	}

	assert.True(t, math.IsNaN(ParseNumber("")))
	assert.True(t, math.IsNaN(ParseNumber("NaN")))
	assert.True(t, math.IsNaN(ParseNumber("-")))
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, f := range []float64{1, -1, 0.1, 1.0 / 3, 123456.789, 1e21, 7.5e-9, math.MaxFloat64} {
		assert.Equal(t, f, ParseNumber(FormatNumber(f)), "round trip %v", f)
	}
}
