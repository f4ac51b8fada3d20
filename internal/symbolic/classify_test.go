package symbolic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyCanonicalForms(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{"zero", 0, "0"},
		{"half", 0.5, "1/2"},
		{"negative half", -0.5, "-1/2"},
		{"inverse root two", math.Sqrt2 / 2, "1/√2"},
		{"root three over two", math.Sqrt(3) / 2, "√3/2"},
		{"negative root three over two", -0.8660254, "-√3/2"},
		{"one", 1, "1"},
		{"negative one", -1, "-1"},
		{"root two", math.Sqrt2, "√2"},
		{"root three", math.Sqrt(3), "√3"},
		{"inverse root three", 1 / math.Sqrt(3), "1/√3"},
		{"two over root three", 2 / math.Sqrt(3), "2/√3"},
		{"negative two over root three", -2 / math.Sqrt(3), "-2/√3"},
		{"within tolerance", 0.4999999, "1/2"},
		{"near zero keeps plain zero", -1e-9, "0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, Classify(tc.value))
		})
	}
}

func TestClassifyNotDefined(t *testing.T) {
	for _, value := range []float64{math.Inf(1), math.Inf(-1), math.NaN(), 1e13, -2e12} {
		require.Equal(t, NotDefined, Classify(value))
	}
}

func TestClassifyDecimalFallback(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{2, "2"},
		{42, "42"},
		{-0.125, "-0.125"},
		{0.333333, "0.333"},
		{0.2500004, "0.25"},
		{1.9999996, "2"},
		{-7.84521, "-7.845"},
		// Exact binary halves pin the rounding convention: halves go
		// away from zero, not to even.
		{0.0625, "0.063"},
		{-0.0625, "-0.063"},
	}

	for _, tc := range tests {
		require.Equal(t, tc.expected, Classify(tc.value))
	}
}

func TestClassifyDeterministic(t *testing.T) {
	for i := 0; i < 10; i++ {
		require.Equal(t, "√3/2", Classify(math.Sqrt(3)/2))
	}
}
