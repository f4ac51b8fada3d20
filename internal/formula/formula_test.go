package formula

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluateArithmetic(t *testing.T) {
	tests := []struct {
		name      string
		formula   string
		variables map[string]string
		expected  float64
	}{
		{"variable addition", "var_1 + var_2", map[string]string{"var_1": "2", "var_2": "3"}, 5},
		{"precedence", "2 + 3 * 4", nil, 14},
		{"parentheses", "(2 + 3) * 4", nil, 20},
		{"exponentiation", "2^3", nil, 8},
		{"right associative power", "2^3^2", nil, 512},
		{"negated power", "-2^2", nil, -4},
		{"negative exponent", "2^-1", nil, 0.5},
		{"factorial", "4!", nil, 24},
		{"chained factorial", "3!!", nil, 720},
		{"grouped factorial", "(2 + 3)!", nil, 120},
		{"factorial binds before power", "3!^2", nil, 36},
		{"unary minus", "-3 + 5", nil, 2},
		{"division", "7 / 2", nil, 3.5},
		{"negative variable value", "var_1 * 2", map[string]string{"var_1": "-4"}, -8},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Evaluate(tc.formula, tc.variables)
			require.NoError(t, err)
			require.InDelta(t, tc.expected, got, 1e-9)
		})
	}
}

func TestEvaluateTrigDegrees(t *testing.T) {
	tests := []struct {
		formula  string
		expected float64
	}{
		{"sin(30)", 0.5},
		{"cos(60)", 0.5},
		{"tan(45)", 1},
		{"cosec(30)", 2},
		{"sec(60)", 2},
		{"cot(45)", 1},
		{"sin(var_1)", 1},
	}

	for _, tc := range tests {
		t.Run(tc.formula, func(t *testing.T) {
			got, err := Evaluate(tc.formula, map[string]string{"var_1": "90"})
			require.NoError(t, err)
			require.InDelta(t, tc.expected, got, 1e-9)
		})
	}
}

func TestEvaluateUndefinedResults(t *testing.T) {
	t.Run("tan 90 overflows", func(t *testing.T) {
		got, err := Evaluate("tan(90)", nil)
		require.NoError(t, err)
		require.Greater(t, math.Abs(got), 1e12)
	})

	t.Run("division by zero", func(t *testing.T) {
		got, err := Evaluate("1 / 0", nil)
		require.NoError(t, err)
		require.True(t, math.IsInf(got, 1))
	})

	t.Run("factorial of negative", func(t *testing.T) {
		got, err := Evaluate("(0 - 3)!", nil)
		require.NoError(t, err)
		require.True(t, math.IsNaN(got))
	})

	t.Run("factorial of non-integer", func(t *testing.T) {
		got, err := Evaluate("2.5!", nil)
		require.NoError(t, err)
		require.True(t, math.IsNaN(got))
	})
}

func TestEvaluateFailures(t *testing.T) {
	tests := []struct {
		name      string
		formula   string
		variables map[string]string
	}{
		{"unresolved variable", "var_1 + var_2", map[string]string{"var_1": "2"}},
		{"unknown function", "sinh(30)", nil},
		{"dangling operator", "2 +", nil},
		{"function without parens", "sin 30", nil},
		{"unbalanced parens", "(2 + 3", nil},
		{"empty formula", "", nil},
		{"non-numeric value", "var_1 * 2", map[string]string{"var_1": "ten"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Evaluate(tc.formula, tc.variables)
			require.Error(t, err)
		})
	}
}

func TestEvaluateDisallowedCharacters(t *testing.T) {
	for _, formula := range []string{"2 + $", "os.Exit(1); 2", `"2"`} {
		_, err := Evaluate(formula, nil)
		require.Error(t, err)
	}

	_, err := Evaluate("2 + [3]", nil)
	require.ErrorIs(t, err, ErrDisallowedCharacter)
}

func TestSubstituteWordBoundaries(t *testing.T) {
	variables := map[string]string{"var_1": "2", "var_10": "3"}

	got := Substitute("var_1 + var_10", variables)
	require.Equal(t, "(2) + (3)", got)

	// var_1 must not be replaced inside var_10 regardless of map order.
	value, err := Evaluate("var_1 * var_10", variables)
	require.NoError(t, err)
	require.InDelta(t, 6, value, 1e-9)
}

func TestIsTrigonometric(t *testing.T) {
	require.True(t, IsTrigonometric("sin(var_1)"))
	require.True(t, IsTrigonometric("SIN(var_1) + 2"))
	require.True(t, IsTrigonometric("cosec(var_1)"))
	require.True(t, IsTrigonometric("2 * COT(30)"))
	require.False(t, IsTrigonometric("var_1 + var_2"))
	require.False(t, IsTrigonometric("(var_1 * var_2) / 2"))
}
