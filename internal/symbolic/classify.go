// Package symbolic maps numeric results of trigonometric formulas onto
// canonical symbolic forms ("1/√2", "√3/2", …) and builds the
// multiple-choice option sets shown to students.
package symbolic

import (
	"math"
	"strconv"
)

// NotDefined is the symbol used for non-finite or overflowing results.
const NotDefined = "Not defined"

// matchTolerance is the absolute tolerance for near-equality against a
// canonical magnitude.
const matchTolerance = 1e-6

// NotDefinedThreshold treats huge magnitudes (e.g. tan(90) computed in
// floating point) as undefined. Exported so the renderer applies the
// same cutoff when it decides whether a result is representable.
const NotDefinedThreshold = 1e12

type canonicalForm struct {
	magnitude float64
	symbol    string
}

// canonicalForms holds the recognised trig magnitudes, coarsest first.
var canonicalForms = []canonicalForm{
	{0, "0"},
	{0.5, "1/2"},
	{math.Sqrt2 / 2, "1/√2"},
	{math.Sqrt(3) / 2, "√3/2"},
	{1, "1"},
	{math.Sqrt2, "√2"},
	{math.Sqrt(3), "√3"},
	{1 / math.Sqrt(3), "1/√3"},
	{2 / math.Sqrt(3), "2/√3"},
}

// Classify maps a numeric value onto its canonical symbolic form. The
// sign is preserved on the symbol unless the match is "0"; values with
// no canonical match fall back to a 3-decimal string. Classify is pure
// and deterministic.
func Classify(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) || math.Abs(value) > NotDefinedThreshold {
		return NotDefined
	}

	magnitude := math.Abs(value)
	for _, form := range canonicalForms {
		if math.Abs(magnitude-form.magnitude) <= matchTolerance {
			if value < 0 && form.symbol != "0" {
				return "-" + form.symbol
			}
			return form.symbol
		}
	}

	// math.Round halves away from zero, so -0.1255 comes out as
	// "-0.126" rather than the "-0.125" some toFixed implementations
	// produce.
	rounded := math.Round(value*1000) / 1000
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
