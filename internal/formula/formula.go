// Package formula implements the restricted arithmetic / trigonometric
// expression language teachers author answer formulas in. Expressions
// are parsed by a small recursive-descent parser into an AST and
// evaluated to a float64; there is no dynamic code evaluation involved.
package formula

import (
	"errors"
	"regexp"
	"strings"
)

// ErrDisallowedCharacter indicates the substituted formula contains a
// character outside the language's allow-list.
var ErrDisallowedCharacter = errors.New("formula contains disallowed characters")

// allowedChars is the strict character allow-list applied to the
// substituted formula before parsing.
var allowedChars = regexp.MustCompile(`^[0-9A-Za-z_+\-*/^!().,\s]*$`)

// trigFunctions are the degree-based functions usable in formulas.
var trigFunctions = []string{"cosec", "sec", "cot", "sin", "cos", "tan"}

// Evaluate substitutes the given variable values into the formula,
// parses the result and evaluates it. Parse failures, disallowed
// characters and unresolved variable references all yield an error; a
// nil error result may still be NaN or infinite (e.g. tan(90)), which
// callers must treat as "not defined".
func Evaluate(formula string, variables map[string]string) (float64, error) {
	substituted := Substitute(formula, variables)

	if !allowedChars.MatchString(substituted) {
		return 0, ErrDisallowedCharacter
	}

	node, err := parse(substituted)
	if err != nil {
		return 0, err
	}

	return node.eval(), nil
}

// Substitute replaces every whole-word occurrence of each variable name
// with its value wrapped in parentheses. Word-boundary matching keeps
// var_1 from matching inside var_10, so substitution order is
// irrelevant.
func Substitute(formula string, variables map[string]string) string {
	out := formula
	for name, value := range variables {
		pattern := regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\b`)
		out = pattern.ReplaceAllString(out, "("+value+")")
	}
	return out
}

// IsTrigonometric reports whether the formula references any of the
// trigonometric functions, making the question eligible for symbolic
// multiple choice.
func IsTrigonometric(formula string) bool {
	lower := strings.ToLower(formula)
	for _, fn := range trigFunctions {
		if strings.Contains(lower, fn) {
			return true
		}
	}
	return false
}
