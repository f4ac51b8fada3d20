package models

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// placeholderPattern matches {{var_N}} markers in question text. The
// literal "var_" prefix is part of the authoring syntax teachers write
// against, so it is matched case-sensitively.
var placeholderPattern = regexp.MustCompile(`\{\{(var_\d+)\}\}`)

// ErrNoVariables indicates a template defines no variable pools.
var ErrNoVariables = errors.New("template defines no variables")

// Variable holds the pool of candidate values for one placeholder.
type Variable struct {
	Name   string   `json:"name" validate:"required"`
	Values []string `json:"values" validate:"min=1"`
}

// QuestionTemplate is a teacher-authored question definition: text with
// {{var_N}} placeholders, per-variable value pools and a formula that
// computes the answer from the sampled values.
type QuestionTemplate struct {
	ID           string     `json:"id" validate:"required"`
	SubjectID    string     `json:"subject_id"`
	QuestionText string     `json:"question_text" validate:"required"`
	Variables    []Variable `json:"variables" validate:"min=1,dive"`
	Formula      string     `json:"formula" validate:"required"`
}

// ExtractPlaceholders returns the variable names referenced by {{var_N}}
// markers in text, in order of first appearance, without duplicates.
func ExtractPlaceholders(text string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, match := range placeholderPattern.FindAllStringSubmatch(text, -1) {
		if !seen[match[1]] {
			seen[match[1]] = true
			names = append(names, match[1])
		}
	}
	return names
}

// Validate checks the structural invariants a template must satisfy
// before it is eligible for rendering. A failing template is skipped by
// the generator, it never aborts a whole batch.
func (t QuestionTemplate) Validate() error {
	if strings.TrimSpace(t.QuestionText) == "" {
		return errors.New("question text is empty")
	}
	if strings.TrimSpace(t.Formula) == "" {
		return errors.New("formula is empty")
	}
	if len(t.Variables) == 0 {
		return ErrNoVariables
	}

	defined := make(map[string]bool, len(t.Variables))
	for _, v := range t.Variables {
		name := strings.TrimSpace(v.Name)
		if name == "" {
			return errors.New("variable with empty name")
		}
		if defined[name] {
			return fmt.Errorf("duplicate variable %q", name)
		}
		defined[name] = true

		pooled := 0
		for _, val := range v.Values {
			if strings.TrimSpace(val) != "" {
				pooled++
			}
		}
		if pooled == 0 {
			return fmt.Errorf("variable %q has no values", name)
		}
	}

	for _, name := range ExtractPlaceholders(t.QuestionText) {
		if !defined[name] {
			return fmt.Errorf("placeholder {{%s}} has no matching variable", name)
		}
	}

	return nil
}

// ValuePool returns the non-blank values of the named variable.
func (t QuestionTemplate) ValuePool(name string) []string {
	for _, v := range t.Variables {
		if v.Name != name {
			continue
		}
		var pool []string
		for _, val := range v.Values {
			if strings.TrimSpace(val) != "" {
				pool = append(pool, val)
			}
		}
		return pool
	}
	return nil
}
