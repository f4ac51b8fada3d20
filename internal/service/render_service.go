package service

import (
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/varytest/engine/internal/formula"
	"github.com/varytest/engine/internal/models"
	"github.com/varytest/engine/internal/observability"
	"github.com/varytest/engine/internal/symbolic"
)

// QuestionRenderer produces one randomized, gradable instance of a
// question template: sampled variable values substituted into the text,
// the formula evaluated, and a symbolic option set attached when the
// formula is trigonometric.
type QuestionRenderer interface {
	Render(template models.QuestionTemplate) models.RenderedQuestion
}

type questionRenderer struct {
	rng    *rand.Rand
	logger zerolog.Logger
}

// NewQuestionRenderer builds a renderer drawing from the given random
// source.
func NewQuestionRenderer(rng *rand.Rand, logger zerolog.Logger) QuestionRenderer {
	return &questionRenderer{
		rng:    rng,
		logger: logger.With().Str("component", "question_renderer").Logger(),
	}
}

func (r *questionRenderer) Render(template models.QuestionTemplate) models.RenderedQuestion {
	values := make(map[string]string, len(template.Variables))
	for _, v := range template.Variables {
		pool := template.ValuePool(v.Name)
		if len(pool) == 0 {
			// An empty pool is an upstream authoring problem; the
			// empty string makes evaluation fail gracefully.
			values[v.Name] = ""
			continue
		}
		values[v.Name] = pool[r.rng.Intn(len(pool))]
	}

	text := template.QuestionText
	for name, value := range values {
		text = strings.ReplaceAll(text, "{{"+name+"}}", value)
	}

	question := models.RenderedQuestion{
		QuestionID: template.ID,
		Text:       text,
		Variables:  values,
	}

	result, err := formula.Evaluate(template.Formula, values)
	if err != nil {
		r.logger.Warn().Err(err).Str("question_id", template.ID).Msg("formula evaluation failed")
	}
	// Huge finite magnitudes (tan(90) in floating point) count as
	// undefined too, matching the classifier's cutoff.
	evalFailed := err != nil || math.IsNaN(result) || math.IsInf(result, 0) ||
		math.Abs(result) > symbolic.NotDefinedThreshold
	if !evalFailed {
		question.Answer = formatAnswer(result)
	}

	kind := "exact"
	if formula.IsTrigonometric(template.Formula) {
		kind = "trig"
		choiceValue := result
		if evalFailed {
			// The trig path always shows a definite option set; an
			// unevaluable formula keys on "Not defined".
			choiceValue = math.Inf(1)
		}
		choices := symbolic.BuildChoices(choiceValue, r.rng)
		question.Options = choices.Options
		question.CorrectOption = choices.CorrectOption
	}

	outcome := "ok"
	if evalFailed {
		outcome = "eval_failed"
		observability.EvaluationFailures().Inc()
	}
	observability.QuestionRenders().WithLabelValues(kind, outcome).Inc()

	return question
}

// formatAnswer is the canonical string form of a computed result: the
// shortest decimal round-tripping the value, so integers come out bare
// ("5", not "5.000000").
func formatAnswer(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
