package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce              sync.Once
	questionRendersTotal      *prometheus.CounterVec
	evaluationFailuresTotal   prometheus.Counter
	assignmentsGeneratedTotal prometheus.Counter
	gradingsAppliedTotal      prometheus.Counter
	templatesSkippedTotal     prometheus.Counter
)

// RegisterMetrics initialises the Prometheus collectors used by the
// rendering, generation and grading pipeline.
func RegisterMetrics() {
	registerOnce.Do(func() {
		questionRendersTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "question_renders_total",
			Help: "Total number of question templates rendered.",
		}, []string{"kind", "outcome"})

		evaluationFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "formula_evaluation_failures_total",
			Help: "Total number of formula evaluations that failed.",
		})

		assignmentsGeneratedTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "assignments_generated_total",
			Help: "Total number of per-student assignments generated.",
		})

		gradingsAppliedTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gradings_applied_total",
			Help: "Total number of submitted assignments graded.",
		})

		templatesSkippedTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "templates_skipped_total",
			Help: "Total number of invalid question templates skipped during generation.",
		})

		prometheus.MustRegister(
			questionRendersTotal,
			evaluationFailuresTotal,
			assignmentsGeneratedTotal,
			gradingsAppliedTotal,
			templatesSkippedTotal,
		)
	})
}

// QuestionRenders exposes the render counter, labelled by question kind
// (trig / exact) and outcome (ok / eval_failed).
func QuestionRenders() *prometheus.CounterVec {
	RegisterMetrics()
	return questionRendersTotal
}

// EvaluationFailures exposes the formula failure counter.
func EvaluationFailures() prometheus.Counter {
	RegisterMetrics()
	return evaluationFailuresTotal
}

// AssignmentsGenerated exposes the generated-assignment counter.
func AssignmentsGenerated() prometheus.Counter {
	RegisterMetrics()
	return assignmentsGeneratedTotal
}

// GradingsApplied exposes the grading counter.
func GradingsApplied() prometheus.Counter {
	RegisterMetrics()
	return gradingsAppliedTotal
}

// TemplatesSkipped exposes the skipped-template counter.
func TemplatesSkipped() prometheus.Counter {
	RegisterMetrics()
	return templatesSkippedTotal
}
