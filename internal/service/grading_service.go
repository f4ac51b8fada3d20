package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/varytest/engine/internal/dto"
	"github.com/varytest/engine/internal/models"
	"github.com/varytest/engine/internal/observability"
	"github.com/varytest/engine/internal/repository"
)

// GradingService scores submitted assignments against their stored keys.
type GradingService interface {
	Grade(ctx context.Context, assignmentID string) (dto.AssignmentResponse, error)
}

type gradingService struct {
	assignments repository.AssignmentRepository
	logger      zerolog.Logger
	now         func() time.Time
}

// NewGradingService constructs the grading service.
func NewGradingService(assignments repository.AssignmentRepository, logger zerolog.Logger) GradingService {
	return &gradingService{
		assignments: assignments,
		logger:      logger.With().Str("component", "grading_service").Logger(),
		now:         time.Now,
	}
}

// Grade scores the assignment and applies the submitted -> graded
// transition. Any assignment not exactly in submitted status is left
// untouched and returned as-is: re-grading a graded assignment or
// grading an unsubmitted one is a no-op, never an error.
func (s *gradingService) Grade(ctx context.Context, assignmentID string) (dto.AssignmentResponse, error) {
	tracer := otel.Tracer("github.com/varytest/engine/internal/service/grading")
	ctx, span := tracer.Start(ctx, "assignments.grade")
	span.SetAttributes(attribute.String("grading.assignment_id", assignmentID))
	defer span.End()

	assignment, err := s.assignments.GetByID(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			span.SetStatus(codes.Error, "assignment_not_found")
			return dto.AssignmentResponse{}, ErrAssignmentNotFound
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "assignment_lookup_failed")
		return dto.AssignmentResponse{}, err
	}

	if assignment.Status != models.AssignmentStatusSubmitted {
		span.SetAttributes(attribute.Bool("grading.noop", true))
		s.logger.Debug().
			Str("assignment_id", assignmentID).
			Str("status", string(assignment.Status)).
			Msg("grading skipped, assignment not in submitted status")
		return dto.NewAssignmentResponse(assignment), nil
	}

	gradedAt := s.now()
	assignment.Status = models.AssignmentStatusGraded
	assignment.Score = scoreAnswers(assignment.Questions, assignment.SubmittedAnswers)
	assignment.GradedAt = &gradedAt

	// The status-guarded write is the guard against two grading
	// triggers racing on the same assignment: only one wins the
	// transition, and score and timestamp land with the status so no
	// reader sees a half-graded record.
	if err := s.assignments.UpdateIfStatus(ctx, &assignment, models.AssignmentStatusSubmitted); err != nil {
		if errors.Is(err, repository.ErrStatusConflict) {
			current, getErr := s.assignments.GetByID(ctx, assignmentID)
			if getErr != nil {
				return dto.AssignmentResponse{}, getErr
			}
			span.SetAttributes(attribute.Bool("grading.noop", true))
			return dto.NewAssignmentResponse(current), nil
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "status_transition_failed")
		return dto.AssignmentResponse{}, err
	}

	observability.GradingsApplied().Inc()
	s.logger.Info().
		Str("assignment_id", assignmentID).
		Int("score", assignment.Score).
		Int("questions", len(assignment.Questions)).
		Msg("assignment graded")
	span.SetAttributes(attribute.Int("grading.score", assignment.Score))

	return dto.NewAssignmentResponse(assignment), nil
}

// scoreAnswers compares submitted answers position-wise against the
// stored key. Option questions match on the correct option, everything
// else on the exact answer text; both sides are trimmed and an empty
// key or answer never counts. Missing entries score as empty.
func scoreAnswers(questions []models.RenderedQuestion, submitted []string) int {
	score := 0
	for i, question := range questions {
		var answer string
		if i < len(submitted) {
			answer = strings.TrimSpace(submitted[i])
		}
		if answer == "" {
			continue
		}

		key := question.Answer
		if question.IsMultipleChoice() {
			key = question.CorrectOption
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}

		if answer == key {
			score++
		}
	}
	return score
}
