package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/varytest/engine/internal/dto"
	"github.com/varytest/engine/internal/models"
	"github.com/varytest/engine/internal/repository"
)

// ErrAssignmentNotFound indicates the assignment does not exist.
var ErrAssignmentNotFound = errors.New("assignment not found")

// ErrAlreadySubmitted indicates the assignment already left the
// assigned state; re-submission is not allowed.
var ErrAlreadySubmitted = errors.New("assignment already submitted")

// SubmissionService applies a student's answers to an assignment,
// transitioning it from assigned to submitted exactly once.
type SubmissionService interface {
	Submit(ctx context.Context, payload dto.SubmitAnswersRequest) (dto.AssignmentResponse, error)
}

type submissionService struct {
	assignments repository.AssignmentRepository
	validator   *validator.Validate
	logger      zerolog.Logger
	now         func() time.Time
}

// NewSubmissionService constructs the submission service.
func NewSubmissionService(assignments repository.AssignmentRepository, validate *validator.Validate, logger zerolog.Logger) SubmissionService {
	return &submissionService{
		assignments: assignments,
		validator:   validate,
		logger:      logger.With().Str("component", "submission_service").Logger(),
		now:         time.Now,
	}
}

func (s *submissionService) Submit(ctx context.Context, payload dto.SubmitAnswersRequest) (dto.AssignmentResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.AssignmentResponse{}, err
	}

	assignment, err := s.assignments.GetByID(ctx, payload.AssignmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return dto.AssignmentResponse{}, ErrAssignmentNotFound
		}
		return dto.AssignmentResponse{}, err
	}

	submittedAt := s.now()
	assignment.Status = models.AssignmentStatusSubmitted
	assignment.SubmittedAnswers = payload.Answers
	assignment.SubmittedAt = &submittedAt

	// The status-guarded write keeps a second submission from
	// overwriting the first: the answers land together with the
	// assigned -> submitted transition or not at all.
	if err := s.assignments.UpdateIfStatus(ctx, &assignment, models.AssignmentStatusAssigned); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return dto.AssignmentResponse{}, ErrAssignmentNotFound
		case errors.Is(err, repository.ErrStatusConflict):
			return dto.AssignmentResponse{}, ErrAlreadySubmitted
		default:
			return dto.AssignmentResponse{}, err
		}
	}

	s.logger.Info().Str("assignment_id", assignment.ID).Int("answers", len(payload.Answers)).Msg("answers submitted")

	return dto.NewAssignmentResponse(assignment), nil
}
