package service

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/varytest/engine/internal/dto"
	"github.com/varytest/engine/internal/models"
	"github.com/varytest/engine/internal/observability"
	"github.com/varytest/engine/internal/repository"
)

// ErrEmptyTemplateBank indicates the subject has no usable question templates.
var ErrEmptyTemplateBank = errors.New("no question templates available")

// ErrEmptyRoster indicates no students resolved for the batch.
var ErrEmptyRoster = errors.New("roster is empty")

// GenerationService produces one randomized assignment per roster
// student from a subject's question bank.
type GenerationService interface {
	Generate(ctx context.Context, payload dto.GenerateAssignmentsRequest) ([]dto.AssignmentResponse, error)
}

type generationService struct {
	templates   repository.TemplateRepository
	assignments repository.AssignmentRepository
	renderer    QuestionRenderer
	validator   *validator.Validate
	rng         *rand.Rand
	logger      zerolog.Logger
	now         func() time.Time
}

// NewGenerationService constructs the assignment generation service.
func NewGenerationService(templates repository.TemplateRepository, assignments repository.AssignmentRepository, renderer QuestionRenderer, validate *validator.Validate, rng *rand.Rand, logger zerolog.Logger) GenerationService {
	return &generationService{
		templates:   templates,
		assignments: assignments,
		renderer:    renderer,
		validator:   validate,
		rng:         rng,
		logger:      logger.With().Str("component", "generation_service").Logger(),
		now:         time.Now,
	}
}

func (s *generationService) Generate(ctx context.Context, payload dto.GenerateAssignmentsRequest) ([]dto.AssignmentResponse, error) {
	tracer := otel.Tracer("github.com/varytest/engine/internal/service/generation")
	ctx, span := tracer.Start(ctx, "assignments.generate")
	span.SetAttributes(
		attribute.String("generation.subject_id", payload.SubjectID),
		attribute.Int("generation.roster_size", len(payload.Roster)),
	)
	defer span.End()

	if err := s.validator.Struct(payload); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "validation_failed")
		return nil, err
	}

	roster := payload.Roster.Normalize()
	if len(roster) == 0 {
		span.SetStatus(codes.Error, "empty_roster")
		return nil, ErrEmptyRoster
	}

	bank, err := s.templates.ListBySubject(ctx, payload.SubjectID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "template_query_failed")
		return nil, err
	}

	usable := make([]models.QuestionTemplate, 0, len(bank))
	for _, template := range bank {
		if err := template.Validate(); err != nil {
			s.logger.Warn().Err(err).Str("question_id", template.ID).Msg("skipping invalid template")
			observability.TemplatesSkipped().Inc()
			continue
		}
		usable = append(usable, template)
	}
	if len(usable) == 0 {
		span.SetStatus(codes.Error, "empty_template_bank")
		return nil, ErrEmptyTemplateBank
	}

	perStudent := payload.QuestionsPerStudent
	if perStudent > len(usable) {
		perStudent = len(usable)
	}

	createdAt := s.now()
	batch := make([]models.Assignment, 0, len(roster))
	for _, student := range roster {
		questions := make([]models.RenderedQuestion, 0, perStudent)
		for _, template := range s.sampleTemplates(usable, perStudent) {
			questions = append(questions, s.renderer.Render(template))
		}

		batch = append(batch, models.Assignment{
			ID:               uuid.NewString(),
			SubjectID:        payload.SubjectID,
			ClassID:          payload.ClassID,
			StudentID:        student.StudentID,
			StudentEmail:     student.Email,
			Questions:        questions,
			SubmittedAnswers: []string{},
			Status:           models.AssignmentStatusAssigned,
			CreatedAt:        createdAt,
		})
	}

	if err := s.assignments.CreateBatch(ctx, batch); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "assignment_persist_failed")
		return nil, err
	}

	observability.AssignmentsGenerated().Add(float64(len(batch)))
	s.logger.Info().
		Str("subject_id", payload.SubjectID).
		Int("assignments", len(batch)).
		Int("questions_per_student", perStudent).
		Msg("assignment batch generated")
	span.SetAttributes(attribute.Int("generation.assignments", len(batch)))

	return dto.NewAssignmentResponseSlice(batch), nil
}

// sampleTemplates draws n templates without replacement via a partial
// Fisher-Yates over an index slice, leaving the bank untouched.
func (s *generationService) sampleTemplates(bank []models.QuestionTemplate, n int) []models.QuestionTemplate {
	indexes := make([]int, len(bank))
	for i := range indexes {
		indexes[i] = i
	}
	for i := 0; i < n; i++ {
		j := i + s.rng.Intn(len(indexes)-i)
		indexes[i], indexes[j] = indexes[j], indexes[i]
	}

	sampled := make([]models.QuestionTemplate, 0, n)
	for _, idx := range indexes[:n] {
		sampled = append(sampled, bank[idx])
	}
	return sampled
}
