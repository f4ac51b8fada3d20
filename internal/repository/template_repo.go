package repository

import (
	"context"
	"errors"

	"github.com/varytest/engine/internal/models"
)

// ErrNotFound indicates the requested record does not exist.
var ErrNotFound = errors.New("record not found")

// TemplateRepository defines the query capability over a subject's
// question bank the engine consumes.
type TemplateRepository interface {
	ListBySubject(ctx context.Context, subjectID string) ([]models.QuestionTemplate, error)
	GetByID(ctx context.Context, id string) (models.QuestionTemplate, error)
	Create(ctx context.Context, template *models.QuestionTemplate) error
}
