package repository

import (
	"context"
	"errors"

	"github.com/varytest/engine/internal/models"
)

// ErrStatusConflict indicates a status-guarded update found the
// assignment in a different status than expected.
var ErrStatusConflict = errors.New("assignment status conflict")

// AssignmentRepository is the persistence sink for generated
// assignments and their lifecycle updates.
type AssignmentRepository interface {
	CreateBatch(ctx context.Context, assignments []models.Assignment) error
	GetByID(ctx context.Context, id string) (models.Assignment, error)
	ListBySubject(ctx context.Context, subjectID string) ([]models.Assignment, error)
	Update(ctx context.Context, assignment *models.Assignment) error
	// UpdateIfStatus persists the assignment in one atomic step, but
	// only when the stored record is still in the expected status;
	// otherwise it fails with ErrStatusConflict. This is the guard
	// that keeps two grading triggers from both applying
	// Submitted -> Graded, and it means readers never observe a
	// transitioned status without the fields written alongside it.
	UpdateIfStatus(ctx context.Context, assignment *models.Assignment, expected models.AssignmentStatus) error
}
