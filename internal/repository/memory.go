package repository

import (
	"context"
	"sync"

	"github.com/varytest/engine/internal/models"
)

// MemoryTemplateRepository is a mutex-guarded in-memory question bank.
// The portal's document store is an external collaborator, so this is
// the implementation the CLI and tests run against.
type MemoryTemplateRepository struct {
	mu        sync.RWMutex
	templates map[string]models.QuestionTemplate
	order     []string
}

// NewMemoryTemplateRepository instantiates an empty in-memory bank.
func NewMemoryTemplateRepository() *MemoryTemplateRepository {
	return &MemoryTemplateRepository{templates: make(map[string]models.QuestionTemplate)}
}

func (r *MemoryTemplateRepository) Create(_ context.Context, template *models.QuestionTemplate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.templates[template.ID]; !exists {
		r.order = append(r.order, template.ID)
	}
	r.templates[template.ID] = *template
	return nil
}

func (r *MemoryTemplateRepository) GetByID(_ context.Context, id string) (models.QuestionTemplate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	template, ok := r.templates[id]
	if !ok {
		return models.QuestionTemplate{}, ErrNotFound
	}
	return template, nil
}

func (r *MemoryTemplateRepository) ListBySubject(_ context.Context, subjectID string) ([]models.QuestionTemplate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.QuestionTemplate
	for _, id := range r.order {
		t := r.templates[id]
		if subjectID == "" || t.SubjectID == subjectID {
			out = append(out, t)
		}
	}
	return out, nil
}

// MemoryAssignmentRepository is a mutex-guarded in-memory assignment
// store with an atomic status-guarded update.
type MemoryAssignmentRepository struct {
	mu          sync.RWMutex
	assignments map[string]models.Assignment
	order       []string
}

// NewMemoryAssignmentRepository instantiates an empty in-memory store.
func NewMemoryAssignmentRepository() *MemoryAssignmentRepository {
	return &MemoryAssignmentRepository{assignments: make(map[string]models.Assignment)}
}

func (r *MemoryAssignmentRepository) CreateBatch(_ context.Context, assignments []models.Assignment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range assignments {
		if _, exists := r.assignments[a.ID]; !exists {
			r.order = append(r.order, a.ID)
		}
		r.assignments[a.ID] = a
	}
	return nil
}

func (r *MemoryAssignmentRepository) GetByID(_ context.Context, id string) (models.Assignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	assignment, ok := r.assignments[id]
	if !ok {
		return models.Assignment{}, ErrNotFound
	}
	return assignment, nil
}

func (r *MemoryAssignmentRepository) ListBySubject(_ context.Context, subjectID string) ([]models.Assignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Assignment
	for _, id := range r.order {
		a := r.assignments[id]
		if subjectID == "" || a.SubjectID == subjectID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *MemoryAssignmentRepository) Update(_ context.Context, assignment *models.Assignment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.assignments[assignment.ID]; !ok {
		return ErrNotFound
	}
	r.assignments[assignment.ID] = *assignment
	return nil
}

func (r *MemoryAssignmentRepository) UpdateIfStatus(_ context.Context, assignment *models.Assignment, expected models.AssignmentStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.assignments[assignment.ID]
	if !ok {
		return ErrNotFound
	}
	if current.Status != expected {
		return ErrStatusConflict
	}
	r.assignments[assignment.ID] = *assignment
	return nil
}
