package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/varytest/engine/internal/models"
	"github.com/varytest/engine/internal/repository"
)

func seedAssignment(t *testing.T, repo *repository.MemoryAssignmentRepository, a models.Assignment) {
	t.Helper()
	require.NoError(t, repo.CreateBatch(context.Background(), []models.Assignment{a}))
}

func submittedAssignment() models.Assignment {
	submittedAt := time.Now().Add(-time.Minute)
	return models.Assignment{
		ID:        "a1",
		SubjectID: "math",
		StudentID: "s1",
		Questions: []models.RenderedQuestion{
			{
				QuestionID:    "q1",
				Text:          "What is sin(30)?",
				Answer:        "0.5",
				Options:       []string{"1/2", "-1/2", "1", "0"},
				CorrectOption: "1/2",
			},
			{
				QuestionID: "q2",
				Text:       "What is 6 times 7?",
				Answer:     "42",
			},
		},
		SubmittedAnswers: []string{"1/2", "42 "},
		Status:           models.AssignmentStatusSubmitted,
		SubmittedAt:      &submittedAt,
		CreatedAt:        time.Now().Add(-time.Hour),
	}
}

func TestGradeScoresOptionAndExactAnswers(t *testing.T) {
	repo := repository.NewMemoryAssignmentRepository()
	seedAssignment(t, repo, submittedAssignment())
	svc := NewGradingService(repo, zerolog.Nop())

	result, err := svc.Grade(context.Background(), "a1")
	require.NoError(t, err)
	require.Equal(t, 2, result.Score)
	require.Equal(t, string(models.AssignmentStatusGraded), result.Status)
	require.NotNil(t, result.GradedAt)
}

func TestGradeIsIdempotent(t *testing.T) {
	repo := repository.NewMemoryAssignmentRepository()
	seedAssignment(t, repo, submittedAssignment())
	svc := NewGradingService(repo, zerolog.Nop())

	first, err := svc.Grade(context.Background(), "a1")
	require.NoError(t, err)

	second, err := svc.Grade(context.Background(), "a1")
	require.NoError(t, err)
	require.Equal(t, first.Score, second.Score)
	require.Equal(t, first.Status, second.Status)
	require.Equal(t, first.GradedAt, second.GradedAt)
}

func TestGradeWritesGradedStateAtomically(t *testing.T) {
	repo := repository.NewMemoryAssignmentRepository()
	seedAssignment(t, repo, submittedAssignment())
	svc := NewGradingService(repo, zerolog.Nop())

	_, err := svc.Grade(context.Background(), "a1")
	require.NoError(t, err)

	// The stored record carries score and timestamp together with the
	// graded status; a reader never sees a half-graded assignment.
	stored, err := repo.GetByID(context.Background(), "a1")
	require.NoError(t, err)
	require.Equal(t, models.AssignmentStatusGraded, stored.Status)
	require.Equal(t, 2, stored.Score)
	require.NotNil(t, stored.GradedAt)
}

func TestGradeIgnoresUnsubmittedAssignment(t *testing.T) {
	repo := repository.NewMemoryAssignmentRepository()
	assignment := submittedAssignment()
	assignment.Status = models.AssignmentStatusAssigned
	assignment.SubmittedAnswers = nil
	seedAssignment(t, repo, assignment)
	svc := NewGradingService(repo, zerolog.Nop())

	result, err := svc.Grade(context.Background(), "a1")
	require.NoError(t, err)
	require.Equal(t, string(models.AssignmentStatusAssigned), result.Status)
	require.Equal(t, 0, result.Score)
}

func TestGradeMissingAssignment(t *testing.T) {
	repo := repository.NewMemoryAssignmentRepository()
	svc := NewGradingService(repo, zerolog.Nop())

	_, err := svc.Grade(context.Background(), "missing")
	require.ErrorIs(t, err, ErrAssignmentNotFound)
}

func TestGradeShortSubmissionArray(t *testing.T) {
	repo := repository.NewMemoryAssignmentRepository()
	assignment := submittedAssignment()
	assignment.SubmittedAnswers = []string{"1/2"}
	seedAssignment(t, repo, assignment)
	svc := NewGradingService(repo, zerolog.Nop())

	result, err := svc.Grade(context.Background(), "a1")
	require.NoError(t, err)
	require.Equal(t, 1, result.Score)
}

func TestScoreAnswers(t *testing.T) {
	questions := []models.RenderedQuestion{
		{Answer: "42"},
		{Answer: "7", Options: []string{"7", "8", "9", "10"}, CorrectOption: "7"},
		{Answer: ""},
		{Answer: "5"},
	}

	tests := []struct {
		name      string
		submitted []string
		expected  int
	}{
		{"all correct with whitespace", []string{" 42", "7 ", "x", "5"}, 3},
		{"empty answers never count", []string{"", "", "", ""}, 0},
		{"empty key never counts", []string{"42", "7", "", "5"}, 3},
		{"option mismatch", []string{"42", "8", "", ""}, 1},
		{"short array", []string{"42"}, 1},
		{"nil array", nil, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, scoreAnswers(questions, tc.submitted))
		})
	}
}
