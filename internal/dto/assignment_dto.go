package dto

import (
	"time"

	"github.com/varytest/engine/internal/models"
)

// GenerateAssignmentsRequest is the payload for a batch generation run.
type GenerateAssignmentsRequest struct {
	SubjectID           string        `json:"subject_id" validate:"required"`
	ClassID             string        `json:"class_id"`
	Roster              models.Roster `json:"roster"`
	QuestionsPerStudent int           `json:"questions_per_student" validate:"min=1"`
}

// SubmitAnswersRequest carries a student's answers for one assignment.
type SubmitAnswersRequest struct {
	AssignmentID string   `json:"assignment_id" validate:"required"`
	Answers      []string `json:"answers" validate:"required"`
}

// RenderedQuestionResponse is the serialized form of one rendered question.
type RenderedQuestionResponse struct {
	QuestionID    string            `json:"question_id"`
	Text          string            `json:"text"`
	Variables     map[string]string `json:"variables"`
	Answer        string            `json:"answer"`
	Options       []string          `json:"options,omitempty"`
	CorrectOption string            `json:"correct_option,omitempty"`
}

// AssignmentResponse is the serialized form of an assignment.
type AssignmentResponse struct {
	ID               string                     `json:"id"`
	SubjectID        string                     `json:"subject_id"`
	ClassID          string                     `json:"class_id,omitempty"`
	StudentID        string                     `json:"student_id,omitempty"`
	StudentEmail     string                     `json:"student_email,omitempty"`
	Questions        []RenderedQuestionResponse `json:"questions"`
	SubmittedAnswers []string                   `json:"submitted_answers"`
	Status           string                     `json:"status"`
	Score            int                        `json:"score"`
	CreatedAt        time.Time                  `json:"created_at"`
	SubmittedAt      *time.Time                 `json:"submitted_at,omitempty"`
	GradedAt         *time.Time                 `json:"graded_at,omitempty"`
}

// NewRenderedQuestionResponse converts a rendered question model.
func NewRenderedQuestionResponse(q models.RenderedQuestion) RenderedQuestionResponse {
	return RenderedQuestionResponse{
		QuestionID:    q.QuestionID,
		Text:          q.Text,
		Variables:     q.Variables,
		Answer:        q.Answer,
		Options:       q.Options,
		CorrectOption: q.CorrectOption,
	}
}

// NewAssignmentResponse converts an assignment model.
func NewAssignmentResponse(a models.Assignment) AssignmentResponse {
	questions := make([]RenderedQuestionResponse, 0, len(a.Questions))
	for _, q := range a.Questions {
		questions = append(questions, NewRenderedQuestionResponse(q))
	}

	submitted := a.SubmittedAnswers
	if submitted == nil {
		submitted = []string{}
	}

	return AssignmentResponse{
		ID:               a.ID,
		SubjectID:        a.SubjectID,
		ClassID:          a.ClassID,
		StudentID:        a.StudentID,
		StudentEmail:     a.StudentEmail,
		Questions:        questions,
		SubmittedAnswers: submitted,
		Status:           string(a.Status),
		Score:            a.Score,
		CreatedAt:        a.CreatedAt,
		SubmittedAt:      a.SubmittedAt,
		GradedAt:         a.GradedAt,
	}
}

// NewAssignmentResponseSlice converts a batch of assignments.
func NewAssignmentResponseSlice(assignments []models.Assignment) []AssignmentResponse {
	out := make([]AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		out = append(out, NewAssignmentResponse(a))
	}
	return out
}
