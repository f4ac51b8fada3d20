package models

import "time"

// AssignmentStatus tracks an assignment through its lifecycle.
type AssignmentStatus string

const (
	// AssignmentStatusAssigned indicates the test was generated but not yet taken.
	AssignmentStatusAssigned AssignmentStatus = "assigned"
	// AssignmentStatusSubmitted indicates the student handed in answers.
	AssignmentStatusSubmitted AssignmentStatus = "submitted"
	// AssignmentStatusGraded indicates the submission has been scored.
	AssignmentStatusGraded AssignmentStatus = "graded"
)

// RenderedQuestion is one concrete instance of a question template:
// placeholders replaced by sampled values and the answer key computed.
type RenderedQuestion struct {
	QuestionID    string            `json:"question_id"`
	Text          string            `json:"text"`
	Variables     map[string]string `json:"variables"`
	Answer        string            `json:"answer"`
	Options       []string          `json:"options,omitempty"`
	CorrectOption string            `json:"correct_option,omitempty"`
}

// IsMultipleChoice reports whether the question carries a symbolic
// option set rather than an exact-text answer key.
func (q RenderedQuestion) IsMultipleChoice() bool {
	return len(q.Options) > 0
}

// Assignment is one student's instance of a rendered test.
type Assignment struct {
	ID               string             `json:"id"`
	SubjectID        string             `json:"subject_id"`
	ClassID          string             `json:"class_id,omitempty"`
	StudentID        string             `json:"student_id,omitempty"`
	StudentEmail     string             `json:"student_email,omitempty"`
	Questions        []RenderedQuestion `json:"questions"`
	SubmittedAnswers []string           `json:"submitted_answers"`
	Status           AssignmentStatus   `json:"status"`
	Score            int                `json:"score"`
	CreatedAt        time.Time          `json:"created_at"`
	SubmittedAt      *time.Time         `json:"submitted_at,omitempty"`
	GradedAt         *time.Time         `json:"graded_at,omitempty"`
}

// IsGraded reports whether the assignment has a final score.
func (a Assignment) IsGraded() bool {
	return a.Status == AssignmentStatusGraded
}
