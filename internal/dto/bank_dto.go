package dto

import "github.com/varytest/engine/internal/models"

// QuestionBankFile is the on-disk JSON shape of a subject's question
// bank consumed by the CLI.
type QuestionBankFile struct {
	SubjectID string                    `json:"subject_id" validate:"required"`
	Questions []models.QuestionTemplate `json:"questions" validate:"min=1,dive"`
}

// RosterFile is the on-disk JSON shape of a resolved student roster.
type RosterFile struct {
	ClassID  string        `json:"class_id"`
	Students models.Roster `json:"students" validate:"min=1"`
}
