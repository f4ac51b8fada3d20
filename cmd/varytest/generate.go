package main

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"github.com/varytest/engine/internal/dto"
	"github.com/varytest/engine/internal/repository"
	"github.com/varytest/engine/internal/service"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one randomized assignment per roster student",
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().String("bank", "", "Path to question bank JSON file")
	generateCmd.Flags().String("roster", "", "Path to resolved roster JSON file")
	generateCmd.Flags().Int("count", 0, "Questions per student (defaults to VARYTEST_QUESTIONS_PER_STUDENT)")
	_ = generateCmd.MarkFlagRequired("bank")
	_ = generateCmd.MarkFlagRequired("roster")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, logger, rng, err := setup()
	if err != nil {
		return err
	}

	bankPath, _ := cmd.Flags().GetString("bank")
	rosterPath, _ := cmd.Flags().GetString("roster")
	count, _ := cmd.Flags().GetInt("count")
	if count <= 0 {
		count = cfg.QuestionsPerStudent
	}

	var bank dto.QuestionBankFile
	if err := loadJSON(bankPath, &bank); err != nil {
		return err
	}
	var roster dto.RosterFile
	if err := loadJSON(rosterPath, &roster); err != nil {
		return err
	}

	ctx := context.Background()
	templateRepo := repository.NewMemoryTemplateRepository()
	for i := range bank.Questions {
		bank.Questions[i].SubjectID = bank.SubjectID
		if err := templateRepo.Create(ctx, &bank.Questions[i]); err != nil {
			return err
		}
	}

	assignmentRepo := repository.NewMemoryAssignmentRepository()
	validate := validator.New(validator.WithRequiredStructEnabled())
	renderer := service.NewQuestionRenderer(rng, logger)
	generator := service.NewGenerationService(templateRepo, assignmentRepo, renderer, validate, rng, logger)

	assignments, err := generator.Generate(ctx, dto.GenerateAssignmentsRequest{
		SubjectID:           bank.SubjectID,
		ClassID:             roster.ClassID,
		Roster:              roster.Students,
		QuestionsPerStudent: count,
	})
	if err != nil {
		return err
	}

	return printJSON(assignments)
}
