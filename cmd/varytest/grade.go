package main

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"github.com/varytest/engine/internal/dto"
	"github.com/varytest/engine/internal/models"
	"github.com/varytest/engine/internal/repository"
	"github.com/varytest/engine/internal/service"
)

var gradeCmd = &cobra.Command{
	Use:   "grade",
	Short: "Submit answers for a generated assignment and grade it",
	RunE:  runGrade,
}

func init() {
	gradeCmd.Flags().String("assignments", "", "Path to generated assignments JSON file")
	gradeCmd.Flags().String("id", "", "ID of the assignment to grade")
	gradeCmd.Flags().StringSlice("answers", nil, "Submitted answers, one per question")
	_ = gradeCmd.MarkFlagRequired("assignments")
	_ = gradeCmd.MarkFlagRequired("id")
}

func runGrade(cmd *cobra.Command, _ []string) error {
	_, logger, _, err := setup()
	if err != nil {
		return err
	}

	assignmentsPath, _ := cmd.Flags().GetString("assignments")
	assignmentID, _ := cmd.Flags().GetString("id")
	answers, _ := cmd.Flags().GetStringSlice("answers")

	var assignments []models.Assignment
	if err := loadJSON(assignmentsPath, &assignments); err != nil {
		return err
	}

	ctx := context.Background()
	repo := repository.NewMemoryAssignmentRepository()
	if err := repo.CreateBatch(ctx, assignments); err != nil {
		return err
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	submitter := service.NewSubmissionService(repo, validate, logger)
	grader := service.NewGradingService(repo, logger)

	if _, err := submitter.Submit(ctx, dto.SubmitAnswersRequest{AssignmentID: assignmentID, Answers: answers}); err != nil {
		// An already-submitted assignment can still be graded below.
		if !errors.Is(err, service.ErrAlreadySubmitted) {
			return err
		}
	}

	graded, err := grader.Grade(ctx, assignmentID)
	if err != nil {
		return err
	}

	return printJSON(graded)
}
