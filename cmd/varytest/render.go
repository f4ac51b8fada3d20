package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/varytest/engine/internal/dto"
	"github.com/varytest/engine/internal/service"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render one randomized instance of a question template",
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().String("bank", "", "Path to question bank JSON file")
	renderCmd.Flags().String("question", "", "ID of the template to render")
	_ = renderCmd.MarkFlagRequired("bank")
	_ = renderCmd.MarkFlagRequired("question")
}

func runRender(cmd *cobra.Command, _ []string) error {
	_, logger, rng, err := setup()
	if err != nil {
		return err
	}

	bankPath, _ := cmd.Flags().GetString("bank")
	questionID, _ := cmd.Flags().GetString("question")

	var bank dto.QuestionBankFile
	if err := loadJSON(bankPath, &bank); err != nil {
		return err
	}

	for _, template := range bank.Questions {
		if template.ID != questionID {
			continue
		}
		if err := template.Validate(); err != nil {
			return fmt.Errorf("template %s is invalid: %w", questionID, err)
		}
		renderer := service.NewQuestionRenderer(rng, logger)
		return printJSON(dto.NewRenderedQuestionResponse(renderer.Render(template)))
	}

	return fmt.Errorf("question %s not found in bank", questionID)
}
