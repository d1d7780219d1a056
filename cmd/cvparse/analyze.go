package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cvinsight/cv-parser/internal/models"
	"cvinsight/cv-parser/internal/services"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <cv.json>",
	Short: "Analyze a parsed CV profile against a job description",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		model, _ := flags.GetString("model")
		jobTitle, _ := flags.GetString("job-title")
		company, _ := flags.GetString("company")
		requirements, _ := flags.GetString("requirements")

		cv, err := readProfile(args[0])
		if err != nil {
			return err
		}

		rt, err := newRuntime(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.logger.Sync() //nolint:errcheck

		report, err := rt.processor.AnalyzeCV(cmd.Context(), cv, services.AnalysisInput{
			JobTitle:     jobTitle,
			CompanyName:  company,
			Requirements: requirements,
			ModelType:    model,
		})
		if err != nil {
			rt.logger.Error("analysis failed", zap.String("job_title", jobTitle), zap.Error(err))
			return err
		}

		return writeJSON(cmd.OutOrStdout(), report)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringP("model", "m", "", "model type, see `cvparse models`")
	analyzeCmd.Flags().String("job-title", "", "title of the position")
	analyzeCmd.Flags().String("company", "", "hiring company")
	analyzeCmd.Flags().String("requirements", "", "job requirements text")

	for _, name := range []string{"model", "job-title", "company", "requirements"} {
		analyzeCmd.MarkFlagRequired(name)
	}
}

func readProfile(path string) (*models.CVProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading CV profile: %w", err)
	}

	var cv models.CVProfile
	if err := json.Unmarshal(data, &cv); err != nil {
		return nil, fmt.Errorf("decoding CV profile %s: %w", path, err)
	}

	return &cv, nil
}
