package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cvinsight/cv-parser/internal/models"
	"cvinsight/cv-parser/internal/services"
)

type batchOutput struct {
	File    string            `json:"file"`
	Profile *models.CVProfile `json:"profile,omitempty"`
	Error   string            `json:"error,omitempty"`
	Kind    string            `json:"kind,omitempty"`
}

var extractCmd = &cobra.Command{
	Use:   "extract <file.pdf> [file.pdf...]",
	Short: "Extract structured CV profiles from PDFs",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		model, _ := cmd.Flags().GetString("model")
		concurrency, _ := cmd.Flags().GetInt("concurrency")

		rt, err := newRuntime(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.logger.Sync() //nolint:errcheck

		if len(args) == 1 {
			profile, err := rt.processor.ParseCVFile(cmd.Context(), args[0], model)
			if err != nil {
				rt.logger.Error("extraction failed", zap.String("file", args[0]), zap.Error(err))
				return err
			}
			return writeJSON(cmd.OutOrStdout(), profile)
		}

		extractor := services.NewBatchExtractor(rt.processor, concurrency, rt.logger)
		results := extractor.Extract(cmd.Context(), args, model)

		output := make([]batchOutput, 0, len(results))
		failed := 0
		for _, r := range results {
			entry := batchOutput{File: r.FilePath, Profile: r.Profile}
			if r.Err != nil {
				failed++
				entry.Error = r.Err.Error()
				entry.Kind = string(services.KindOf(r.Err))
			}
			output = append(output, entry)
		}

		if err := writeJSON(cmd.OutOrStdout(), output); err != nil {
			return err
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d files failed", failed, len(results))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringP("model", "m", "", "model type, see `cvparse models`")
	extractCmd.Flags().IntP("concurrency", "c", 2, "files parsed in parallel when several are given")
	extractCmd.MarkFlagRequired("model")
}
