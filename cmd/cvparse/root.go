package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"cvinsight/cv-parser/internal/config"
	"cvinsight/cv-parser/internal/logger"
	"cvinsight/cv-parser/internal/services"
)

const (
	app = "cvparse"
)

var rootCmd = &cobra.Command{
	Use:          app,
	Short:        "cvparse turns CV PDFs into structured profiles and analyzes them against a job",
	SilenceUsage: true,
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("debug", "LOG_DEBUG"); err != nil {
		log.Fatalf("binding LOG_DEBUG environment variable: %v", err)
	}
	if err := viper.BindEnv("json", "LOG_JSON"); err != nil {
		log.Fatalf("binding LOG_JSON environment variable: %v", err)
	}

	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().Duration("timeout", 0, "deadline for a single LLM call (default is LLM_TIMEOUT)")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
}

// runtime bundles what every command needs to talk to a backend.
type runtime struct {
	logger     *zap.Logger
	dispatcher *services.Dispatcher
	processor  services.CVProcessor
}

func newRuntime(ctx context.Context) (*runtime, error) {
	zlog, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		return nil, fmt.Errorf("creating a logger: %w", err)
	}

	cfg := config.Load()
	if timeout := viper.GetDuration("timeout"); timeout > 0 {
		cfg.LLM.Timeout = timeout
	}

	dispatcher, err := services.NewDispatcher(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &runtime{
		logger:     zlog,
		dispatcher: dispatcher,
		processor:  services.NewCVProcessor(dispatcher, services.NewPDFParserService(), cfg.LLM.Timeout, zlog),
	}, nil
}
