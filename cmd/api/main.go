package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"cvinsight/cv-parser/internal/config"
	"cvinsight/cv-parser/internal/logger"
	"cvinsight/cv-parser/internal/server"
	"cvinsight/cv-parser/internal/services"
)

func main() {
	cfg := config.Load()

	zlog, err := logger.New(cfg.Server.LogJSON, cfg.Server.LogDebug)
	if err != nil {
		log.Fatalf("creating a logger: %v", err)
	}
	defer zlog.Sync() //nolint:errcheck

	zlog.Info("config loaded", zap.String("env", cfg.Server.Env))

	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		zlog.Fatal("failed to create upload directory", zap.Error(err))
	}

	ctx := context.Background()

	dispatcher, err := services.NewDispatcher(ctx, cfg)
	if err != nil {
		zlog.Fatal("failed to initialize LLM providers", zap.Error(err))
	}
	for _, m := range dispatcher.Models() {
		if m.Available {
			zlog.Info("model available", zap.String("model_type", m.ID), zap.String(logger.FieldProvider, m.Provider), zap.String(logger.FieldModel, m.Model))
		} else {
			zlog.Debug("model unavailable", zap.String("model_type", m.ID), zap.String("reason", m.Reason))
		}
	}

	processor := services.NewCVProcessor(
		dispatcher,
		services.NewPDFParserService(),
		cfg.LLM.Timeout,
		zlog,
	)

	app := server.New(server.Dependencies{
		Processor:   processor,
		Dispatcher:  dispatcher,
		Storage:     storageService,
		MaxFileSize: cfg.Storage.MaxFileSize,
		Logger:      zlog,
		AccessLog:   true,
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		zlog.Info("shutting down server")
		if err := app.Shutdown(); err != nil {
			zlog.Error("server forced to shutdown", zap.Error(err))
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	zlog.Info("server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		zlog.Fatal("failed to start server", zap.Error(err))
	}
}
