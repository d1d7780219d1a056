package server

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"cvinsight/cv-parser/internal/handlers"
	"cvinsight/cv-parser/internal/services"
)

const (
	appName    = "CV Parser API"
	appVersion = "1.0.0"
)

// Dependencies are the services the HTTP layer is built on.
type Dependencies struct {
	Processor   services.CVProcessor
	Dispatcher  *services.Dispatcher
	Storage     services.StorageService
	MaxFileSize int64
	Logger      *zap.Logger
	// AccessLog enables the per-request access log middleware.
	AccessLog bool
}

// New builds the fiber application with middleware and all routes mounted.
func New(deps Dependencies) *fiber.App {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	// Leave headroom above the file limit for multipart framing so oversized
	// files reach the handler and get a descriptive 413.
	bodyLimit := int(deps.MaxFileSize) + 1<<20

	app := fiber.New(fiber.Config{
		AppName:      appName,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute,
		BodyLimit:    bodyLimit,
		ErrorHandler: errorHandler(log),
	})

	app.Use(recover.New())
	if deps.AccessLog {
		app.Use(fiberlogger.New(fiberlogger.Config{
			Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
			TimeFormat: "2006-01-02 15:04:05",
		}))
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	parseHandler := handlers.NewParseHandler(deps.Processor, deps.Storage, deps.MaxFileSize, log)
	analyzeHandler := handlers.NewAnalyzeHandler(deps.Processor, log)
	modelsHandler := handlers.NewModelsHandler(deps.Dispatcher)

	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/parse-cv", parseHandler.HandleParseCV)
	api.Post("/analyze-cv", analyzeHandler.HandleAnalyzeCV)
	api.Get("/models", modelsHandler.HandleListModels)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": appName,
			"version": appVersion,
			"endpoints": []string{
				"POST /api/v1/parse-cv/?model_type=",
				"POST /api/v1/analyze-cv/?job_title=&company_name=&requirements=&model_type=",
				"GET /api/v1/models",
				"GET /api/v1/health",
			},
		})
	})

	return app
}

func errorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
		}

		if code >= fiber.StatusInternalServerError {
			log.Error("request failed",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
		}

		return c.Status(code).JSON(fiber.Map{
			"error": err.Error(),
			"code":  code,
		})
	}
}
