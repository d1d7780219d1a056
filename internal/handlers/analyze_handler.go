package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"cvinsight/cv-parser/internal/models"
	"cvinsight/cv-parser/internal/services"
)

type AnalyzeHandler struct {
	processor services.CVProcessor
	logger    *zap.Logger
}

func NewAnalyzeHandler(processor services.CVProcessor, logger *zap.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{
		processor: processor,
		logger:    logger,
	}
}

// HandleAnalyzeCV handles POST /analyze-cv
func (h *AnalyzeHandler) HandleAnalyzeCV(c *fiber.Ctx) error {
	var req models.AnalyzeRequest
	if err := c.QueryParser(&req); err != nil {
		return badRequest(c, "invalid query parameters")
	}
	if err := requestValidator.Struct(&req); err != nil {
		return badRequest(c, "Request validation failed: "+err.Error())
	}

	if len(c.Body()) == 0 {
		return badRequest(c, "CV data is required in the request body")
	}

	var cv models.CVProfile
	if err := json.Unmarshal(c.Body(), &cv); err != nil {
		return badRequest(c, "Invalid CV data: "+err.Error())
	}

	report, err := h.processor.AnalyzeCV(c.UserContext(), &cv, services.AnalysisInput{
		JobTitle:     req.JobTitle,
		CompanyName:  req.CompanyName,
		Requirements: req.Requirements,
		ModelType:    req.ModelType,
	})
	if err != nil {
		h.logger.Error("error analyzing CV",
			zap.String("model_type", req.ModelType),
			zap.String("job_title", req.JobTitle),
			zap.Error(err),
		)
		return respondError(c, err)
	}

	h.logger.Info("successfully analyzed CV",
		zap.String("model_type", req.ModelType),
		zap.String("job_title", req.JobTitle),
		zap.String("company_name", req.CompanyName),
	)
	return c.JSON(report)
}
