package handlers

import (
	"fmt"
	"mime"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"cvinsight/cv-parser/internal/models"
	"cvinsight/cv-parser/internal/services"
)

const pdfContentType = "application/pdf"

type ParseHandler struct {
	processor      services.CVProcessor
	storageService services.StorageService
	maxFileSize    int64
	logger         *zap.Logger
}

func NewParseHandler(
	processor services.CVProcessor,
	storageService services.StorageService,
	maxFileSize int64,
	logger *zap.Logger,
) *ParseHandler {
	return &ParseHandler{
		processor:      processor,
		storageService: storageService,
		maxFileSize:    maxFileSize,
		logger:         logger,
	}
}

// HandleParseCV handles POST /parse-cv
func (h *ParseHandler) HandleParseCV(c *fiber.Ctx) error {
	var req models.ParseCVRequest
	if err := c.QueryParser(&req); err != nil {
		return badRequest(c, "invalid query parameters")
	}
	if err := requestValidator.Struct(&req); err != nil {
		return badRequest(c, "Request validation failed: "+err.Error())
	}

	file, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "file is required")
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(models.ErrorResponse{
			Error: fmt.Sprintf("CV file too large. Max size: %d bytes", h.maxFileSize),
			Kind:  string(services.KindInputRejected),
			Code:  fiber.StatusRequestEntityTooLarge,
		})
	}

	if mediaType, _, err := mime.ParseMediaType(file.Header.Get(fiber.HeaderContentType)); err != nil || mediaType != pdfContentType {
		return badRequest(c, "File must be a PDF")
	}

	filePath, err := h.storageService.SaveFile(file)
	if err != nil {
		h.logger.Error("failed to save uploaded file", zap.Error(err))
		return respondError(c, err)
	}
	h.logger.Info("file saved temporarily", zap.String("path", filePath))

	defer func() {
		if err := h.storageService.DeleteFile(filePath); err != nil {
			h.logger.Error("failed to remove temporary file", zap.String("path", filePath), zap.Error(err))
			return
		}
		h.logger.Info("temporary file removed", zap.String("path", filePath))
	}()

	profile, err := h.processor.ParseCVFile(c.UserContext(), filePath, req.ModelType)
	if err != nil {
		h.logger.Error("error processing CV", zap.String("model_type", req.ModelType), zap.Error(err))
		return respondError(c, err)
	}

	h.logger.Info("successfully parsed CV", zap.String("model_type", req.ModelType))
	return c.JSON(profile)
}
