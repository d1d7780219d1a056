package handlers

import (
	"github.com/gofiber/fiber/v2"

	"cvinsight/cv-parser/internal/services"
)

type ModelsHandler struct {
	dispatcher *services.Dispatcher
}

func NewModelsHandler(dispatcher *services.Dispatcher) *ModelsHandler {
	return &ModelsHandler{
		dispatcher: dispatcher,
	}
}

// HandleListModels handles GET /models
func (h *ModelsHandler) HandleListModels(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"models": h.dispatcher.Models(),
	})
}
