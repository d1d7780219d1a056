package handlers

import (
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"cvinsight/cv-parser/internal/models"
	"cvinsight/cv-parser/internal/services"
)

var requestValidator = newRequestValidator()

// newRequestValidator reports query parameter names instead of Go field
// names in validation errors.
func newRequestValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		if name := field.Tag.Get("query"); name != "" {
			return name
		}
		return field.Name
	})
	return v
}

func statusFor(kind services.ErrorKind) int {
	switch kind {
	case services.KindStorage:
		return fiber.StatusInternalServerError
	case services.KindInputRejected,
		services.KindBackend,
		services.KindNotParseable,
		services.KindSchema,
		services.KindConfiguration:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func respondError(c *fiber.Ctx, err error) error {
	kind := services.KindOf(err)
	status := statusFor(kind)

	return c.Status(status).JSON(models.ErrorResponse{
		Error: err.Error(),
		Kind:  string(kind),
		Code:  status,
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
		Error: message,
		Kind:  string(services.KindInputRejected),
		Code:  fiber.StatusBadRequest,
	})
}
