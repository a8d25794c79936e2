package api

import (
	"github.com/gofiber/fiber/v3"

	"krishisahay/internal/models"
)

// jsonSuccess returns a 200 response with data wrapped in the standard envelope.
func jsonSuccess(c fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"data":   data,
	})
}

// jsonError returns an error response with the given HTTP status code.
func jsonError(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "error",
		"error":  message,
	})
}

// categoryParam parses the :category route parameter.
func categoryParam(c fiber.Ctx) (models.Category, bool) {
	return models.ParseCategory(c.Params("category"))
}
