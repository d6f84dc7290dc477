package middleware

import (
	"eduapi/config"

	"github.com/gofiber/fiber/v2"
)

// FieldError reports a single validation failure on a request body field.
// Order matters: errors are reported in rule-declaration order.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// JsonResponse writes the standard response envelope. Every response carries
// an explicit success boolean; message and data are omitted when empty.
func JsonResponse(c *fiber.Ctx, statusCode int, success bool, message string, data interface{}) error {
	body := fiber.Map{"success": success}
	if message != "" {
		body["message"] = message
	}
	if data != nil {
		body["data"] = data
	}
	return c.Status(statusCode).JSON(body)
}

// ListResponse writes a collection with its count.
func ListResponse(c *fiber.Ctx, count int, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"count":   count,
		"data":    data,
	})
}

// ValidationErrorResponse rejects a request with the ordered field failures.
func ValidationErrorResponse(c *fiber.Ctx, errors []FieldError) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": "Validation errors",
		"errors":  errors,
	})
}

// ServerErrorResponse writes a generic 500. Raw error detail is attached only
// outside production.
func ServerErrorResponse(c *fiber.Ctx, err error) error {
	body := fiber.Map{
		"success": false,
		"message": "Server Error",
	}
	if err != nil && config.AppConfig.IsDevelopment() {
		body["error"] = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(body)
}
