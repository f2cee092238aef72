package utils

import "github.com/gofiber/fiber/v2"

// Response is the envelope every JSON endpoint answers with.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Field   string      `json:"field,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

type Meta struct {
	Total int `json:"total"`
}

func respond(c *fiber.Ctx, code int, resp Response) error {
	return c.Status(code).JSON(resp)
}

func statusOr(fallback int, statusCode []int) int {
	if len(statusCode) > 0 {
		return statusCode[0]
	}
	return fallback
}

// Success answers 200 unless a status is given.
func Success(c *fiber.Ctx, data interface{}, message string, statusCode ...int) error {
	return respond(c, statusOr(fiber.StatusOK, statusCode), Response{Success: true, Message: message, Data: data})
}

// SuccessWithMeta is Success for lists, with the item count in meta.
func SuccessWithMeta(c *fiber.Ctx, data interface{}, meta *Meta, message string) error {
	return respond(c, fiber.StatusOK, Response{Success: true, Message: message, Data: data, Meta: meta})
}

// Error answers 400 unless a status is given.
func Error(c *fiber.Ctx, message string, statusCode ...int) error {
	return respond(c, statusOr(fiber.StatusBadRequest, statusCode), Response{Error: message})
}

// FieldError is a 400 naming the offending input field.
func FieldError(c *fiber.Ctx, field, message string) error {
	return respond(c, fiber.StatusBadRequest, Response{Error: message, Field: field})
}
