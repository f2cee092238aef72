package middleware

import (
	"campus-event-catalog/internal/services"
	"campus-event-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
)

var validate = utils.NewValidator()

// BindAndValidate parses the request body into dest and runs its validate
// tags. Failures come back as *services.ValidationError.
func BindAndValidate(c *fiber.Ctx, dest interface{}) error {
	if err := c.BodyParser(dest); err != nil {
		return &services.ValidationError{Message: "Invalid request body"}
	}

	if err := validate.Struct(dest); err != nil {
		field, message := utils.ValidationMessage(err)
		return &services.ValidationError{Field: field, Message: message}
	}
	return nil
}
