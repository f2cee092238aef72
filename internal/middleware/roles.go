package middleware

import (
	"campus-event-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// StaffOnly lets faculty and admin through. It relies on the current user
// resolved from the session, not on the role claim in the token.
func StaffOnly(c *fiber.Ctx) error {
	user, err := GetUserFromContext(c)
	if err != nil {
		return utils.Error(c, "Unauthorized", fiber.StatusUnauthorized)
	}
	if !user.IsStaff() {
		return utils.Error(c, "You don't have permission to access this page", fiber.StatusForbidden)
	}
	return c.Next()
}
