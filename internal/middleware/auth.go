package middleware

import (
	"campus-event-catalog/internal/config"
	"campus-event-catalog/internal/models"
	"campus-event-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
)

const (
	LocalSessionID   = "session_id"
	LocalCurrentUser = "current_user"
)

func JWTMiddleware(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(cfg.JWTSecret),
		ContextKey:   "token",
		ErrorHandler: jwtError,
		SuccessHandler: func(c *fiber.Ctx) error {
			token := c.Locals("token").(*jwt.Token)
			claims := token.Claims.(jwt.MapClaims)
			sessionID, _ := claims["session_id"].(string)
			if sessionID == "" {
				return utils.Error(c, "Unauthorized", fiber.StatusUnauthorized)
			}
			c.Locals(LocalSessionID, sessionID)
			return c.Next()
		},
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	return utils.Error(c, "Unauthorized", fiber.StatusUnauthorized)
}

func GetSessionIDFromContext(c *fiber.Ctx) (string, error) {
	sessionID, ok := c.Locals(LocalSessionID).(string)
	if !ok || sessionID == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "User not authenticated")
	}
	return sessionID, nil
}

func GetUserFromContext(c *fiber.Ctx) (*models.User, error) {
	user, ok := c.Locals(LocalCurrentUser).(*models.User)
	if !ok || user == nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "User not authenticated")
	}
	return user, nil
}
