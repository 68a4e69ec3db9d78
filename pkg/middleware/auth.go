package middleware

import (
	"strings"

	"hustleke/pkg/auth"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RequireRole accepts requests carrying a valid bearer token whose role
// claim equals role.
func RequireRole(jwtManager *auth.JWTManager, role string, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
		if token == "" {
			logger.Warn("Missing authorization token", zap.String("path", c.Path()))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authorization token required",
			})
		}

		claims, err := jwtManager.ValidateToken(token)
		if err != nil {
			logger.Warn("Invalid token", zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		if claims.Role != role {
			logger.Warn("Insufficient role",
				zap.String("user_id", claims.UserID),
				zap.String("role", claims.Role),
			)
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden",
			})
		}

		c.Locals("userID", claims.UserID)
		c.Locals("role", claims.Role)

		return c.Next()
	}
}
