package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/huluca/repairshop-backend/internal/application/dto"
	"github.com/huluca/repairshop-backend/internal/domain/repository"
)

// Locals keys for the verified caller identity.
const (
	localCallerUID   = "caller_uid"
	localCallerEmail = "caller_email"
)

// AuthMiddleware validates the Bearer ID token and stores the verified caller
// in c.Locals.
func AuthMiddleware(verifier repository.TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "unauthenticated", Message: "Authorization header required"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "unauthenticated", Message: "format: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "unauthenticated", Message: "empty token"})
		}
		caller, err := verifier.Verify(c.UserContext(), tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "unauthenticated", Message: "invalid or expired token"})
		}
		c.Locals(localCallerUID, caller.UID)
		c.Locals(localCallerEmail, caller.Email)
		return c.Next()
	}
}

// GetCaller returns the verified caller from the context (after AuthMiddleware).
func GetCaller(c *fiber.Ctx) repository.Caller {
	uid, _ := c.Locals(localCallerUID).(string)
	email, _ := c.Locals(localCallerEmail).(string)
	return repository.Caller{UID: uid, Email: email}
}
