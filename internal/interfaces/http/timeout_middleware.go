package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// WithTimeout bounds every request context with the platform-wide
// per-invocation timeout. A timeout aborts in-flight downstream calls; partial
// multi-step side effects are not rolled back.
func WithTimeout(d time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), d)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}
