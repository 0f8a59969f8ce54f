package http

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/huluca/repairshop-backend/internal/application/cleanup"
	"github.com/huluca/repairshop-backend/internal/application/dto"
	"github.com/huluca/repairshop-backend/pkg/logger"
)

// JobHandler exposes the scheduled maintenance jobs to the external
// scheduler. Failures are logged, never surfaced: the scheduler observes no
// return value.
type JobHandler struct {
	uc  *cleanup.UseCase
	log *logger.Logger
}

// NewJobHandler builds the job handler.
func NewJobHandler(uc *cleanup.UseCase, log *logger.Logger) *JobHandler {
	return &JobHandler{uc: uc, log: log}
}

// CleanupRepairs runs the repair purge (daily cadence).
func (h *JobHandler) CleanupRepairs(c *fiber.Ctx) error {
	deleted, err := h.uc.PurgeRepairs(c.UserContext())
	if err != nil {
		h.log.Error().Err(err).Msg("repair purge failed")
	} else {
		h.log.Info().Int("deleted", deleted).Msg("repair purge finished")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CleanupTokens runs the delivery-token prune (weekly cadence).
func (h *JobHandler) CleanupTokens(c *fiber.Ctx) error {
	cleared, err := h.uc.PruneTokens(c.UserContext())
	if err != nil {
		h.log.Error().Err(err).Msg("token prune failed")
	} else {
		h.log.Info().Int("cleared", cleared).Msg("token prune finished")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RequireJobSecret guards the job endpoints with a shared bearer secret.
func RequireJobSecret(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if secret == "" {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "permission-denied", Message: "job endpoints are disabled"})
		}
		presented := strings.TrimPrefix(c.Get("Authorization"), "Bearer ")
		if subtle.ConstantTimeCompare([]byte(presented), []byte(secret)) != 1 {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "permission-denied", Message: "invalid job credential"})
		}
		return c.Next()
	}
}
