package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/huluca/repairshop-backend/internal/application/dto"
	"github.com/huluca/repairshop-backend/internal/domain"
)

// respondError maps a domain error onto the callable contract: a stable
// machine-readable code plus a human-readable message. Unclassified failures
// are reported as internal without leaking details.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "unauthenticated", Message: "sign in to use this endpoint"})
	case errors.Is(err, domain.ErrPermissionDenied):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "permission-denied", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidArgument):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "invalid-argument", Message: err.Error()})
	case errors.Is(err, domain.ErrAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "already-exists", Message: err.Error()})
	case errors.Is(err, domain.ErrFailedPrecondition):
		return c.Status(fiber.StatusPreconditionFailed).JSON(dto.ErrorResponse{Code: "failed-precondition", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "internal", Message: "internal error"})
	}
}
