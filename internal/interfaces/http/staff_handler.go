package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/huluca/repairshop-backend/internal/application/dto"
	"github.com/huluca/repairshop-backend/internal/application/provision"
)

// StaffHandler handles the staff provisioning callable.
type StaffHandler struct {
	uc *provision.UseCase
}

// NewStaffHandler builds the staff handler.
func NewStaffHandler(uc *provision.UseCase) *StaffHandler {
	return &StaffHandler{uc: uc}
}

// Create provisions a staff account on behalf of the authenticated caller.
func (h *StaffHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStaffRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "invalid-argument", Message: "invalid request body"})
	}
	out, err := h.uc.CreateStaff(c.UserContext(), GetCaller(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
