package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/huluca/repairshop-backend/internal/application/dto"
	"github.com/huluca/repairshop-backend/internal/application/notify"
)

// NotificationHandler handles the generic shop notification callable.
type NotificationHandler struct {
	uc *notify.FanoutUseCase
}

// NewNotificationHandler builds the notification handler.
func NewNotificationHandler(uc *notify.FanoutUseCase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// Send fans a notification out to the caller's shop and reports delivery
// counts.
func (h *NotificationHandler) Send(c *fiber.Ctx) error {
	var in dto.SendNotificationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "invalid-argument", Message: "invalid request body"})
	}
	out, err := h.uc.Send(c.UserContext(), GetCaller(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
