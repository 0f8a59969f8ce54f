package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/huluca/repairshop-backend/internal/application/dto"
	"github.com/huluca/repairshop-backend/internal/application/notify"
	"github.com/huluca/repairshop-backend/pkg/logger"
)

// EventHandler receives document-mutation events from the pipeline. Reactor
// failures are logged and swallowed so one failing notification never makes
// the pipeline redeliver or the invocation crash.
type EventHandler struct {
	repairs *notify.RepairReactor
	chat    *notify.ChatReactor
	log     *logger.Logger
}

// NewEventHandler builds the event handler.
func NewEventHandler(repairs *notify.RepairReactor, chat *notify.ChatReactor, log *logger.Logger) *EventHandler {
	return &EventHandler{repairs: repairs, chat: chat, log: log}
}

// RepairCreated reacts to a new repair document.
func (h *EventHandler) RepairCreated(c *fiber.Ctx) error {
	var ev dto.RepairCreatedEvent
	if err := c.BodyParser(&ev); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "invalid-argument", Message: "invalid event payload"})
	}
	if err := h.repairs.Created(c.UserContext(), ev); err != nil {
		h.log.Error().Err(err).Str("repair_id", ev.Repair.ID).Msg("repair created reactor failed")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RepairUpdated reacts to a repair document update.
func (h *EventHandler) RepairUpdated(c *fiber.Ctx) error {
	var ev dto.RepairUpdatedEvent
	if err := c.BodyParser(&ev); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "invalid-argument", Message: "invalid event payload"})
	}
	if err := h.repairs.Updated(c.UserContext(), ev); err != nil {
		h.log.Error().Err(err).Str("repair_id", ev.After.ID).Msg("repair updated reactor failed")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ChatMessageCreated reacts to a new chat message document.
func (h *EventHandler) ChatMessageCreated(c *fiber.Ctx) error {
	var ev dto.ChatMessageCreatedEvent
	if err := c.BodyParser(&ev); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "invalid-argument", Message: "invalid event payload"})
	}
	if err := h.chat.MessageCreated(c.UserContext(), ev); err != nil {
		h.log.Error().Err(err).Str("chat_id", ev.ChatID).Msg("chat reactor failed")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
