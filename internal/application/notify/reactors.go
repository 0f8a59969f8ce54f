package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/huluca/repairshop-backend/internal/application/dto"
	"github.com/huluca/repairshop-backend/internal/domain/notification"
	"github.com/huluca/repairshop-backend/internal/domain/repository"
	"github.com/huluca/repairshop-backend/pkg/logger"
)

// RepairReactor reacts to repair-order mutations by broadcasting to the staff
// topic. Broadcast sends are not filtered per user; topic membership is the
// audience.
type RepairReactor struct {
	messenger repository.Messenger
	topic     string
	log       *logger.Logger
}

// NewRepairReactor builds the repair event reactor.
func NewRepairReactor(messenger repository.Messenger, topic string, log *logger.Logger) *RepairReactor {
	return &RepairReactor{messenger: messenger, topic: topic, log: log}
}

// Created announces a new repair order to the staff topic.
func (r *RepairReactor) Created(ctx context.Context, ev dto.RepairCreatedEvent) error {
	msg := notification.Message{
		Title: "New repair order",
		Body:  fmt.Sprintf("%s - %s", ev.Repair.CustomerName, ev.Repair.Model),
		Data: map[string]string{
			"repairId": ev.Repair.ID,
		},
	}
	if err := r.messenger.SendToTopic(ctx, r.topic, msg); err != nil {
		return fmt.Errorf("announce new repair: %w", err)
	}
	r.log.Info().Str("repair_id", ev.Repair.ID).Msg("new repair announced")
	return nil
}

// Updated announces a status change to the staff topic. Updates that leave the
// status untouched are a no-op.
func (r *RepairReactor) Updated(ctx context.Context, ev dto.RepairUpdatedEvent) error {
	if ev.Before.Status == ev.After.Status {
		return nil
	}
	msg := notification.Message{
		Title: notification.StatusText(ev.After.Status),
		Body:  fmt.Sprintf("%s - %s", ev.After.CustomerName, ev.After.Model),
		Data: map[string]string{
			"repairId": ev.After.ID,
		},
	}
	if err := r.messenger.SendToTopic(ctx, r.topic, msg); err != nil {
		return fmt.Errorf("announce status change: %w", err)
	}
	r.log.Info().Str("repair_id", ev.After.ID).Int("status", ev.After.Status).Msg("status change announced")
	return nil
}

// ChatReactor notifies every shop member except the sender when a chat message
// is created.
type ChatReactor struct {
	users     repository.UserRepository
	messenger repository.Messenger
	log       *logger.Logger
}

// NewChatReactor builds the chat event reactor.
func NewChatReactor(users repository.UserRepository, messenger repository.Messenger, log *logger.Logger) *ChatReactor {
	return &ChatReactor{users: users, messenger: messenger, log: log}
}

// MessageCreated fans a chat message out to the sender's shop.
func (r *ChatReactor) MessageCreated(ctx context.Context, ev dto.ChatMessageCreatedEvent) error {
	members, err := r.users.ListByShop(ctx, ev.ShopID)
	if err != nil {
		return fmt.Errorf("list shop members: %w", err)
	}

	var tokens []string
	for _, u := range members {
		if u.ID == ev.SenderID {
			continue
		}
		if t := strings.TrimSpace(u.FCMToken); t != "" {
			tokens = append(tokens, t)
		}
	}

	if len(tokens) == 0 {
		r.log.Info().Str("shop_id", ev.ShopID).Msg("no delivery tokens for shop chat")
		return nil
	}

	msg := notification.Message{
		Title: ev.SenderName,
		Body:  notification.Truncate(ev.Message),
		Data: map[string]string{
			"type":     "chat",
			"chatId":   ev.ChatID,
			"shopId":   ev.ShopID,
			"senderId": ev.SenderID,
		},
		Profile: notification.Profile{ChannelID: "system_channel", Priority: notification.PriorityDefault, Sound: true},
		Badge:   1,
	}

	sent, failed, err := r.messenger.SendToTokens(ctx, tokens, msg)
	if err != nil {
		return fmt.Errorf("dispatch chat notification: %w", err)
	}
	r.log.Info().Str("shop_id", ev.ShopID).Int("sent", sent).Int("failed", failed).Msg("chat notifications dispatched")
	return nil
}
