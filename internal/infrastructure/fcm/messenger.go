package fcm

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"

	"github.com/huluca/repairshop-backend/internal/domain/notification"
	"github.com/huluca/repairshop-backend/internal/domain/repository"
)

var _ repository.Messenger = (*Messenger)(nil)

// Messenger implements the push-dispatch port over Firebase Cloud Messaging.
type Messenger struct {
	client *messaging.Client
}

// New builds the FCM adapter from an initialized Firebase app.
func New(ctx context.Context, app *firebase.App) (*Messenger, error) {
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("create messaging client: %w", err)
	}
	return &Messenger{client: client}, nil
}

// SendToTopic publishes one message to a broadcast topic.
func (m *Messenger) SendToTopic(ctx context.Context, topic string, msg notification.Message) error {
	_, err := m.client.Send(ctx, &messaging.Message{
		Topic:        topic,
		Notification: &messaging.Notification{Title: msg.Title, Body: msg.Body},
		Data:         msg.Data,
		Android:      androidConfig(msg),
		APNS:         apnsConfig(msg),
	})
	if err != nil {
		return fmt.Errorf("send to topic %s: %w", topic, err)
	}
	return nil
}

// SendToTokens issues one multi-recipient push and reports per-token counts.
// Failed recipients are counted, never retried.
func (m *Messenger) SendToTokens(ctx context.Context, tokens []string, msg notification.Message) (int, int, error) {
	if len(tokens) == 0 {
		return 0, 0, nil
	}
	resp, err := m.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
		Tokens:       tokens,
		Notification: &messaging.Notification{Title: msg.Title, Body: msg.Body},
		Data:         msg.Data,
		Android:      androidConfig(msg),
		APNS:         apnsConfig(msg),
	})
	if err != nil {
		return 0, 0, fmt.Errorf("send multicast: %w", err)
	}
	return resp.SuccessCount, resp.FailureCount, nil
}

func androidConfig(msg notification.Message) *messaging.AndroidConfig {
	priority := "normal"
	if msg.Profile.Priority == notification.PriorityHigh {
		priority = "high"
	}
	cfg := &messaging.AndroidConfig{Priority: priority}
	if msg.Profile.ChannelID != "" {
		cfg.Notification = &messaging.AndroidNotification{
			ChannelID:    msg.Profile.ChannelID,
			DefaultSound: msg.Profile.Sound,
		}
	}
	return cfg
}

func apnsConfig(msg notification.Message) *messaging.APNSConfig {
	aps := &messaging.Aps{}
	if msg.Profile.Sound {
		aps.Sound = "default"
	}
	if msg.Badge > 0 {
		badge := msg.Badge
		aps.Badge = &badge
	}
	return &messaging.APNSConfig{Payload: &messaging.APNSPayload{Aps: aps}}
}
