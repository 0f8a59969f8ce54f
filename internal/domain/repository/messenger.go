package repository

import (
	"context"

	"github.com/huluca/repairshop-backend/internal/domain/notification"
)

// Messenger defines the push-dispatch port. Implementations report delivery
// counts but never retry failed recipients.
type Messenger interface {
	// SendToTopic publishes one message to a broadcast topic.
	SendToTopic(ctx context.Context, topic string, msg notification.Message) error
	// SendToTokens issues one multi-recipient push. An empty token list makes
	// no call and reports zero sent.
	SendToTokens(ctx context.Context, tokens []string, msg notification.Message) (sent, failed int, err error)
}
