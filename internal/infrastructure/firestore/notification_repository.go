package firestore

import (
	"context"
	"fmt"

	cf "cloud.google.com/go/firestore"

	"github.com/huluca/repairshop-backend/internal/domain/entity"
	"github.com/huluca/repairshop-backend/internal/domain/repository"
)

const notificationsCollection = "shop_notifications"

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implements the NotificationRepository port over Firestore.
type NotificationRepo struct {
	client *cf.Client
}

// NewNotificationRepository builds the persistence adapter for the
// notification audit trail.
func NewNotificationRepository(client *cf.Client) *NotificationRepo {
	return &NotificationRepo{client: client}
}

// Save writes one notification record.
func (r *NotificationRepo) Save(ctx context.Context, n *entity.ShopNotification) error {
	_, err := r.client.Collection(notificationsCollection).Doc(n.ID).Set(ctx, map[string]interface{}{
		"shopId":       n.ShopID,
		"type":         n.Category,
		"title":        n.Title,
		"body":         n.Body,
		"targetUserId": n.TargetUserID,
		"senderId":     n.SenderID,
		"createdAt":    cf.ServerTimestamp,
	})
	if err != nil {
		return fmt.Errorf("save shop notification %s: %w", n.ID, err)
	}
	return nil
}
