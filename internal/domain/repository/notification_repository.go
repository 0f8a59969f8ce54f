package repository

import (
	"context"

	"github.com/huluca/repairshop-backend/internal/domain/entity"
)

// NotificationRepository persists the audit trail of generic shop notifications.
type NotificationRepository interface {
	Save(ctx context.Context, n *entity.ShopNotification) error
}
