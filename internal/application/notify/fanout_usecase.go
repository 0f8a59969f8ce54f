package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/huluca/repairshop-backend/internal/application/dto"
	"github.com/huluca/repairshop-backend/internal/domain"
	"github.com/huluca/repairshop-backend/internal/domain/entity"
	"github.com/huluca/repairshop-backend/internal/domain/notification"
	"github.com/huluca/repairshop-backend/internal/domain/repository"
	"github.com/huluca/repairshop-backend/pkg/logger"
)

// FanoutConfig settings for the generic notification fan-out.
type FanoutConfig struct {
	SuperAdminEmail string
}

// FanoutUseCase sends a generic notification to a shop: directory lookup,
// role-based permission filtering, composition and dispatch, with a persisted
// audit record. Counts are reported back to the caller.
type FanoutUseCase struct {
	users         repository.UserRepository
	notifications repository.NotificationRepository
	messenger     repository.Messenger
	cfg           FanoutConfig
	log           *logger.Logger
}

// NewFanoutUseCase builds the fan-out usecase.
func NewFanoutUseCase(
	users repository.UserRepository,
	notifications repository.NotificationRepository,
	messenger repository.Messenger,
	cfg FanoutConfig,
	log *logger.Logger,
) *FanoutUseCase {
	return &FanoutUseCase{users: users, notifications: notifications, messenger: messenger, cfg: cfg, log: log}
}

// Send resolves the audience, filters it by category permission, persists the
// notification record and dispatches one multi-recipient push.
func (uc *FanoutUseCase) Send(ctx context.Context, caller repository.Caller, in dto.SendNotificationRequest) (*dto.SendNotificationResponse, error) {
	if caller.UID == "" {
		return nil, domain.ErrUnauthenticated
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		title = "Notification"
	}
	category := in.Type
	if category == "" {
		category = notification.CategorySystem
	}

	profile, err := uc.users.GetByID(ctx, caller.UID)
	if err != nil {
		return nil, fmt.Errorf("%w: load caller profile: %v", domain.ErrInternal, err)
	}

	shopID := ""
	if profile != nil {
		shopID = profile.ShopID
	}
	// Only the super admin may point the notification at another shop.
	if in.ShopID != "" && strings.EqualFold(caller.Email, uc.cfg.SuperAdminEmail) {
		shopID = in.ShopID
	}
	if shopID == "" {
		return nil, fmt.Errorf("%w: caller has no shop", domain.ErrFailedPrecondition)
	}

	audience, err := uc.resolveAudience(ctx, shopID, in.TargetUserID)
	if err != nil {
		return nil, fmt.Errorf("%w: resolve audience: %v", domain.ErrInternal, err)
	}

	record := &entity.ShopNotification{
		ID:           uuid.New().String(),
		ShopID:       shopID,
		Category:     category,
		Title:        title,
		Body:         in.Body,
		TargetUserID: in.TargetUserID,
		SenderID:     caller.UID,
	}
	if err := uc.notifications.Save(ctx, record); err != nil {
		// The audit record is best-effort; delivery still proceeds.
		uc.log.Error().Err(err).Str("shop_id", shopID).Msg("save shop notification record")
	}

	var tokens []string
	for _, u := range audience {
		if !notification.Allowed(category, u.EffectiveRole()) {
			continue
		}
		if t := strings.TrimSpace(u.FCMToken); t != "" {
			tokens = append(tokens, t)
		}
	}

	if len(tokens) == 0 {
		uc.log.Info().Str("shop_id", shopID).Str("category", category).Msg("no recipients with permission and token")
		return &dto.SendNotificationResponse{Success: true}, nil
	}

	msg := notification.Message{
		Title: title,
		Body:  notification.Truncate(in.Body),
		Data: map[string]string{
			"type":           category,
			"shopId":         shopID,
			"senderId":       caller.UID,
			"notificationId": record.ID,
		},
		Profile: notification.ProfileFor(category),
	}

	sent, failed, err := uc.messenger.SendToTokens(ctx, tokens, msg)
	if err != nil {
		return nil, fmt.Errorf("%w: dispatch notification: %v", domain.ErrInternal, err)
	}

	uc.log.Info().
		Str("shop_id", shopID).
		Str("category", category).
		Int("sent", sent).
		Int("failed", failed).
		Msg("shop notification dispatched")

	return &dto.SendNotificationResponse{Success: true, SentCount: sent, FailedCount: failed}, nil
}

// resolveAudience lists the shop members, optionally narrowed to one target
// who must belong to the shop.
func (uc *FanoutUseCase) resolveAudience(ctx context.Context, shopID, targetUserID string) ([]*entity.User, error) {
	if targetUserID == "" {
		return uc.users.ListByShop(ctx, shopID)
	}
	target, err := uc.users.GetByID(ctx, targetUserID)
	if err != nil {
		return nil, err
	}
	if target == nil || target.ShopID != shopID {
		return nil, nil
	}
	return []*entity.User{target}, nil
}
