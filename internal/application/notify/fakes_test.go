package notify_test

import (
	"context"
	"time"

	"github.com/huluca/repairshop-backend/internal/domain/entity"
	"github.com/huluca/repairshop-backend/internal/domain/notification"
	"github.com/huluca/repairshop-backend/internal/domain/repository"
	"github.com/huluca/repairshop-backend/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

// fakeUserRepo serves profiles from memory.
type fakeUserRepo struct {
	users []*entity.User
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) ListByShop(_ context.Context, shopID string) ([]*entity.User, error) {
	var list []*entity.User
	for _, u := range r.users {
		if u.ShopID == shopID {
			list = append(list, u)
		}
	}
	return list, nil
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error { return nil }

func (r *fakeUserRepo) ListStaleTokens(context.Context, time.Time, int) ([]*entity.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) ListWithTokens(context.Context, int) ([]*entity.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) ClearTokens(context.Context, []string) error { return nil }

// fakeMessenger records dispatch calls and reports every recipient delivered.
type topicSend struct {
	topic string
	msg   notification.Message
}

type tokenSend struct {
	tokens []string
	msg    notification.Message
}

type fakeMessenger struct {
	topicSends []topicSend
	tokenSends []tokenSend
}

var _ repository.Messenger = (*fakeMessenger)(nil)

func (m *fakeMessenger) SendToTopic(_ context.Context, topic string, msg notification.Message) error {
	m.topicSends = append(m.topicSends, topicSend{topic: topic, msg: msg})
	return nil
}

func (m *fakeMessenger) SendToTokens(_ context.Context, tokens []string, msg notification.Message) (int, int, error) {
	if len(tokens) == 0 {
		return 0, 0, nil
	}
	m.tokenSends = append(m.tokenSends, tokenSend{tokens: tokens, msg: msg})
	return len(tokens), 0, nil
}

// fakeNotificationRepo records saved audit records.
type fakeNotificationRepo struct {
	saved []*entity.ShopNotification
}

var _ repository.NotificationRepository = (*fakeNotificationRepo)(nil)

func (r *fakeNotificationRepo) Save(_ context.Context, n *entity.ShopNotification) error {
	r.saved = append(r.saved, n)
	return nil
}
