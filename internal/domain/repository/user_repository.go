package repository

import (
	"context"
	"time"

	"github.com/huluca/repairshop-backend/internal/domain/entity"
)

// UserRepository defines the persistence port for staff profiles (DIP).
// Lookup methods return (nil, nil) when the document does not exist.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// ListByShop returns every profile in a shop, including those without a
	// delivery token; token filtering is the caller's concern.
	ListByShop(ctx context.Context, shopID string) ([]*entity.User, error)
	// Create writes a profile with merge semantics (idempotent for a given id).
	Create(ctx context.Context, user *entity.User) error
	// ListStaleTokens returns up to limit profiles whose token was last
	// updated before cutoff.
	ListStaleTokens(ctx context.Context, cutoff time.Time, limit int) ([]*entity.User, error)
	// ListWithTokens returns up to limit profiles that carry a token, ordered
	// by token value then by token recency (most recent first).
	ListWithTokens(ctx context.Context, limit int) ([]*entity.User, error)
	// ClearTokens removes the token and its timestamp from the given profiles
	// in a single batched commit.
	ClearTokens(ctx context.Context, ids []string) error
}
