package firestore

import (
	"context"
	"fmt"
	"time"

	cf "cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/huluca/repairshop-backend/internal/domain/entity"
	"github.com/huluca/repairshop-backend/internal/domain/repository"
)

const usersCollection = "users"

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implements the UserRepository port over Firestore.
type UserRepo struct {
	client *cf.Client
}

// NewUserRepository builds the persistence adapter for staff profiles.
func NewUserRepository(client *cf.Client) *UserRepo {
	return &UserRepo{client: client}
}

// GetByID reads one profile; a missing document is (nil, nil).
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	snap, err := r.client.Collection(usersCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}
	return docToUser(snap)
}

// ListByShop returns every profile with the given shop id, tokens or not.
func (r *UserRepo) ListByShop(ctx context.Context, shopID string) ([]*entity.User, error) {
	iter := r.client.Collection(usersCollection).Where("shopId", "==", shopID).Documents(ctx)
	return collectUsers(iter, "list users by shop")
}

// Create writes a profile with merge semantics so a replay against the same
// account id is idempotent.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	_, err := r.client.Collection(usersCollection).Doc(u.ID).Set(ctx, map[string]interface{}{
		"email":              u.Email,
		"displayName":        u.DisplayName,
		"phone":              u.Phone,
		"address":            u.Address,
		"role":               u.Role,
		"shopId":             u.ShopID,
		"createdBy":          u.CreatedBy,
		"createdAt":          cf.ServerTimestamp,
		"allowViewSales":     u.AllowViewSales,
		"allowViewRepairs":   u.AllowViewRepairs,
		"allowViewInventory": u.AllowViewInventory,
		"allowViewParts":     u.AllowViewParts,
		"allowViewSuppliers": u.AllowViewSuppliers,
		"allowViewCustomers": u.AllowViewCustomers,
		"allowViewWarranty":  u.AllowViewWarranty,
		"allowViewChat":      u.AllowViewChat,
		"allowViewPrinter":   u.AllowViewPrinter,
		"allowViewRevenue":   u.AllowViewRevenue,
		"allowViewExpenses":  u.AllowViewExpenses,
		"allowViewDebts":     u.AllowViewDebts,
	}, cf.MergeAll)
	if err != nil {
		return fmt.Errorf("write user profile %s: %w", u.ID, err)
	}
	return nil
}

// ListStaleTokens returns profiles whose token timestamp predates cutoff.
func (r *UserRepo) ListStaleTokens(ctx context.Context, cutoff time.Time, limit int) ([]*entity.User, error) {
	iter := r.client.Collection(usersCollection).
		Where("fcmTokenUpdatedAt", "<", cutoff).
		Limit(limit).
		Documents(ctx)
	return collectUsers(iter, "list stale tokens")
}

// ListWithTokens returns token holders ordered by token value then by token
// recency descending, so duplicate detection keeps the most recent holder.
func (r *UserRepo) ListWithTokens(ctx context.Context, limit int) ([]*entity.User, error) {
	iter := r.client.Collection(usersCollection).
		Where("fcmToken", "!=", nil).
		OrderBy("fcmToken", cf.Asc).
		OrderBy("fcmTokenUpdatedAt", cf.Desc).
		Limit(limit).
		Documents(ctx)
	return collectUsers(iter, "list token holders")
}

// ClearTokens removes token fields from the given profiles in one batched
// commit.
func (r *UserRepo) ClearTokens(ctx context.Context, ids []string) error {
	batch := r.client.Batch()
	for _, id := range ids {
		batch.Update(r.client.Collection(usersCollection).Doc(id), []cf.Update{
			{Path: "fcmToken", Value: cf.Delete},
			{Path: "fcmTokenUpdatedAt", Value: cf.Delete},
			{Path: "updatedAt", Value: cf.ServerTimestamp},
		})
	}
	if _, err := batch.Commit(ctx); err != nil {
		return fmt.Errorf("commit token clears: %w", err)
	}
	return nil
}

func collectUsers(iter *cf.DocumentIterator, op string) ([]*entity.User, error) {
	defer iter.Stop()
	var list []*entity.User
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		u, err := docToUser(snap)
		if err != nil {
			return nil, err
		}
		list = append(list, u)
	}
	return list, nil
}

func docToUser(snap *cf.DocumentSnapshot) (*entity.User, error) {
	var u entity.User
	if err := snap.DataTo(&u); err != nil {
		return nil, fmt.Errorf("decode user %s: %w", snap.Ref.ID, err)
	}
	u.ID = snap.Ref.ID
	return &u, nil
}
