package firestore

import (
	"context"
	"fmt"

	cf "cloud.google.com/go/firestore"

	"github.com/huluca/repairshop-backend/internal/domain/repository"
)

const shopsCollection = "shops"

var _ repository.ShopRepository = (*ShopRepo)(nil)

// ShopRepo implements the ShopRepository port over Firestore.
type ShopRepo struct {
	client *cf.Client
}

// NewShopRepository builds the persistence adapter for shops.
func NewShopRepository(client *cf.Client) *ShopRepo {
	return &ShopRepo{client: client}
}

// RecordStaffCreation upserts the shop document with merge semantics, marking
// who last provisioned a staff account.
func (r *ShopRepo) RecordStaffCreation(ctx context.Context, shopID, creatorID string) error {
	_, err := r.client.Collection(shopsCollection).Doc(shopID).Set(ctx, map[string]interface{}{
		"createdAt":          cf.ServerTimestamp,
		"lastStaffCreatedBy": creatorID,
	}, cf.MergeAll)
	if err != nil {
		return fmt.Errorf("upsert shop %s: %w", shopID, err)
	}
	return nil
}
