package repository

import "context"

// ShopRepository defines the persistence port for shops.
type ShopRepository interface {
	// RecordStaffCreation upserts the shop, marking who last provisioned a
	// staff account for it.
	RecordStaffCreation(ctx context.Context, shopID, creatorID string) error
}
