package firestore

import (
	"context"
	"fmt"
	"time"

	cf "cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/huluca/repairshop-backend/internal/domain/entity"
	"github.com/huluca/repairshop-backend/internal/domain/repository"
)

const repairsCollection = "repairs"

var _ repository.RepairRepository = (*RepairRepo)(nil)

// RepairRepo implements the RepairRepository port over Firestore.
type RepairRepo struct {
	client *cf.Client
}

// NewRepairRepository builds the persistence adapter for repair orders.
func NewRepairRepository(client *cf.Client) *RepairRepo {
	return &RepairRepo{client: client}
}

// ListPurgeable returns soft-deleted repairs whose deletion timestamp is at or
// before cutoff.
func (r *RepairRepo) ListPurgeable(ctx context.Context, cutoff time.Time, limit int) ([]*entity.Repair, error) {
	iter := r.client.Collection(repairsCollection).
		Where("deleted", "==", true).
		Where("deletedAt", "<=", cutoff).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	var list []*entity.Repair
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list purgeable repairs: %w", err)
		}
		var rep entity.Repair
		if err := snap.DataTo(&rep); err != nil {
			return nil, fmt.Errorf("decode repair %s: %w", snap.Ref.ID, err)
		}
		rep.ID = snap.Ref.ID
		list = append(list, &rep)
	}
	return list, nil
}

// Delete permanently removes one repair document.
func (r *RepairRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.client.Collection(repairsCollection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("delete repair %s: %w", id, err)
	}
	return nil
}
