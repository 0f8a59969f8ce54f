package repository

import (
	"context"
	"time"

	"github.com/huluca/repairshop-backend/internal/domain/entity"
)

// RepairRepository defines the persistence port for repair orders.
type RepairRepository interface {
	// ListPurgeable returns up to limit soft-deleted repairs whose deletion
	// timestamp is at or before cutoff (inclusive boundary).
	ListPurgeable(ctx context.Context, cutoff time.Time, limit int) ([]*entity.Repair, error)
	// Delete permanently removes one repair.
	Delete(ctx context.Context, id string) error
}
