package firestore

import (
	"context"
	"fmt"

	cf "cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/huluca/repairshop-backend/internal/domain/entity"
	"github.com/huluca/repairshop-backend/internal/domain/repository"
)

const cleanupSettingsPath = "settings/cleanup"

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implements the SettingsRepository port over Firestore.
type SettingsRepo struct {
	client *cf.Client
}

// NewSettingsRepository builds the adapter for operational settings.
func NewSettingsRepository(client *cf.Client) *SettingsRepo {
	return &SettingsRepo{client: client}
}

// Cleanup reads the cleanup singleton; a missing document is (nil, nil).
func (r *SettingsRepo) Cleanup(ctx context.Context) (*entity.CleanupSettings, error) {
	snap, err := r.client.Doc(cleanupSettingsPath).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("read cleanup settings: %w", err)
	}
	var s entity.CleanupSettings
	if err := snap.DataTo(&s); err != nil {
		return nil, fmt.Errorf("decode cleanup settings: %w", err)
	}
	return &s, nil
}
