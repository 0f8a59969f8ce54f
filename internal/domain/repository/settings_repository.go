package repository

import (
	"context"

	"github.com/huluca/repairshop-backend/internal/domain/entity"
)

// SettingsRepository reads operational settings singletons.
type SettingsRepository interface {
	// Cleanup returns the cleanup settings, or (nil, nil) when the document
	// does not exist (which disables the purge, not an error).
	Cleanup(ctx context.Context) (*entity.CleanupSettings, error)
}
