package cleanup

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/huluca/repairshop-backend/internal/domain/repository"
	"github.com/huluca/repairshop-backend/pkg/logger"
)

const (
	// maxMutationsPerRun bounds both jobs to one batch of the document store.
	maxMutationsPerRun = 500
	// tokenMaxAge is how long a delivery token stays valid without an update.
	tokenMaxAge = 30 * 24 * time.Hour
)

// UseCase runs the two scheduled maintenance jobs: purging soft-deleted
// repairs past the retention window and pruning stale or duplicate delivery
// tokens. Individual failures are logged and never abort a run.
type UseCase struct {
	repairs  repository.RepairRepository
	users    repository.UserRepository
	settings repository.SettingsRepository
	log      *logger.Logger
}

// NewUseCase builds the cleanup usecase.
func NewUseCase(
	repairs repository.RepairRepository,
	users repository.UserRepository,
	settings repository.SettingsRepository,
	log *logger.Logger,
) *UseCase {
	return &UseCase{repairs: repairs, users: users, settings: settings, log: log}
}

// PurgeRepairs permanently deletes soft-deleted repairs older than the
// configured retention window. The job is opt-in: a missing settings document
// or enabled=false is a no-op. Returns the number of repairs deleted.
func (uc *UseCase) PurgeRepairs(ctx context.Context) (int, error) {
	cfg, err := uc.settings.Cleanup(ctx)
	if err != nil {
		return 0, fmt.Errorf("read cleanup settings: %w", err)
	}
	if cfg == nil || !cfg.Enabled {
		uc.log.Info().Msg("repair purge disabled via settings/cleanup, skipping")
		return 0, nil
	}

	days := cfg.RetentionDays()
	if days <= 0 {
		uc.log.Warn().Int("days", days).Msg("invalid repair retention window, skipping")
		return 0, nil
	}

	cutoff := time.Now().Add(-time.Duration(days) * 24 * time.Hour)
	repairs, err := uc.repairs.ListPurgeable(ctx, cutoff, maxMutationsPerRun)
	if err != nil {
		return 0, fmt.Errorf("list purgeable repairs: %w", err)
	}
	uc.log.Info().Int("count", len(repairs)).Int("days", days).Msg("found soft-deleted repairs past retention")

	deleted := 0
	for _, r := range repairs {
		if err := uc.repairs.Delete(ctx, r.ID); err != nil {
			uc.log.Error().Err(err).Str("repair_id", r.ID).Msg("delete repair failed")
			continue
		}
		deleted++
	}
	return deleted, nil
}

// PruneTokens clears delivery tokens in two passes within one mutation budget:
// tokens not refreshed within 30 days, then duplicate tokens keeping only the
// most recently updated holder. All clears land in a single batched commit,
// skipped entirely when nothing was staged. Returns the number of profiles
// whose token was cleared.
func (uc *UseCase) PruneTokens(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-tokenMaxAge)

	stale, err := uc.users.ListStaleTokens(ctx, cutoff, maxMutationsPerRun)
	if err != nil {
		return 0, fmt.Errorf("list stale tokens: %w", err)
	}

	var ids []string
	for _, u := range stale {
		if strings.TrimSpace(u.FCMToken) != "" {
			ids = append(ids, u.ID)
		}
	}
	uc.log.Info().Int("count", len(ids)).Msg("stale delivery tokens staged for clearing")

	if remaining := maxMutationsPerRun - len(ids); remaining > 0 {
		holders, err := uc.users.ListWithTokens(ctx, remaining)
		if err != nil {
			return 0, fmt.Errorf("list token holders: %w", err)
		}
		// Holders arrive ordered by token then recency, so the first
		// occurrence of each token is its most recent holder.
		seen := make(map[string]bool)
		for _, u := range holders {
			token := u.FCMToken
			if token == "" {
				continue
			}
			if seen[token] {
				ids = append(ids, u.ID)
				continue
			}
			seen[token] = true
		}
	}

	if len(ids) == 0 {
		uc.log.Info().Msg("no delivery tokens to prune")
		return 0, nil
	}

	if err := uc.users.ClearTokens(ctx, ids); err != nil {
		return 0, fmt.Errorf("clear tokens: %w", err)
	}
	uc.log.Info().Int("count", len(ids)).Msg("delivery tokens pruned")
	return len(ids), nil
}
