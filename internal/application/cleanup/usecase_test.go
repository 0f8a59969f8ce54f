package cleanup_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huluca/repairshop-backend/internal/application/cleanup"
	"github.com/huluca/repairshop-backend/internal/domain/entity"
	"github.com/huluca/repairshop-backend/internal/domain/repository"
	"github.com/huluca/repairshop-backend/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

type fakeRepairRepo struct {
	purgeable  []*entity.Repair
	listCutoff time.Time
	listCalled bool
	deleted    []string
	failDelete map[string]bool
}

var _ repository.RepairRepository = (*fakeRepairRepo)(nil)

func (r *fakeRepairRepo) ListPurgeable(_ context.Context, cutoff time.Time, _ int) ([]*entity.Repair, error) {
	r.listCalled = true
	r.listCutoff = cutoff
	return r.purgeable, nil
}

func (r *fakeRepairRepo) Delete(_ context.Context, id string) error {
	if r.failDelete[id] {
		return errors.New("delete failed")
	}
	r.deleted = append(r.deleted, id)
	return nil
}

type fakeUserRepo struct {
	stale        []*entity.User
	holders      []*entity.User
	holdersLimit int
	cleared      []string
	clearCalls   int
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func (r *fakeUserRepo) GetByID(context.Context, string) (*entity.User, error) { return nil, nil }

func (r *fakeUserRepo) ListByShop(context.Context, string) ([]*entity.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) Create(context.Context, *entity.User) error { return nil }

func (r *fakeUserRepo) ListStaleTokens(_ context.Context, _ time.Time, _ int) ([]*entity.User, error) {
	return r.stale, nil
}

func (r *fakeUserRepo) ListWithTokens(_ context.Context, limit int) ([]*entity.User, error) {
	r.holdersLimit = limit
	return r.holders, nil
}

func (r *fakeUserRepo) ClearTokens(_ context.Context, ids []string) error {
	r.clearCalls++
	r.cleared = append(r.cleared, ids...)
	return nil
}

type fakeSettingsRepo struct {
	cfg *entity.CleanupSettings
}

var _ repository.SettingsRepository = (*fakeSettingsRepo)(nil)

func (r *fakeSettingsRepo) Cleanup(context.Context) (*entity.CleanupSettings, error) {
	return r.cfg, nil
}

func intPtr(v int) *int { return &v }

func TestPurgeRepairs_MissingSettingsSkipsRun(t *testing.T) {
	repairs := &fakeRepairRepo{purgeable: []*entity.Repair{{ID: "r1"}}}
	uc := cleanup.NewUseCase(repairs, &fakeUserRepo{}, &fakeSettingsRepo{cfg: nil}, testLogger())

	n, err := uc.PurgeRepairs(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.False(t, repairs.listCalled, "disabled job must not touch the store")
}

func TestPurgeRepairs_DisabledSettingsSkipsRun(t *testing.T) {
	repairs := &fakeRepairRepo{purgeable: []*entity.Repair{{ID: "r1"}}}
	uc := cleanup.NewUseCase(repairs, &fakeUserRepo{}, &fakeSettingsRepo{
		cfg: &entity.CleanupSettings{Enabled: false},
	}, testLogger())

	n, err := uc.PurgeRepairs(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.False(t, repairs.listCalled)
}

func TestPurgeRepairs_DefaultRetentionIsThirtyDays(t *testing.T) {
	repairs := &fakeRepairRepo{}
	uc := cleanup.NewUseCase(repairs, &fakeUserRepo{}, &fakeSettingsRepo{
		cfg: &entity.CleanupSettings{Enabled: true},
	}, testLogger())

	_, err := uc.PurgeRepairs(context.Background())
	require.NoError(t, err)
	require.True(t, repairs.listCalled)
	want := time.Now().Add(-30 * 24 * time.Hour)
	assert.WithinDuration(t, want, repairs.listCutoff, time.Minute)
}

func TestPurgeRepairs_NonPositiveRetentionSkipsRun(t *testing.T) {
	repairs := &fakeRepairRepo{}
	uc := cleanup.NewUseCase(repairs, &fakeUserRepo{}, &fakeSettingsRepo{
		cfg: &entity.CleanupSettings{Enabled: true, RepairRetentionDays: intPtr(-5)},
	}, testLogger())

	n, err := uc.PurgeRepairs(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.False(t, repairs.listCalled)
}

func TestPurgeRepairs_DeletesAndSurvivesIndividualFailures(t *testing.T) {
	repairs := &fakeRepairRepo{
		purgeable:  []*entity.Repair{{ID: "r1"}, {ID: "r2"}, {ID: "r3"}},
		failDelete: map[string]bool{"r2": true},
	}
	uc := cleanup.NewUseCase(repairs, &fakeUserRepo{}, &fakeSettingsRepo{
		cfg: &entity.CleanupSettings{Enabled: true, RepairRetentionDays: intPtr(7)},
	}, testLogger())

	n, err := uc.PurgeRepairs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n, "one failed delete must not abort the run")
	assert.Equal(t, []string{"r1", "r3"}, repairs.deleted)
}

func TestPruneTokens_ClearsStaleTokens(t *testing.T) {
	users := &fakeUserRepo{stale: []*entity.User{
		{ID: "u1", FCMToken: "tok1"},
		{ID: "u2", FCMToken: "  "},
		{ID: "u3", FCMToken: "tok3"},
	}}
	uc := cleanup.NewUseCase(&fakeRepairRepo{}, users, &fakeSettingsRepo{}, testLogger())

	n, err := uc.PruneTokens(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.ElementsMatch(t, []string{"u1", "u3"}, users.cleared, "tokenless profiles are not staged")
	assert.Equal(t, 1, users.clearCalls, "all clears land in one commit")
}

func TestPruneTokens_DuplicateTokensKeepMostRecentHolder(t *testing.T) {
	// Holders arrive ordered by token then recency descending.
	users := &fakeUserRepo{holders: []*entity.User{
		{ID: "recent", FCMToken: "shared"},
		{ID: "older", FCMToken: "shared"},
		{ID: "oldest", FCMToken: "shared"},
		{ID: "solo", FCMToken: "unique"},
	}}
	uc := cleanup.NewUseCase(&fakeRepairRepo{}, users, &fakeSettingsRepo{}, testLogger())

	n, err := uc.PruneTokens(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.ElementsMatch(t, []string{"older", "oldest"}, users.cleared)
}

func TestPruneTokens_NothingToDoSkipsCommit(t *testing.T) {
	users := &fakeUserRepo{}
	uc := cleanup.NewUseCase(&fakeRepairRepo{}, users, &fakeSettingsRepo{}, testLogger())

	n, err := uc.PruneTokens(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Zero(t, users.clearCalls, "empty runs must not commit")
}

func TestPruneTokens_StaleScanBoundsTheDuplicateScan(t *testing.T) {
	stale := make([]*entity.User, 10)
	for i := range stale {
		stale[i] = &entity.User{ID: string(rune('a' + i)), FCMToken: "tok"}
	}
	users := &fakeUserRepo{stale: stale}
	uc := cleanup.NewUseCase(&fakeRepairRepo{}, users, &fakeSettingsRepo{}, testLogger())

	_, err := uc.PruneTokens(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 490, users.holdersLimit, "duplicate scan gets what is left of the budget")
}
