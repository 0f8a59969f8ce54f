package provision_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huluca/repairshop-backend/internal/application/dto"
	"github.com/huluca/repairshop-backend/internal/application/provision"
	"github.com/huluca/repairshop-backend/internal/domain"
	"github.com/huluca/repairshop-backend/internal/domain/entity"
	"github.com/huluca/repairshop-backend/internal/domain/repository"
	"github.com/huluca/repairshop-backend/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

type fakeUserRepo struct {
	profiles  map[string]*entity.User
	created   []*entity.User
	createErr error
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return r.profiles[id], nil
}

func (r *fakeUserRepo) ListByShop(context.Context, string) ([]*entity.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, u)
	return nil
}

func (r *fakeUserRepo) ListStaleTokens(context.Context, time.Time, int) ([]*entity.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) ListWithTokens(context.Context, int) ([]*entity.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) ClearTokens(context.Context, []string) error { return nil }

type fakeShopRepo struct {
	shopID    string
	createdBy string
}

var _ repository.ShopRepository = (*fakeShopRepo)(nil)

func (r *fakeShopRepo) RecordStaffCreation(_ context.Context, shopID, createdBy string) error {
	r.shopID = shopID
	r.createdBy = createdBy
	return nil
}

type fakeIdentity struct {
	uid      string
	err      error
	accounts []string
}

var _ repository.IdentityProvider = (*fakeIdentity)(nil)

func (p *fakeIdentity) CreateAccount(_ context.Context, email, _, _ string) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	p.accounts = append(p.accounts, email)
	return p.uid, nil
}

func newUseCase(users *fakeUserRepo, shops *fakeShopRepo, identity *fakeIdentity) *provision.UseCase {
	return provision.NewUseCase(users, shops, identity, provision.Config{
		SuperAdminEmail: "admin@huluca.com",
	}, testLogger())
}

func validRequest() dto.CreateStaffRequest {
	return dto.CreateStaffRequest{
		Email:       "New.Staff@Shop.com",
		Password:    "secret1",
		DisplayName: "Trần Văn Bình",
		Phone:       "0901234567",
		Address:     "12 Lê Lợi, Huế",
	}
}

func TestCreateStaff_RequiresAuthenticatedCaller(t *testing.T) {
	uc := newUseCase(&fakeUserRepo{}, &fakeShopRepo{}, &fakeIdentity{uid: "new"})

	_, err := uc.CreateStaff(context.Background(), repository.Caller{}, validRequest())
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestCreateStaff_EmployeeIsDenied(t *testing.T) {
	users := &fakeUserRepo{profiles: map[string]*entity.User{
		"emp": {ID: "emp", Role: entity.RoleEmployee, ShopID: "shop1"},
	}}
	identity := &fakeIdentity{uid: "new"}
	uc := newUseCase(users, &fakeShopRepo{}, identity)

	_, err := uc.CreateStaff(context.Background(), repository.Caller{UID: "emp", Email: "emp@shop.com"}, validRequest())
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
	assert.Empty(t, identity.accounts, "denied caller must not reach the identity provider")
}

func TestCreateStaff_OwnerCreatesUserInOwnShop(t *testing.T) {
	users := &fakeUserRepo{profiles: map[string]*entity.User{
		"owner1": {ID: "owner1", Role: entity.RoleOwner, ShopID: "shop1"},
	}}
	shops := &fakeShopRepo{}
	uc := newUseCase(users, shops, &fakeIdentity{uid: "staff-uid"})

	out, err := uc.CreateStaff(context.Background(), repository.Caller{UID: "owner1", Email: "owner@shop.com"}, validRequest())
	require.NoError(t, err)
	assert.Equal(t, "staff-uid", out.UID)
	assert.Equal(t, entity.RoleUser, out.Role)
	assert.Equal(t, "shop1", out.ShopID)

	require.Len(t, users.created, 1)
	created := users.created[0]
	assert.Equal(t, "new.staff@shop.com", created.Email, "email is lowercased")
	assert.Equal(t, "TRẦN VĂN BÌNH", created.DisplayName, "display name is uppercased")
	assert.Equal(t, "12 LÊ LỢI, HUẾ", created.Address, "address is uppercased")
	assert.Equal(t, "owner1", created.CreatedBy)
	assert.False(t, created.AllowViewRevenue, "financial flags stay closed for regular staff")

	assert.Equal(t, "shop1", shops.shopID)
	assert.Equal(t, "owner1", shops.createdBy)
}

func TestCreateStaff_OwnerRequestingAdminGetsUser(t *testing.T) {
	users := &fakeUserRepo{profiles: map[string]*entity.User{
		"owner1": {ID: "owner1", Role: entity.RoleOwner, ShopID: "shop1"},
	}}
	uc := newUseCase(users, &fakeShopRepo{}, &fakeIdentity{uid: "staff-uid"})

	in := validRequest()
	in.Role = entity.RoleAdmin
	out, err := uc.CreateStaff(context.Background(), repository.Caller{UID: "owner1", Email: "owner@shop.com"}, in)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, out.Role, "only admin-level callers may mint admins")
}

func TestCreateStaff_AdminMayMintAdmin(t *testing.T) {
	users := &fakeUserRepo{profiles: map[string]*entity.User{
		"adm": {ID: "adm", Role: entity.RoleAdmin, ShopID: "shop1"},
	}}
	uc := newUseCase(users, &fakeShopRepo{}, &fakeIdentity{uid: "staff-uid"})

	in := validRequest()
	in.Role = entity.RoleAdmin
	out, err := uc.CreateStaff(context.Background(), repository.Caller{UID: "adm", Email: "adm@shop.com"}, in)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.Role)

	require.Len(t, users.created, 1)
	assert.True(t, users.created[0].AllowViewRevenue, "admins get the financial permissions")
	assert.True(t, users.created[0].AllowViewExpenses)
	assert.True(t, users.created[0].AllowViewDebts)
}

func TestCreateStaff_SuperAdminMayPickTheShop(t *testing.T) {
	users := &fakeUserRepo{profiles: map[string]*entity.User{}}
	shops := &fakeShopRepo{}
	uc := newUseCase(users, shops, &fakeIdentity{uid: "staff-uid"})

	in := validRequest()
	in.ShopID = "shop42"
	out, err := uc.CreateStaff(context.Background(), repository.Caller{UID: "root", Email: "ADMIN@huluca.com"}, in)
	require.NoError(t, err)
	assert.Equal(t, "shop42", out.ShopID)
	assert.Equal(t, "shop42", shops.shopID)
}

func TestCreateStaff_RegularCallerCannotPickTheShop(t *testing.T) {
	users := &fakeUserRepo{profiles: map[string]*entity.User{
		"owner1": {ID: "owner1", Role: entity.RoleOwner, ShopID: "shop1"},
	}}
	uc := newUseCase(users, &fakeShopRepo{}, &fakeIdentity{uid: "staff-uid"})

	in := validRequest()
	in.ShopID = "shop42"
	out, err := uc.CreateStaff(context.Background(), repository.Caller{UID: "owner1", Email: "owner@shop.com"}, in)
	require.NoError(t, err)
	assert.Equal(t, "shop1", out.ShopID, "foreign shop id is ignored for regular callers")
}

func TestCreateStaff_ValidatesInput(t *testing.T) {
	users := &fakeUserRepo{profiles: map[string]*entity.User{
		"owner1": {ID: "owner1", Role: entity.RoleOwner, ShopID: "shop1"},
	}}
	uc := newUseCase(users, &fakeShopRepo{}, &fakeIdentity{uid: "staff-uid"})
	caller := repository.Caller{UID: "owner1", Email: "owner@shop.com"}

	short := validRequest()
	short.Password = "12345"
	_, err := uc.CreateStaff(context.Background(), caller, short)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	noEmail := validRequest()
	noEmail.Email = "  "
	_, err = uc.CreateStaff(context.Background(), caller, noEmail)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	noName := validRequest()
	noName.DisplayName = ""
	_, err = uc.CreateStaff(context.Background(), caller, noName)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestCreateStaff_DuplicateEmail(t *testing.T) {
	users := &fakeUserRepo{profiles: map[string]*entity.User{
		"owner1": {ID: "owner1", Role: entity.RoleOwner, ShopID: "shop1"},
	}}
	uc := newUseCase(users, &fakeShopRepo{}, &fakeIdentity{err: domain.ErrAlreadyExists})

	_, err := uc.CreateStaff(context.Background(), repository.Caller{UID: "owner1", Email: "owner@shop.com"}, validRequest())
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestCreateStaff_ProfileWriteFailure(t *testing.T) {
	users := &fakeUserRepo{
		profiles: map[string]*entity.User{
			"owner1": {ID: "owner1", Role: entity.RoleOwner, ShopID: "shop1"},
		},
		createErr: errors.New("store unavailable"),
	}
	uc := newUseCase(users, &fakeShopRepo{}, &fakeIdentity{uid: "orphan-uid"})

	_, err := uc.CreateStaff(context.Background(), repository.Caller{UID: "owner1", Email: "owner@shop.com"}, validRequest())
	assert.ErrorIs(t, err, domain.ErrInternal)
}

func TestCreateStaff_CallerWithoutProfileUsesOwnUIDAsShop(t *testing.T) {
	// A super admin without a profile document still provisions; the shop
	// defaults to the caller's account id.
	users := &fakeUserRepo{profiles: map[string]*entity.User{}}
	shops := &fakeShopRepo{}
	uc := newUseCase(users, shops, &fakeIdentity{uid: "staff-uid"})

	out, err := uc.CreateStaff(context.Background(), repository.Caller{UID: "root", Email: "admin@huluca.com"}, validRequest())
	require.NoError(t, err)
	assert.Equal(t, "root", out.ShopID)
}
