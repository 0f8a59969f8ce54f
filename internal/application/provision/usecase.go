package provision

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/huluca/repairshop-backend/internal/application/dto"
	"github.com/huluca/repairshop-backend/internal/domain"
	"github.com/huluca/repairshop-backend/internal/domain/entity"
	"github.com/huluca/repairshop-backend/internal/domain/repository"
	"github.com/huluca/repairshop-backend/pkg/logger"
)

// Config settings for account provisioning.
type Config struct {
	SuperAdminEmail string
}

// UseCase provisions staff accounts: validates the caller's authority, creates
// the identity-provider account and writes the profile with role-derived
// default permissions.
type UseCase struct {
	users    repository.UserRepository
	shops    repository.ShopRepository
	identity repository.IdentityProvider
	cfg      Config
	log      *logger.Logger
}

// NewUseCase builds the provisioning usecase.
func NewUseCase(
	users repository.UserRepository,
	shops repository.ShopRepository,
	identity repository.IdentityProvider,
	cfg Config,
	log *logger.Logger,
) *UseCase {
	return &UseCase{users: users, shops: shops, identity: identity, cfg: cfg, log: log}
}

// rolesAllowedToProvision may create staff accounts.
var rolesAllowedToProvision = map[string]bool{
	entity.RoleAdmin:   true,
	entity.RoleOwner:   true,
	entity.RoleManager: true,
}

// CreateStaff provisions a staff account on behalf of the caller.
//
// The requested role is a narrowing policy, not a pass-through: everything is
// forced to "user" unless the request asks for "admin" and the caller is
// admin-level. If the profile write fails after the identity was created no
// cleanup is attempted; the orphaned account id is logged and the same request
// can be replayed because the profile write merges by account id.
func (uc *UseCase) CreateStaff(ctx context.Context, caller repository.Caller, in dto.CreateStaffRequest) (*dto.CreateStaffResponse, error) {
	if caller.UID == "" {
		return nil, domain.ErrUnauthenticated
	}

	isSuperAdmin := strings.EqualFold(caller.Email, uc.cfg.SuperAdminEmail)

	profile, err := uc.users.GetByID(ctx, caller.UID)
	if err != nil {
		return nil, fmt.Errorf("%w: load caller profile: %v", domain.ErrInternal, err)
	}
	callerRole := profile.EffectiveRole()
	if isSuperAdmin {
		callerRole = entity.RoleAdmin
	}
	callerShop := caller.UID
	if profile != nil && profile.ShopID != "" {
		callerShop = profile.ShopID
	}

	if !isSuperAdmin && !rolesAllowedToProvision[callerRole] {
		return nil, fmt.Errorf("%w: only admins, owners and managers may create staff accounts", domain.ErrPermissionDenied)
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	password := in.Password
	displayName := strings.TrimSpace(in.DisplayName)
	if email == "" || displayName == "" || len(password) < 6 {
		return nil, fmt.Errorf("%w: email, display name and a password of at least 6 characters are required", domain.ErrInvalidArgument)
	}

	// Regular staff always provision into their own shop; only the super
	// admin may name another shop.
	shopID := strings.TrimSpace(in.ShopID)
	if !isSuperAdmin || shopID == "" {
		shopID = callerShop
	}

	// Narrow the requested role: "admin" sticks only for admin-level callers,
	// every other request becomes "user".
	role := entity.RoleUser
	if in.Role == entity.RoleAdmin && (isSuperAdmin || callerRole == entity.RoleAdmin) {
		role = entity.RoleAdmin
	}

	uid, err := uc.identity.CreateAccount(ctx, email, password, displayName)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("%w: email is already registered", domain.ErrAlreadyExists)
		}
		uc.log.Error().Err(err).Str("email", email).Msg("identity creation failed")
		return nil, fmt.Errorf("%w: create account", domain.ErrInternal)
	}

	upper := cases.Upper(language.Vietnamese)
	user := &entity.User{
		ID:          uid,
		Email:       email,
		DisplayName: upper.String(displayName),
		Phone:       strings.TrimSpace(in.Phone),
		Address:     upper.String(strings.TrimSpace(in.Address)),
		Role:        role,
		ShopID:      shopID,
		CreatedBy:   caller.UID,
		Permissions: entity.DefaultPermissions(role),
	}
	if err := uc.users.Create(ctx, user); err != nil {
		// No compensation: the identity stays behind. Log the orphaned id so
		// the write can be replayed against the same account.
		uc.log.Error().Err(err).Str("uid", uid).Msg("profile write failed after identity creation")
		return nil, fmt.Errorf("%w: write staff profile", domain.ErrInternal)
	}

	if err := uc.shops.RecordStaffCreation(ctx, shopID, caller.UID); err != nil {
		uc.log.Error().Err(err).Str("shop_id", shopID).Msg("shop upsert failed")
		return nil, fmt.Errorf("%w: record shop", domain.ErrInternal)
	}

	uc.log.Info().Str("uid", uid).Str("shop_id", shopID).Str("role", role).Msg("staff account provisioned")
	return &dto.CreateStaffResponse{UID: uid, Role: role, ShopID: shopID}, nil
}
