package service

import (
	"fmt"

	"scheduling/internal/core/model"
	"scheduling/internal/core/repository"
)

// UserService is the tenant-scoped directory surface. Lookups resolve
// through the access guard and only return users who are members of
// the caller's organization.
type UserService interface {
	GetUser(clerkID, organizationID, userID string) (*model.User, error)
	GetUserByEmail(clerkID, organizationID, email string) (*model.User, error)
	GetOrganization(clerkID, organizationID string) (*model.Organization, error)
}

type userService struct {
	userRepo       repository.UserRepository
	orgRepo        repository.OrganizationRepository
	membershipRepo repository.OrganizationMembershipRepository
	auth           AuthService
}

func NewUserService(
	userRepo repository.UserRepository,
	orgRepo repository.OrganizationRepository,
	membershipRepo repository.OrganizationMembershipRepository,
	auth AuthService,
) UserService {
	return &userService{
		userRepo:       userRepo,
		orgRepo:        orgRepo,
		membershipRepo: membershipRepo,
		auth:           auth,
	}
}

func (s *userService) GetUser(clerkID, organizationID, userID string) (*model.User, error) {
	authCtx, err := s.auth.RequireAuth(clerkID, organizationID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, fmt.Errorf("lookup user %s: %w", userID, err)
	}
	return s.scopeToOrganization(user, authCtx.OrganizationID)
}

// GetUserByEmail is an admin directory lookup.
func (s *userService) GetUserByEmail(clerkID, organizationID, email string) (*model.User, error) {
	authCtx, err := s.auth.RequireRole(model.RoleAdmin)(clerkID, organizationID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("lookup user by email: %w", err)
	}
	return s.scopeToOrganization(user, authCtx.OrganizationID)
}

func (s *userService) GetOrganization(clerkID, organizationID string) (*model.Organization, error) {
	authCtx, err := s.auth.RequireAuth(clerkID, organizationID)
	if err != nil {
		return nil, err
	}

	org, err := s.orgRepo.FindByID(authCtx.OrganizationID)
	if err != nil {
		return nil, fmt.Errorf("lookup organization %s: %w", authCtx.OrganizationID, err)
	}
	if org == nil {
		return nil, ErrOrganizationNotFound
	}
	return org, nil
}

// scopeToOrganization hides users who are not members of the caller's
// organization; a lookup across tenants reads the same as a miss.
func (s *userService) scopeToOrganization(user *model.User, orgID string) (*model.User, error) {
	if user == nil {
		return nil, ErrUserNotFound
	}

	membership, err := s.membershipRepo.FindByUserAndOrg(user.ID, orgID)
	if err != nil {
		return nil, fmt.Errorf("lookup membership: %w", err)
	}
	if membership == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
