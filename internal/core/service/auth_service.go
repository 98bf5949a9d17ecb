package service

import (
	"fmt"

	"scheduling/internal/core/model"
	"scheduling/internal/core/repository"
)

// AuthContext is the resolved tenant context for an authenticated
// caller. It is the sole gate in front of tenant-scoped reads/writes.
type AuthContext struct {
	User           *model.User
	OrganizationID string
	Role           model.Role
	Membership     *model.OrganizationMembership
}

// GuardFunc authorizes a caller against an organization, returning the
// resolved context or an authorization error.
type GuardFunc func(clerkID, organizationID string) (*AuthContext, error)

type AuthService interface {
	// RequireAuth resolves the caller's user record and active membership.
	// When organizationID is empty the caller's default organization is
	// used. Fails closed: every missing precondition is an error.
	RequireAuth(clerkID, organizationID string) (*AuthContext, error)

	// RequireRole wraps RequireAuth with a minimum-role check.
	RequireRole(minimum model.Role) GuardFunc
}

type authService struct {
	userRepo       repository.UserRepository
	membershipRepo repository.OrganizationMembershipRepository
}

func NewAuthService(
	userRepo repository.UserRepository,
	membershipRepo repository.OrganizationMembershipRepository,
) AuthService {
	return &authService{
		userRepo:       userRepo,
		membershipRepo: membershipRepo,
	}
}

func (s *authService) RequireAuth(clerkID, organizationID string) (*AuthContext, error) {
	if clerkID == "" {
		return nil, ErrUnauthenticated
	}

	user, err := s.userRepo.FindByClerkID(clerkID)
	if err != nil {
		return nil, fmt.Errorf("lookup user %s: %w", clerkID, err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	targetOrgID := organizationID
	if targetOrgID == "" {
		defaultMembership, err := s.membershipRepo.FindDefaultByUser(user.ID)
		if err != nil {
			return nil, fmt.Errorf("lookup default membership: %w", err)
		}
		if defaultMembership == nil {
			return nil, ErrNoMembership
		}
		targetOrgID = defaultMembership.OrganizationID
	}

	membership, err := s.membershipRepo.FindByUserAndOrg(user.ID, targetOrgID)
	if err != nil {
		return nil, fmt.Errorf("lookup membership: %w", err)
	}
	if membership == nil {
		return nil, ErrNoMembership
	}
	if membership.Status != model.MembershipActive {
		return nil, ErrInactiveMembership
	}

	return &AuthContext{
		User:           user,
		OrganizationID: targetOrgID,
		Role:           membership.Role,
		Membership:     membership,
	}, nil
}

func (s *authService) RequireRole(minimum model.Role) GuardFunc {
	return func(clerkID, organizationID string) (*AuthContext, error) {
		authCtx, err := s.RequireAuth(clerkID, organizationID)
		if err != nil {
			return nil, err
		}

		if authCtx.Role.Rank() < minimum.Rank() {
			return nil, ErrInsufficientPermissions
		}
		return authCtx, nil
	}
}
