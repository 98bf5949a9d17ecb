package service

import (
	"fmt"
	"time"

	"scheduling/internal/core/model"
	"scheduling/internal/core/repository"
)

// UserSyncInput carries the identity fields of a Clerk user event.
// Optional fields are nil when the provider omitted them.
type UserSyncInput struct {
	ClerkID     string
	Email       string
	FirstName   string
	LastName    string
	PhotoURL    *string
	Phone       *string
	LastLoginAt *time.Time
}

// OrganizationSyncInput carries the fields of a Clerk organization event.
// Metadata is nil when the organization has no public metadata.
type OrganizationSyncInput struct {
	ClerkOrgID string
	Name       string
	Slug       string
	Metadata   *model.OrganizationMetadata
}

// MembershipSyncInput carries the fields of a Clerk membership event.
type MembershipSyncInput struct {
	ClerkUserID string
	ClerkOrgID  string
	Role        string
	IsDefault   *bool
}

// SyncService keeps local users, organizations and memberships
// consistent with the provider's event stream. Every method is an
// idempotent find-or-create: replayed or duplicate events patch the
// existing record instead of inserting a second one.
type SyncService interface {
	SyncUser(input UserSyncInput) (string, error)
	SyncOrganization(input OrganizationSyncInput) (string, error)
	SyncMembership(input MembershipSyncInput) (string, error)
}

type syncService struct {
	userRepo       repository.UserRepository
	orgRepo        repository.OrganizationRepository
	membershipRepo repository.OrganizationMembershipRepository
}

func NewSyncService(
	userRepo repository.UserRepository,
	orgRepo repository.OrganizationRepository,
	membershipRepo repository.OrganizationMembershipRepository,
) SyncService {
	return &syncService{
		userRepo:       userRepo,
		orgRepo:        orgRepo,
		membershipRepo: membershipRepo,
	}
}

func (s *syncService) SyncUser(input UserSyncInput) (string, error) {
	existing, err := s.userRepo.FindByClerkID(input.ClerkID)
	if err != nil {
		return "", fmt.Errorf("lookup user %s: %w", input.ClerkID, err)
	}

	now := time.Now()
	lastLogin := now
	if input.LastLoginAt != nil {
		lastLogin = *input.LastLoginAt
	}

	if existing != nil {
		existing.Email = input.Email
		existing.FirstName = input.FirstName
		existing.LastName = input.LastName
		if input.PhotoURL != nil {
			existing.PhotoURL = *input.PhotoURL
		}
		if input.Phone != nil {
			existing.Phone = *input.Phone
		}
		existing.LastLoginAt = lastLogin
		existing.UpdatedAt = now

		if err := s.userRepo.Update(existing); err != nil {
			return "", fmt.Errorf("update user %s: %w", input.ClerkID, err)
		}
		return existing.ID, nil
	}

	user := model.NewUser(input.ClerkID, input.Email, input.FirstName, input.LastName)
	if input.PhotoURL != nil {
		user.PhotoURL = *input.PhotoURL
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	user.LastLoginAt = lastLogin

	if err := s.userRepo.Create(user); err != nil {
		return "", fmt.Errorf("create user %s: %w", input.ClerkID, err)
	}
	return user.ID, nil
}

func (s *syncService) SyncOrganization(input OrganizationSyncInput) (string, error) {
	existing, err := s.orgRepo.FindByClerkOrgID(input.ClerkOrgID)
	if err != nil {
		return "", fmt.Errorf("lookup organization %s: %w", input.ClerkOrgID, err)
	}

	if existing != nil {
		// Provider events update identity fields only. Settings and
		// subscription belong to tenant configuration and are left alone.
		existing.Name = input.Name
		existing.Slug = input.Slug
		existing.UpdatedAt = time.Now()

		if err := s.orgRepo.Update(existing); err != nil {
			return "", fmt.Errorf("update organization %s: %w", input.ClerkOrgID, err)
		}
		return existing.ID, nil
	}

	org := model.NewOrganization(input.ClerkOrgID, input.Name, input.Slug)
	if input.Metadata != nil {
		input.Metadata.ApplyTo(org)
	}

	if err := s.orgRepo.Create(org); err != nil {
		return "", fmt.Errorf("create organization %s: %w", input.ClerkOrgID, err)
	}
	return org.ID, nil
}

func (s *syncService) SyncMembership(input MembershipSyncInput) (string, error) {
	user, err := s.userRepo.FindByClerkID(input.ClerkUserID)
	if err != nil {
		return "", fmt.Errorf("lookup user %s: %w", input.ClerkUserID, err)
	}
	if user == nil {
		// Membership event arrived before the user event. Create a
		// placeholder; the user event fills in the details later.
		user = model.NewPlaceholderUser(input.ClerkUserID)
		if err := s.userRepo.Create(user); err != nil {
			return "", fmt.Errorf("create placeholder user %s: %w", input.ClerkUserID, err)
		}
	}

	org, err := s.orgRepo.FindByClerkOrgID(input.ClerkOrgID)
	if err != nil {
		return "", fmt.Errorf("lookup organization %s: %w", input.ClerkOrgID, err)
	}
	if org == nil {
		return "", fmt.Errorf("organization %s: %w", input.ClerkOrgID, ErrOrganizationNotFound)
	}

	role := model.MapExternalRole(input.Role)

	existing, err := s.membershipRepo.FindByUserAndOrg(user.ID, org.ID)
	if err != nil {
		return "", fmt.Errorf("lookup membership: %w", err)
	}

	if existing != nil {
		existing.Role = role
		existing.Status = model.MembershipActive
		if input.IsDefault != nil {
			existing.IsDefault = *input.IsDefault
		}
		existing.UpdatedAt = time.Now()

		if err := s.membershipRepo.Update(existing); err != nil {
			return "", fmt.Errorf("update membership: %w", err)
		}
		return existing.ID, nil
	}

	others, err := s.membershipRepo.FindByUser(user.ID)
	if err != nil {
		return "", fmt.Errorf("list memberships for user %s: %w", user.ID, err)
	}

	// The first organization a user joins is always their default.
	isDefault := len(others) == 0
	if !isDefault && input.IsDefault != nil {
		isDefault = *input.IsDefault
	}

	membership := model.NewOrganizationMembership(user.ID, org.ID, role, isDefault)
	if err := s.membershipRepo.Create(membership); err != nil {
		return "", fmt.Errorf("create membership: %w", err)
	}
	return membership.ID, nil
}
