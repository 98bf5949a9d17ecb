package model

import (
	"time"

	"scheduling/internal/core/util"
)

type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleUser       Role = "user"
)

// Rank orders roles for authorization checks: super_admin > admin > user.
func (r Role) Rank() int {
	switch r {
	case RoleSuperAdmin:
		return 3
	case RoleAdmin:
		return 2
	case RoleUser:
		return 1
	default:
		return 0
	}
}

// MapExternalRole maps a Clerk role string to an internal role. Unknown
// values map to the lowest role rather than silently elevating.
func MapExternalRole(role string) Role {
	switch role {
	case "org:admin", "admin":
		return RoleAdmin
	case "org:member", "member":
		return RoleUser
	default:
		return RoleUser
	}
}

type MembershipStatus string

const (
	MembershipActive   MembershipStatus = "active"
	MembershipInactive MembershipStatus = "inactive"
)

type OrganizationMembership struct {
	ID             string           `json:"id" bson:"id"`
	UserID         string           `json:"userId" bson:"userId"`
	OrganizationID string           `json:"organizationId" bson:"organizationId"`
	Role           Role             `json:"role" bson:"role"`
	Status         MembershipStatus `json:"status" bson:"status"`
	IsDefault      bool             `json:"isDefault" bson:"isDefault"`
	JoinedAt       time.Time        `json:"joinedAt" bson:"joinedAt"`
	CreatedAt      time.Time        `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt" bson:"updatedAt"`
}

func NewOrganizationMembership(userID, organizationID string, role Role, isDefault bool) *OrganizationMembership {
	now := time.Now()
	return &OrganizationMembership{
		ID:             util.GenerateID(),
		UserID:         userID,
		OrganizationID: organizationID,
		Role:           role,
		Status:         MembershipActive,
		IsDefault:      isDefault,
		JoinedAt:       now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
