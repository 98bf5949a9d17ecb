package model

import (
	"time"

	"scheduling/internal/core/util"
)

const (
	DefaultTimezone = "America/New_York"
	DefaultTier     = "free"
)

// DefaultWorkWeek is Monday through Friday (1 = Monday).
func DefaultWorkWeek() []int {
	return []int{1, 2, 3, 4, 5}
}

type OrganizationSettings struct {
	Timezone string `json:"timezone" bson:"timezone"`
	WorkWeek []int  `json:"workWeek" bson:"workWeek"`
}

type Subscription struct {
	Tier string `json:"tier" bson:"tier"`
}

type Organization struct {
	ID           string               `json:"id" bson:"id"`
	ClerkOrgID   string               `json:"clerkOrgId" bson:"clerkOrgId"`
	Name         string               `json:"name" bson:"name"`
	Slug         string               `json:"slug" bson:"slug"`
	Settings     OrganizationSettings `json:"settings" bson:"settings"`
	Subscription Subscription         `json:"subscription" bson:"subscription"`
	CreatedAt    time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time            `json:"updatedAt" bson:"updatedAt"`
}

func NewOrganization(clerkOrgID, name, slug string) *Organization {
	now := time.Now()
	return &Organization{
		ID:         util.GenerateID(),
		ClerkOrgID: clerkOrgID,
		Name:       name,
		Slug:       slug,
		Settings: OrganizationSettings{
			Timezone: DefaultTimezone,
			WorkWeek: DefaultWorkWeek(),
		},
		Subscription: Subscription{Tier: DefaultTier},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
