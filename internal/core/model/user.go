package model

import (
	"time"

	"scheduling/internal/core/util"
)

type User struct {
	ID          string    `json:"id" bson:"id"`
	ClerkID     string    `json:"clerkId" bson:"clerkId"`
	Email       string    `json:"email" bson:"email"`
	FirstName   string    `json:"firstName" bson:"firstName"`
	LastName    string    `json:"lastName" bson:"lastName"`
	PhotoURL    string    `json:"photoUrl,omitempty" bson:"photoUrl,omitempty"`
	Phone       string    `json:"phone,omitempty" bson:"phone,omitempty"`
	IsActive    bool      `json:"isActive" bson:"isActive"`
	LastLoginAt time.Time `json:"lastLoginAt" bson:"lastLoginAt"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

func NewUser(clerkID, email, firstName, lastName string) *User {
	now := time.Now()
	return &User{
		ID:          util.GenerateID(),
		ClerkID:     clerkID,
		Email:       email,
		FirstName:   firstName,
		LastName:    lastName,
		IsActive:    true,
		LastLoginAt: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// NewPlaceholderUser creates a minimal user record for a membership event
// that arrived before the corresponding user event. Identity fields are
// filled in once the user event is synced.
func NewPlaceholderUser(clerkID string) *User {
	return NewUser(clerkID, "", "", "")
}
