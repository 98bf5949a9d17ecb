package clerk

import (
	"encoding/json"
	"fmt"
	"time"

	"scheduling/internal/core/model"
)

// Event types this service reacts to. Anything else is acknowledged
// and ignored.
const (
	EventUserCreated       = "user.created"
	EventUserUpdated       = "user.updated"
	EventOrgCreated        = "organization.created"
	EventOrgUpdated        = "organization.updated"
	EventMembershipCreated = "organizationMembership.created"
	EventMembershipUpdated = "organizationMembership.updated"
)

// Event is the Clerk webhook envelope: a type discriminator and an
// event-specific payload decoded lazily by the typed accessors below.
type Event struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type EmailAddress struct {
	EmailAddress string `json:"email_address"`
}

type PhoneNumber struct {
	PhoneNumber string `json:"phone_number"`
}

type UserData struct {
	ID             string         `json:"id"`
	EmailAddresses []EmailAddress `json:"email_addresses"`
	FirstName      string         `json:"first_name"`
	LastName       string         `json:"last_name"`
	ImageURL       string         `json:"image_url"`
	PhoneNumbers   []PhoneNumber  `json:"phone_numbers"`
	LastSignInAt   *int64         `json:"last_sign_in_at"`
}

// PrimaryEmail returns the first email address, Clerk's primary.
func (d *UserData) PrimaryEmail() string {
	if len(d.EmailAddresses) == 0 {
		return ""
	}
	return d.EmailAddresses[0].EmailAddress
}

func (d *UserData) PrimaryPhone() *string {
	if len(d.PhoneNumbers) == 0 {
		return nil
	}
	return &d.PhoneNumbers[0].PhoneNumber
}

// LastSignIn converts Clerk's millisecond timestamp, nil when the user
// has never signed in.
func (d *UserData) LastSignIn() *time.Time {
	if d.LastSignInAt == nil {
		return nil
	}
	t := time.UnixMilli(*d.LastSignInAt)
	return &t
}

type OrganizationData struct {
	ID             string                      `json:"id"`
	Name           string                      `json:"name"`
	Slug           string                      `json:"slug"`
	PublicMetadata *model.OrganizationMetadata `json:"public_metadata"`
}

type MembershipData struct {
	PublicUserData struct {
		UserID string `json:"user_id"`
	} `json:"public_user_data"`
	Organization struct {
		ID string `json:"id"`
	} `json:"organization"`
	Role string `json:"role"`
}

func (e *Event) UserData() (*UserData, error) {
	var data UserData
	if err := json.Unmarshal(e.Data, &data); err != nil {
		return nil, fmt.Errorf("decode %s payload: %w", e.Type, err)
	}
	return &data, nil
}

func (e *Event) OrganizationData() (*OrganizationData, error) {
	var data OrganizationData
	if err := json.Unmarshal(e.Data, &data); err != nil {
		return nil, fmt.Errorf("decode %s payload: %w", e.Type, err)
	}
	return &data, nil
}

func (e *Event) MembershipData() (*MembershipData, error) {
	var data MembershipData
	if err := json.Unmarshal(e.Data, &data); err != nil {
		return nil, fmt.Errorf("decode %s payload: %w", e.Type, err)
	}
	return &data, nil
}
