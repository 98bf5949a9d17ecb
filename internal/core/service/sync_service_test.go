package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scheduling/internal/core/model"
	"scheduling/internal/core/repository"
)

type syncFixture struct {
	users       repository.UserRepository
	orgs        repository.OrganizationRepository
	memberships repository.OrganizationMembershipRepository
	sync        SyncService
}

func newSyncFixture() *syncFixture {
	users := repository.NewInMemoryUserRepository()
	orgs := repository.NewInMemoryOrganizationRepository()
	memberships := repository.NewInMemoryOrganizationMembershipRepository()
	return &syncFixture{
		users:       users,
		orgs:        orgs,
		memberships: memberships,
		sync:        NewSyncService(users, orgs, memberships),
	}
}

func strPtr(s string) *string { return &s }

func TestSyncUserCreatesThenPatches(t *testing.T) {
	f := newSyncFixture()

	id1, err := f.sync.SyncUser(UserSyncInput{
		ClerkID:   "user_1",
		Email:     "ada@example.com",
		FirstName: "Ada",
		LastName:  "Lovelace",
	})
	require.NoError(t, err)

	id2, err := f.sync.SyncUser(UserSyncInput{
		ClerkID:   "user_1",
		Email:     "ada.lovelace@example.com",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Phone:     strPtr("+15550100"),
	})
	require.NoError(t, err)
	assert.Equal(t, id1, id2, "second sync must patch the same record")

	user, err := f.users.FindByClerkID("user_1")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "ada.lovelace@example.com", user.Email)
	assert.Equal(t, "+15550100", user.Phone)
	assert.True(t, user.IsActive)
}

func TestSyncUserIdempotent(t *testing.T) {
	f := newSyncFixture()

	input := UserSyncInput{
		ClerkID:   "user_1",
		Email:     "ada@example.com",
		FirstName: "Ada",
		LastName:  "Lovelace",
	}

	_, err := f.sync.SyncUser(input)
	require.NoError(t, err)
	_, err = f.sync.SyncUser(input)
	require.NoError(t, err)

	// The unique clerk id lookup guarantees one record, not two.
	first, err := f.users.FindByClerkID("user_1")
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, input.Email, first.Email)
}

func TestSyncOrganizationSeedsDefaults(t *testing.T) {
	f := newSyncFixture()

	_, err := f.sync.SyncOrganization(OrganizationSyncInput{
		ClerkOrgID: "org_1",
		Name:       "Acme",
		Slug:       "acme",
	})
	require.NoError(t, err)

	org, err := f.orgs.FindByClerkOrgID("org_1")
	require.NoError(t, err)
	require.NotNil(t, org)
	assert.Equal(t, model.DefaultTimezone, org.Settings.Timezone)
	assert.Equal(t, model.DefaultWorkWeek(), org.Settings.WorkWeek)
	assert.Equal(t, model.DefaultTier, org.Subscription.Tier)
}

func TestSyncOrganizationMetadataOverridesDefaults(t *testing.T) {
	f := newSyncFixture()

	tz := "Europe/Berlin"
	tier := "pro"
	_, err := f.sync.SyncOrganization(OrganizationSyncInput{
		ClerkOrgID: "org_1",
		Name:       "Acme",
		Slug:       "acme",
		Metadata: &model.OrganizationMetadata{
			Timezone:         &tz,
			WorkWeek:         []int{1, 2, 3, 4, 5, 6},
			SubscriptionTier: &tier,
		},
	})
	require.NoError(t, err)

	org, err := f.orgs.FindByClerkOrgID("org_1")
	require.NoError(t, err)
	require.NotNil(t, org)
	assert.Equal(t, "Europe/Berlin", org.Settings.Timezone)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, org.Settings.WorkWeek)
	assert.Equal(t, "pro", org.Subscription.Tier)
}

func TestSyncOrganizationUpdatePreservesSettings(t *testing.T) {
	f := newSyncFixture()

	tz := "Europe/Berlin"
	tier := "pro"
	id1, err := f.sync.SyncOrganization(OrganizationSyncInput{
		ClerkOrgID: "org_1",
		Name:       "Acme",
		Slug:       "acme",
		Metadata: &model.OrganizationMetadata{
			Timezone:         &tz,
			SubscriptionTier: &tier,
		},
	})
	require.NoError(t, err)

	// Update events carry identity fields only; settings and
	// subscription must survive untouched even when metadata differs.
	otherTz := "America/Chicago"
	id2, err := f.sync.SyncOrganization(OrganizationSyncInput{
		ClerkOrgID: "org_1",
		Name:       "Acme Corp",
		Slug:       "acme-corp",
		Metadata: &model.OrganizationMetadata{
			Timezone: &otherTz,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, id1, id2)

	org, err := f.orgs.FindByClerkOrgID("org_1")
	require.NoError(t, err)
	require.NotNil(t, org)
	assert.Equal(t, "Acme Corp", org.Name)
	assert.Equal(t, "acme-corp", org.Slug)
	assert.Equal(t, "Europe/Berlin", org.Settings.Timezone)
	assert.Equal(t, "pro", org.Subscription.Tier)
}

func TestSyncMembershipFirstIsDefault(t *testing.T) {
	f := newSyncFixture()
	f.mustSyncUser(t, "user_1")
	f.mustSyncOrg(t, "org_1", "acme")

	notDefault := false
	_, err := f.sync.SyncMembership(MembershipSyncInput{
		ClerkUserID: "user_1",
		ClerkOrgID:  "org_1",
		Role:        "org:member",
		IsDefault:   &notDefault,
	})
	require.NoError(t, err)

	membership := f.mustFindMembership(t, "user_1", "org_1")
	assert.True(t, membership.IsDefault, "first membership is always the default")
	assert.Equal(t, model.RoleUser, membership.Role)
	assert.Equal(t, model.MembershipActive, membership.Status)
}

func TestSyncMembershipSecondNotDefault(t *testing.T) {
	f := newSyncFixture()
	f.mustSyncUser(t, "user_1")
	f.mustSyncOrg(t, "org_1", "acme")
	f.mustSyncOrg(t, "org_2", "globex")

	_, err := f.sync.SyncMembership(MembershipSyncInput{
		ClerkUserID: "user_1", ClerkOrgID: "org_1", Role: "org:member",
	})
	require.NoError(t, err)

	_, err = f.sync.SyncMembership(MembershipSyncInput{
		ClerkUserID: "user_1", ClerkOrgID: "org_2", Role: "org:member",
	})
	require.NoError(t, err)

	first := f.mustFindMembership(t, "user_1", "org_1")
	second := f.mustFindMembership(t, "user_1", "org_2")
	assert.True(t, first.IsDefault)
	assert.False(t, second.IsDefault)
}

func TestSyncMembershipUnknownRoleMapsToUser(t *testing.T) {
	f := newSyncFixture()
	f.mustSyncUser(t, "user_1")
	f.mustSyncOrg(t, "org_1", "acme")

	_, err := f.sync.SyncMembership(MembershipSyncInput{
		ClerkUserID: "user_1", ClerkOrgID: "org_1", Role: "owner",
	})
	require.NoError(t, err)

	membership := f.mustFindMembership(t, "user_1", "org_1")
	assert.Equal(t, model.RoleUser, membership.Role)
}

func TestSyncMembershipCreatesPlaceholderUser(t *testing.T) {
	f := newSyncFixture()
	f.mustSyncOrg(t, "org_1", "acme")

	_, err := f.sync.SyncMembership(MembershipSyncInput{
		ClerkUserID: "user_unseen", ClerkOrgID: "org_1", Role: "org:member",
	})
	require.NoError(t, err)

	user, err := f.users.FindByClerkID("user_unseen")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Empty(t, user.Email)
	assert.True(t, user.IsActive)

	membership := f.mustFindMembership(t, "user_unseen", "org_1")
	assert.True(t, membership.IsDefault)
}

func TestSyncMembershipUnknownOrganization(t *testing.T) {
	f := newSyncFixture()
	f.mustSyncUser(t, "user_1")

	_, err := f.sync.SyncMembership(MembershipSyncInput{
		ClerkUserID: "user_1", ClerkOrgID: "org_unseen", Role: "org:member",
	})
	require.ErrorIs(t, err, ErrOrganizationNotFound)
}

func TestSyncMembershipDuplicateEventPatches(t *testing.T) {
	f := newSyncFixture()
	f.mustSyncUser(t, "user_1")
	f.mustSyncOrg(t, "org_1", "acme")

	id1, err := f.sync.SyncMembership(MembershipSyncInput{
		ClerkUserID: "user_1", ClerkOrgID: "org_1", Role: "org:member",
	})
	require.NoError(t, err)

	id2, err := f.sync.SyncMembership(MembershipSyncInput{
		ClerkUserID: "user_1", ClerkOrgID: "org_1", Role: "org:admin",
	})
	require.NoError(t, err)
	assert.Equal(t, id1, id2, "duplicate event must patch, not insert")

	membership := f.mustFindMembership(t, "user_1", "org_1")
	assert.Equal(t, model.RoleAdmin, membership.Role)
	assert.True(t, membership.IsDefault, "default flag preserved when input omits it")
}

func (f *syncFixture) mustSyncUser(t *testing.T, clerkID string) {
	t.Helper()
	now := time.Now()
	_, err := f.sync.SyncUser(UserSyncInput{
		ClerkID:     clerkID,
		Email:       clerkID + "@example.com",
		FirstName:   "Test",
		LastName:    "User",
		LastLoginAt: &now,
	})
	require.NoError(t, err)
}

func (f *syncFixture) mustSyncOrg(t *testing.T, clerkOrgID, slug string) {
	t.Helper()
	_, err := f.sync.SyncOrganization(OrganizationSyncInput{
		ClerkOrgID: clerkOrgID,
		Name:       slug,
		Slug:       slug,
	})
	require.NoError(t, err)
}

func (f *syncFixture) mustFindMembership(t *testing.T, clerkUserID, clerkOrgID string) *model.OrganizationMembership {
	t.Helper()
	user, err := f.users.FindByClerkID(clerkUserID)
	require.NoError(t, err)
	require.NotNil(t, user)
	org, err := f.orgs.FindByClerkOrgID(clerkOrgID)
	require.NoError(t, err)
	require.NotNil(t, org)
	membership, err := f.memberships.FindByUserAndOrg(user.ID, org.ID)
	require.NoError(t, err)
	require.NotNil(t, membership)
	return membership
}
