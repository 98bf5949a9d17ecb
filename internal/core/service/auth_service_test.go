package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scheduling/internal/core/model"
	"scheduling/internal/core/repository"
)

type authFixture struct {
	users       repository.UserRepository
	memberships repository.OrganizationMembershipRepository
	auth        AuthService
}

func newAuthFixture() *authFixture {
	users := repository.NewInMemoryUserRepository()
	memberships := repository.NewInMemoryOrganizationMembershipRepository()
	return &authFixture{
		users:       users,
		memberships: memberships,
		auth:        NewAuthService(users, memberships),
	}
}

func (f *authFixture) addUser(t *testing.T, clerkID string) *model.User {
	t.Helper()
	user := model.NewUser(clerkID, clerkID+"@example.com", "Test", "User")
	require.NoError(t, f.users.Create(user))
	return user
}

func (f *authFixture) addMembership(t *testing.T, userID, orgID string, role model.Role, isDefault bool) *model.OrganizationMembership {
	t.Helper()
	membership := model.NewOrganizationMembership(userID, orgID, role, isDefault)
	require.NoError(t, f.memberships.Create(membership))
	return membership
}

func TestRequireAuthNoIdentity(t *testing.T) {
	f := newAuthFixture()

	_, err := f.auth.RequireAuth("", "")
	require.ErrorIs(t, err, ErrUnauthenticated)
}

func TestRequireAuthUnknownUser(t *testing.T) {
	f := newAuthFixture()

	_, err := f.auth.RequireAuth("user_ghost", "")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestRequireAuthResolvesDefaultOrganization(t *testing.T) {
	f := newAuthFixture()
	user := f.addUser(t, "user_1")
	f.addMembership(t, user.ID, "org_a", model.RoleUser, true)
	f.addMembership(t, user.ID, "org_b", model.RoleAdmin, false)

	authCtx, err := f.auth.RequireAuth("user_1", "")
	require.NoError(t, err)
	assert.Equal(t, "org_a", authCtx.OrganizationID)
	assert.Equal(t, model.RoleUser, authCtx.Role)
}

func TestRequireAuthExplicitOrganization(t *testing.T) {
	f := newAuthFixture()
	user := f.addUser(t, "user_1")
	f.addMembership(t, user.ID, "org_a", model.RoleUser, true)
	f.addMembership(t, user.ID, "org_b", model.RoleAdmin, false)

	authCtx, err := f.auth.RequireAuth("user_1", "org_b")
	require.NoError(t, err)
	assert.Equal(t, "org_b", authCtx.OrganizationID)
	assert.Equal(t, model.RoleAdmin, authCtx.Role)
}

func TestRequireAuthNoMemberships(t *testing.T) {
	f := newAuthFixture()
	f.addUser(t, "user_1")

	_, err := f.auth.RequireAuth("user_1", "")
	require.ErrorIs(t, err, ErrNoMembership)
}

func TestRequireAuthNotAMember(t *testing.T) {
	f := newAuthFixture()
	user := f.addUser(t, "user_1")
	f.addMembership(t, user.ID, "org_a", model.RoleUser, true)

	_, err := f.auth.RequireAuth("user_1", "org_other")
	require.ErrorIs(t, err, ErrNoMembership)
}

func TestRequireAuthInactiveMembership(t *testing.T) {
	f := newAuthFixture()
	user := f.addUser(t, "user_1")
	membership := f.addMembership(t, user.ID, "org_a", model.RoleUser, true)
	membership.Status = model.MembershipInactive
	require.NoError(t, f.memberships.Update(membership))

	_, err := f.auth.RequireAuth("user_1", "org_a")
	require.ErrorIs(t, err, ErrInactiveMembership)
}

func TestRequireRoleMatrix(t *testing.T) {
	roles := []model.Role{model.RoleUser, model.RoleAdmin, model.RoleSuperAdmin}

	for _, callerRole := range roles {
		for _, requiredRole := range roles {
			callerRole, requiredRole := callerRole, requiredRole
			name := string(callerRole) + " requires " + string(requiredRole)
			t.Run(name, func(t *testing.T) {
				f := newAuthFixture()
				user := f.addUser(t, "user_1")
				f.addMembership(t, user.ID, "org_a", callerRole, true)

				_, err := f.auth.RequireRole(requiredRole)("user_1", "org_a")
				if callerRole.Rank() >= requiredRole.Rank() {
					assert.NoError(t, err)
				} else {
					assert.ErrorIs(t, err, ErrInsufficientPermissions)
				}
			})
		}
	}
}

func TestRequireRolePropagatesAuthFailure(t *testing.T) {
	f := newAuthFixture()

	_, err := f.auth.RequireRole(model.RoleAdmin)("", "")
	require.ErrorIs(t, err, ErrUnauthenticated)
}
