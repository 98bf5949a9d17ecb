package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scheduling/internal/core/model"
	"scheduling/internal/core/repository"
)

func newScheduleFixture(t *testing.T, role model.Role) (ScheduleService, repository.ScheduleRepository) {
	t.Helper()
	users := repository.NewInMemoryUserRepository()
	memberships := repository.NewInMemoryOrganizationMembershipRepository()
	schedules := repository.NewInMemoryScheduleRepository()

	user := model.NewUser("user_1", "ada@example.com", "Ada", "Lovelace")
	require.NoError(t, users.Create(user))
	require.NoError(t, memberships.Create(model.NewOrganizationMembership(user.ID, "org_a", role, true)))

	auth := NewAuthService(users, memberships)
	return NewScheduleService(schedules, auth), schedules
}

func TestCreateScheduleRequiresAdmin(t *testing.T) {
	svc, _ := newScheduleFixture(t, model.RoleUser)

	start := time.Now()
	_, err := svc.CreateSchedule("user_1", "", "Week 34", "", start, start.Add(7*24*time.Hour))
	require.ErrorIs(t, err, ErrInsufficientPermissions)
}

func TestCreateScheduleAsAdmin(t *testing.T) {
	svc, repo := newScheduleFixture(t, model.RoleAdmin)

	start := time.Now()
	schedule, err := svc.CreateSchedule("user_1", "", "Week 34", "on-call rotation", start, start.Add(7*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, "org_a", schedule.OrganizationID)
	assert.Equal(t, model.ScheduleDraft, schedule.Status)

	stored, err := repo.FindByID(schedule.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
}

func TestListSchedulesScopedToOrganization(t *testing.T) {
	svc, repo := newScheduleFixture(t, model.RoleUser)

	start := time.Now()
	require.NoError(t, repo.Create(model.NewSchedule("org_a", "someone", "Mine", "", start, start)))
	require.NoError(t, repo.Create(model.NewSchedule("org_other", "someone", "Theirs", "", start, start)))

	schedules, err := svc.ListSchedules("user_1", "")
	require.NoError(t, err)
	require.Len(t, schedules, 1)
	assert.Equal(t, "Mine", schedules[0].Title)
}

func TestPublishSchedule(t *testing.T) {
	svc, repo := newScheduleFixture(t, model.RoleAdmin)

	start := time.Now()
	schedule := model.NewSchedule("org_a", "someone", "Week 34", "", start, start)
	require.NoError(t, repo.Create(schedule))

	published, err := svc.PublishSchedule("user_1", "", schedule.ID)
	require.NoError(t, err)
	assert.Equal(t, model.SchedulePublished, published.Status)
}

func TestPublishScheduleOtherTenant(t *testing.T) {
	svc, repo := newScheduleFixture(t, model.RoleAdmin)

	start := time.Now()
	schedule := model.NewSchedule("org_other", "someone", "Theirs", "", start, start)
	require.NoError(t, repo.Create(schedule))

	_, err := svc.PublishSchedule("user_1", "", schedule.ID)
	require.Error(t, err)
}
