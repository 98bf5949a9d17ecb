package service

import (
	"errors"
	"fmt"
	"time"

	"scheduling/internal/core/model"
	"scheduling/internal/core/repository"
)

// ScheduleService is the tenant-scoped schedule surface. Every call
// goes through the access guard first; any member may read, creating
// and publishing require admin.
type ScheduleService interface {
	ListSchedules(clerkID, organizationID string) ([]*model.Schedule, error)
	ListSchedulesByStatus(clerkID, organizationID string, status model.ScheduleStatus) ([]*model.Schedule, error)
	CreateSchedule(clerkID, organizationID, title, description string, start, end time.Time) (*model.Schedule, error)
	PublishSchedule(clerkID, organizationID, scheduleID string) (*model.Schedule, error)
}

type scheduleService struct {
	scheduleRepo repository.ScheduleRepository
	auth         AuthService
}

func NewScheduleService(scheduleRepo repository.ScheduleRepository, auth AuthService) ScheduleService {
	return &scheduleService{
		scheduleRepo: scheduleRepo,
		auth:         auth,
	}
}

func (s *scheduleService) ListSchedules(clerkID, organizationID string) ([]*model.Schedule, error) {
	authCtx, err := s.auth.RequireAuth(clerkID, organizationID)
	if err != nil {
		return nil, err
	}
	return s.scheduleRepo.FindByOrganization(authCtx.OrganizationID)
}

func (s *scheduleService) ListSchedulesByStatus(clerkID, organizationID string, status model.ScheduleStatus) ([]*model.Schedule, error) {
	authCtx, err := s.auth.RequireAuth(clerkID, organizationID)
	if err != nil {
		return nil, err
	}
	return s.scheduleRepo.FindByOrganizationAndStatus(authCtx.OrganizationID, status)
}

func (s *scheduleService) CreateSchedule(clerkID, organizationID, title, description string, start, end time.Time) (*model.Schedule, error) {
	authCtx, err := s.auth.RequireRole(model.RoleAdmin)(clerkID, organizationID)
	if err != nil {
		return nil, err
	}

	if title == "" {
		return nil, errors.New("schedule title is required")
	}
	if end.Before(start) {
		return nil, errors.New("schedule end date before start date")
	}

	schedule := model.NewSchedule(authCtx.OrganizationID, authCtx.User.ID, title, description, start, end)
	if err := s.scheduleRepo.Create(schedule); err != nil {
		return nil, fmt.Errorf("create schedule: %w", err)
	}
	return schedule, nil
}

func (s *scheduleService) PublishSchedule(clerkID, organizationID, scheduleID string) (*model.Schedule, error) {
	authCtx, err := s.auth.RequireRole(model.RoleAdmin)(clerkID, organizationID)
	if err != nil {
		return nil, err
	}

	schedule, err := s.scheduleRepo.FindByID(scheduleID)
	if err != nil {
		return nil, fmt.Errorf("lookup schedule %s: %w", scheduleID, err)
	}
	if schedule == nil || schedule.OrganizationID != authCtx.OrganizationID {
		return nil, errors.New("schedule not found")
	}

	schedule.Status = model.SchedulePublished
	schedule.UpdatedAt = time.Now()
	if err := s.scheduleRepo.Update(schedule); err != nil {
		return nil, fmt.Errorf("update schedule %s: %w", scheduleID, err)
	}
	return schedule, nil
}
