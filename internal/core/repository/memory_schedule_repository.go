package repository

import (
	"fmt"
	"sync"

	"scheduling/internal/core/model"
)

type inMemoryScheduleRepository struct {
	schedules map[string]*model.Schedule
	mutex     sync.RWMutex
}

func NewInMemoryScheduleRepository() ScheduleRepository {
	return &inMemoryScheduleRepository{
		schedules: make(map[string]*model.Schedule),
	}
}

func (r *inMemoryScheduleRepository) Create(schedule *model.Schedule) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.schedules[schedule.ID]; exists {
		return fmt.Errorf("schedule already exists")
	}

	copied := *schedule
	r.schedules[schedule.ID] = &copied
	return nil
}

func (r *inMemoryScheduleRepository) Update(schedule *model.Schedule) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.schedules[schedule.ID]; !exists {
		return fmt.Errorf("schedule not found")
	}

	copied := *schedule
	r.schedules[schedule.ID] = &copied
	return nil
}

func (r *inMemoryScheduleRepository) FindByID(id string) (*model.Schedule, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if schedule, exists := r.schedules[id]; exists {
		copied := *schedule
		return &copied, nil
	}
	return nil, nil
}

func (r *inMemoryScheduleRepository) FindByOrganization(orgID string) ([]*model.Schedule, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var result []*model.Schedule
	for _, schedule := range r.schedules {
		if schedule.OrganizationID == orgID {
			copied := *schedule
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *inMemoryScheduleRepository) FindByOrganizationAndStatus(orgID string, status model.ScheduleStatus) ([]*model.Schedule, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var result []*model.Schedule
	for _, schedule := range r.schedules {
		if schedule.OrganizationID == orgID && schedule.Status == status {
			copied := *schedule
			result = append(result, &copied)
		}
	}
	return result, nil
}
