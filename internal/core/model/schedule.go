package model

import (
	"time"

	"scheduling/internal/core/util"
)

type ScheduleStatus string

const (
	ScheduleDraft     ScheduleStatus = "draft"
	SchedulePublished ScheduleStatus = "published"
	ScheduleArchived  ScheduleStatus = "archived"
)

type Schedule struct {
	ID             string         `json:"id" bson:"id"`
	OrganizationID string         `json:"organizationId" bson:"organizationId"`
	Title          string         `json:"title" bson:"title"`
	Description    string         `json:"description,omitempty" bson:"description,omitempty"`
	StartDate      time.Time      `json:"startDate" bson:"startDate"`
	EndDate        time.Time      `json:"endDate" bson:"endDate"`
	Status         ScheduleStatus `json:"status" bson:"status"`
	CreatedBy      string         `json:"createdBy" bson:"createdBy"`
	CreatedAt      time.Time      `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt" bson:"updatedAt"`
}

func NewSchedule(organizationID, createdBy, title, description string, start, end time.Time) *Schedule {
	now := time.Now()
	return &Schedule{
		ID:             util.GenerateID(),
		OrganizationID: organizationID,
		Title:          title,
		Description:    description,
		StartDate:      start,
		EndDate:        end,
		Status:         ScheduleDraft,
		CreatedBy:      createdBy,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
