package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"scheduling/internal/api/middleware"
	"scheduling/internal/core/model"
	"scheduling/internal/core/service"
)

type ScheduleHandler struct {
	schedules service.ScheduleService
}

func NewScheduleHandler(schedules service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{schedules: schedules}
}

type createScheduleRequest struct {
	OrganizationID string    `json:"organizationId"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	StartDate      time.Time `json:"startDate"`
	EndDate        time.Time `json:"endDate"`
}

func (h *ScheduleHandler) List(w http.ResponseWriter, r *http.Request) {
	clerkID := middleware.ClerkIDFromContext(r.Context())
	orgID := r.URL.Query().Get("organizationId")
	status := r.URL.Query().Get("status")

	var (
		schedules []*model.Schedule
		err       error
	)
	if status != "" {
		schedules, err = h.schedules.ListSchedulesByStatus(clerkID, orgID, model.ScheduleStatus(status))
	} else {
		schedules, err = h.schedules.ListSchedules(clerkID, orgID)
	}
	if err != nil {
		writeAuthError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(schedules)
}

func (h *ScheduleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	clerkID := middleware.ClerkIDFromContext(r.Context())
	schedule, err := h.schedules.CreateSchedule(clerkID, req.OrganizationID, req.Title, req.Description, req.StartDate, req.EndDate)
	if err != nil {
		writeAuthError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(schedule)
}

func (h *ScheduleHandler) Publish(w http.ResponseWriter, r *http.Request) {
	clerkID := middleware.ClerkIDFromContext(r.Context())
	orgID := r.URL.Query().Get("organizationId")
	scheduleID := r.URL.Query().Get("id")
	if scheduleID == "" {
		http.Error(w, "Schedule ID required", http.StatusBadRequest)
		return
	}

	schedule, err := h.schedules.PublishSchedule(clerkID, orgID, scheduleID)
	if err != nil {
		writeAuthError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(schedule)
}

// writeAuthError maps guard failures to HTTP statuses. Anything not in
// the authorization taxonomy is a storage or validation failure.
func writeAuthError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, service.ErrUserNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrNoMembership), errors.Is(err, service.ErrInactiveMembership),
		errors.Is(err, service.ErrInsufficientPermissions):
		http.Error(w, err.Error(), http.StatusForbidden)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
