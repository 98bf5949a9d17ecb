package handler

import (
	"encoding/json"
	"net/http"

	"scheduling/internal/api/middleware"
	"scheduling/internal/core/model"
	"scheduling/internal/core/service"
)

type UserHandler struct {
	auth  service.AuthService
	users service.UserService
}

func NewUserHandler(auth service.AuthService, users service.UserService) *UserHandler {
	return &UserHandler{auth: auth, users: users}
}

type meResponse struct {
	User           *model.User `json:"user"`
	OrganizationID string      `json:"organizationId"`
	Role           model.Role  `json:"role"`
}

// GetMe resolves the caller's organization context. An explicit
// organizationId query parameter overrides the caller's default.
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	clerkID := middleware.ClerkIDFromContext(r.Context())
	orgID := r.URL.Query().Get("organizationId")

	authCtx, err := h.auth.RequireAuth(clerkID, orgID)
	if err != nil {
		writeAuthError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(meResponse{
		User:           authCtx.User,
		OrganizationID: authCtx.OrganizationID,
		Role:           authCtx.Role,
	})
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	clerkID := middleware.ClerkIDFromContext(r.Context())
	orgID := r.URL.Query().Get("organizationId")
	userID := r.URL.Query().Get("id")
	if userID == "" {
		http.Error(w, "User ID required", http.StatusBadRequest)
		return
	}

	user, err := h.users.GetUser(clerkID, orgID, userID)
	if err != nil {
		writeAuthError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}

func (h *UserHandler) GetUserByEmail(w http.ResponseWriter, r *http.Request) {
	clerkID := middleware.ClerkIDFromContext(r.Context())
	orgID := r.URL.Query().Get("organizationId")
	email := r.URL.Query().Get("email")
	if email == "" {
		http.Error(w, "Email required", http.StatusBadRequest)
		return
	}

	user, err := h.users.GetUserByEmail(clerkID, orgID, email)
	if err != nil {
		writeAuthError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}

func (h *UserHandler) GetOrganization(w http.ResponseWriter, r *http.Request) {
	clerkID := middleware.ClerkIDFromContext(r.Context())
	orgID := r.URL.Query().Get("organizationId")

	org, err := h.users.GetOrganization(clerkID, orgID)
	if err != nil {
		writeAuthError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(org)
}
