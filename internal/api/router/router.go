package router

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"scheduling/internal/api/handler"
	"scheduling/internal/api/middleware"
)

func NewRouter(
	webhookHandler *handler.WebhookHandler,
	userHandler *handler.UserHandler,
	scheduleHandler *handler.ScheduleHandler,
	authMiddleware *middleware.AuthMiddleware,
	log zerolog.Logger,
) http.Handler {
	logging := middleware.LoggingMiddleware(log)

	withAuth := func(h http.Handler) http.Handler {
		return logging(authMiddleware.Authenticate(h))
	}

	mux := http.NewServeMux()

	// Webhook endpoint authenticates through its signature, not the
	// session middleware.
	mux.Handle("/clerk-webhook", logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		webhookHandler.Handle(w, r)
	})))

	mux.Handle("/health", logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"status": "ok",
		})
	})))

	mux.Handle("/api/me", withAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		userHandler.GetMe(w, r)
	})))

	mux.Handle("/api/users/get", withAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		userHandler.GetUser(w, r)
	})))

	mux.Handle("/api/users/get-by-email", withAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		userHandler.GetUserByEmail(w, r)
	})))

	mux.Handle("/api/organizations/get", withAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		userHandler.GetOrganization(w, r)
	})))

	mux.Handle("/api/schedules", withAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			scheduleHandler.Create(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})))

	mux.Handle("/api/schedules/list", withAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		scheduleHandler.List(w, r)
	})))

	mux.Handle("/api/schedules/publish", withAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		scheduleHandler.Publish(w, r)
	})))

	return mux
}
