package handler

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"scheduling/internal/clerk"
	"scheduling/internal/core/service"
)

// Deduper tracks processed webhook delivery ids. Ids are recorded only
// after successful dispatch so a failed delivery is redelivered by the
// provider and reprocessed, never acknowledged from the dedup cache.
type Deduper interface {
	Seen(ctx context.Context, id string) bool
	MarkSeen(ctx context.Context, id string, ttl time.Duration)
}

const dedupTTL = 24 * time.Hour

// WebhookHandler receives Clerk's signed event stream and drives the
// reconcilers. Verification happens against the raw body before
// anything is decoded; unverifiable requests never touch tenant data.
type WebhookHandler struct {
	verifier *clerk.Verifier
	sync     service.SyncService
	dedup    Deduper
	log      zerolog.Logger
}

func NewWebhookHandler(verifier *clerk.Verifier, sync service.SyncService, dedup Deduper, log zerolog.Logger) *WebhookHandler {
	return &WebhookHandler{
		verifier: verifier,
		sync:     sync,
		dedup:    dedup,
		log:      log,
	}
}

func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	event, err := h.verifier.Verify(body, r.Header)
	if err != nil {
		h.log.Warn().Err(err).Msg("webhook verification failed")
		http.Error(w, "Invalid webhook", http.StatusBadRequest)
		return
	}

	messageID := r.Header.Get("svix-id")
	if h.dedup.Seen(r.Context(), messageID) {
		h.log.Debug().Str("id", messageID).Str("type", event.Type).Msg("duplicate delivery skipped")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
		return
	}

	if err := h.dispatch(event); err != nil {
		h.log.Error().Err(err).Str("type", event.Type).Msg("webhook dispatch failed")
		// Non-2xx so the provider redelivers; the id stays unmarked so
		// the redelivery is reprocessed, and the reconcilers are
		// idempotent so replays are safe.
		http.Error(w, "Webhook processing failed", http.StatusInternalServerError)
		return
	}

	h.dedup.MarkSeen(r.Context(), messageID, dedupTTL)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func (h *WebhookHandler) dispatch(event *clerk.Event) error {
	switch event.Type {
	case clerk.EventUserCreated, clerk.EventUserUpdated:
		data, err := event.UserData()
		if err != nil {
			return err
		}
		_, err = h.sync.SyncUser(service.UserSyncInput{
			ClerkID:     data.ID,
			Email:       data.PrimaryEmail(),
			FirstName:   data.FirstName,
			LastName:    data.LastName,
			PhotoURL:    &data.ImageURL,
			Phone:       data.PrimaryPhone(),
			LastLoginAt: data.LastSignIn(),
		})
		return err

	case clerk.EventOrgCreated, clerk.EventOrgUpdated:
		data, err := event.OrganizationData()
		if err != nil {
			return err
		}
		_, err = h.sync.SyncOrganization(service.OrganizationSyncInput{
			ClerkOrgID: data.ID,
			Name:       data.Name,
			Slug:       data.Slug,
			Metadata:   data.PublicMetadata,
		})
		return err

	case clerk.EventMembershipCreated, clerk.EventMembershipUpdated:
		data, err := event.MembershipData()
		if err != nil {
			return err
		}
		_, err = h.sync.SyncMembership(service.MembershipSyncInput{
			ClerkUserID: data.PublicUserData.UserID,
			ClerkOrgID:  data.Organization.ID,
			Role:        data.Role,
		})
		return err

	default:
		h.log.Debug().Str("type", event.Type).Msg("ignoring event type")
		return nil
	}
}
