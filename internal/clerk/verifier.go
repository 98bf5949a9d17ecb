package clerk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	svix "github.com/svix/svix-webhooks/go"
)

// ErrVerificationFailed covers every way an inbound webhook can fail
// verification: missing svix headers, a signature that does not match
// the raw body, or a body that is not a valid event envelope.
var ErrVerificationFailed = errors.New("webhook verification failed")

var requiredHeaders = []string{"svix-id", "svix-timestamp", "svix-signature"}

// Verifier validates signed Clerk webhook deliveries. The signature is
// computed over the exact raw request body, so callers must pass the
// bytes as received, never a re-serialized form.
type Verifier struct {
	webhook *svix.Webhook
}

func NewVerifier(secret string) (*Verifier, error) {
	if secret == "" {
		return nil, errors.New("webhook secret is required")
	}
	webhook, err := svix.NewWebhook(secret)
	if err != nil {
		return nil, fmt.Errorf("init webhook verifier: %w", err)
	}
	return &Verifier{webhook: webhook}, nil
}

func (v *Verifier) Verify(body []byte, headers http.Header) (*Event, error) {
	for _, name := range requiredHeaders {
		if headers.Get(name) == "" {
			return nil, fmt.Errorf("missing %s header: %w", name, ErrVerificationFailed)
		}
	}

	if err := v.webhook.Verify(body, headers); err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrVerificationFailed)
	}

	var event Event
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, fmt.Errorf("decode event envelope: %w", ErrVerificationFailed)
	}
	if event.Type == "" {
		return nil, fmt.Errorf("event envelope has no type: %w", ErrVerificationFailed)
	}
	return &event, nil
}
