package usecase

import (
	"context"
	"encoding/hex"
	"time"

	"alert-engine/internal/domain/posting"
	"alert-engine/internal/domain/subscription"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ports.go -destination=../../tests/mock/usecase/ports_mock.go -package=usecasemock
//go:generate mockgen -destination=../../tests/mock/commands/commands_mock.go -package=commandsmock alert-engine/internal/usecase DigestCommands,RealtimeCommands

// SubscriptionRepository is the alert store. The two pipelines own the only
// writes: the notification cursor and the push registration, each a
// field-scoped update so concurrent digest/realtime runs cannot clobber each
// other.
type SubscriptionRepository interface {
	// FindEligible returns active subscriptions of the given frequency.
	FindEligible(ctx context.Context, freq subscription.Frequency) ([]*subscription.Subscription, error)
	// FindPushCandidates returns active subscriptions holding a push
	// registration whose location is compatible with the posting location
	// (absent, substring, or city-prefix). A cheap narrowing step, never a
	// filter of record: location-restricted alerts in other regions are
	// excluded here even when keyword credit alone would clear the match
	// bar.
	FindPushCandidates(ctx context.Context, postingLocation, cityPrefix string) ([]*subscription.Subscription, error)
	// AdvanceCursor moves lastNotifiedAt forward, never backward.
	AdvanceCursor(ctx context.Context, id uuid.UUID, notifiedAt time.Time) error
	// ClearPushRegistration drops only the push channel fields.
	ClearPushRegistration(ctx context.Context, id uuid.UUID) error
}

type PostingRepository interface {
	// FindCreatedAfter returns postings created strictly after t, with
	// organization display fields attached.
	FindCreatedAfter(ctx context.Context, t time.Time) ([]*posting.Posting, error)
	FindByID(ctx context.Context, id uuid.UUID) (*posting.Posting, error)
}

// DigestSender delivers one aggregated email containing all matched postings.
type DigestSender interface {
	SendDigest(ctx context.Context, email, name string, postings []*posting.Posting) error
}

// PushPayload is the structured body of a realtime notification. Tag is
// stable per posting so repeated delivery attempts collapse into one visible
// notification.
type PushPayload struct {
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	URL       string    `json:"url"`
	PostingID uuid.UUID `json:"postingId"`
	Tag       string    `json:"tag"`
}

// CollapseTopic is the Web Push Topic header value: the posting UUID's 32
// hex digits. RFC 8030 caps Topic at 32 characters from the URL-safe
// alphabet, so the longer Tag stays in the JSON body for the service worker
// while this fits the header.
func (p PushPayload) CollapseTopic() string {
	return hex.EncodeToString(p.PostingID[:])
}

// PushSender delivers one payload to one registration. A permanently dead
// registration is reported with errs.ErrRegistrationGone in the error chain;
// any other error is transient or operational.
type PushSender interface {
	Send(ctx context.Context, reg *subscription.PushRegistration, payload PushPayload) error
}

// EventGuard suppresses duplicate posting-created firings (create plus a
// later status-change can retrigger the hook). Advisory: when the guard is
// unavailable the event is processed anyway and the payload tag still
// collapses duplicates client-side.
type EventGuard interface {
	// FirstSeen reports whether this posting event is being handled for the
	// first time within the guard window.
	FirstSeen(ctx context.Context, postingID uuid.UUID) (bool, error)
}
