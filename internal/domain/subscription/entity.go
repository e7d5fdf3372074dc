package subscription

import (
	"time"

	"github.com/google/uuid"
)

// Subscription is one person's standing interest: a saved search profile with
// notification preferences. The digest and realtime pipelines read it and own
// the writes of its notification cursor and push registration; nothing else
// mutates it here.
type Subscription struct {
	ID          uuid.UUID
	Email       Email
	DisplayName string

	Keywords   []Keyword
	Location   string
	Experience string

	Frequency Frequency
	Status    Status

	// LastNotifiedAt is the digest watermark. Nil until the first confirmed
	// send; advances monotonically, and only after a send succeeded.
	LastNotifiedAt *time.Time

	Push *PushRegistration

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Eligible reports whether the subscription may be processed at all.
func (s *Subscription) Eligible() bool {
	return s.Status == StatusActive
}

// HasPushChannel reports whether the realtime path can reach this subscriber.
func (s *Subscription) HasPushChannel() bool {
	return s.Push.IsUsable()
}

// CutoffFor computes the "new since" boundary for a digest run: the cursor
// when present, otherwise runAt minus the lookback window.
func (s *Subscription) CutoffFor(runAt time.Time, lookback time.Duration) time.Time {
	if s.LastNotifiedAt != nil {
		return *s.LastNotifiedAt
	}
	return runAt.Add(-lookback)
}

// GreetingName returns the name digest emails open with.
func (s *Subscription) GreetingName() string {
	if s.DisplayName != "" {
		return s.DisplayName
	}
	return "There"
}
