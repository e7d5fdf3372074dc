package builder

import (
	"time"

	"alert-engine/internal/domain/subscription"

	"github.com/google/uuid"
)

// SubscriptionBuilder builds a valid, active daily subscription by default;
// tests mutate only what they care about.
type SubscriptionBuilder struct {
	id         uuid.UUID
	email      string
	name       string
	keywords   []subscription.Keyword
	location   string
	experience string
	frequency  subscription.Frequency
	status     subscription.Status
	cursor     *time.Time
	push       *subscription.PushRegistration
}

func NewSubscriptionBuilder() *SubscriptionBuilder {
	return &SubscriptionBuilder{
		id:    uuid.New(),
		email: "asha@example.com",
		name:  "Asha",
		keywords: []subscription.Keyword{
			{Label: "React", Value: "react", Kind: subscription.KindRole},
		},
		location:   "Bangalore",
		experience: "2 years",
		frequency:  subscription.FrequencyDaily,
		status:     subscription.StatusActive,
	}
}

func (b *SubscriptionBuilder) WithID(id uuid.UUID) *SubscriptionBuilder {
	b.id = id
	return b
}

func (b *SubscriptionBuilder) WithEmail(email string) *SubscriptionBuilder {
	b.email = email
	return b
}

func (b *SubscriptionBuilder) WithName(name string) *SubscriptionBuilder {
	b.name = name
	return b
}

func (b *SubscriptionBuilder) WithKeywords(kws ...subscription.Keyword) *SubscriptionBuilder {
	b.keywords = kws
	return b
}

func (b *SubscriptionBuilder) WithKeywordValues(values ...string) *SubscriptionBuilder {
	b.keywords = nil
	for _, v := range values {
		b.keywords = append(b.keywords, subscription.Keyword{Label: v, Value: v, Kind: subscription.KindTech})
	}
	return b
}

func (b *SubscriptionBuilder) WithoutKeywords() *SubscriptionBuilder {
	b.keywords = nil
	return b
}

func (b *SubscriptionBuilder) WithLocation(loc string) *SubscriptionBuilder {
	b.location = loc
	return b
}

func (b *SubscriptionBuilder) WithExperience(exp string) *SubscriptionBuilder {
	b.experience = exp
	return b
}

func (b *SubscriptionBuilder) WithFrequency(f subscription.Frequency) *SubscriptionBuilder {
	b.frequency = f
	return b
}

func (b *SubscriptionBuilder) WithStatus(s subscription.Status) *SubscriptionBuilder {
	b.status = s
	return b
}

func (b *SubscriptionBuilder) WithCursor(t time.Time) *SubscriptionBuilder {
	b.cursor = &t
	return b
}

func (b *SubscriptionBuilder) WithoutCursor() *SubscriptionBuilder {
	b.cursor = nil
	return b
}

func (b *SubscriptionBuilder) WithPush(endpoint string) *SubscriptionBuilder {
	b.push = &subscription.PushRegistration{
		Endpoint: endpoint,
		P256dh:   "p256dh-key",
		Auth:     "auth-secret",
	}
	return b
}

func (b *SubscriptionBuilder) WithPushRegistration(reg *subscription.PushRegistration) *SubscriptionBuilder {
	b.push = reg
	return b
}

func (b *SubscriptionBuilder) Build() *subscription.Subscription {
	email, err := subscription.NewEmail(b.email)
	if err != nil {
		panic(err)
	}
	now := time.Now()
	return &subscription.Subscription{
		ID:             b.id,
		Email:          email,
		DisplayName:    b.name,
		Keywords:       b.keywords,
		Location:       b.location,
		Experience:     b.experience,
		Frequency:      b.frequency,
		Status:         b.status,
		LastNotifiedAt: b.cursor,
		Push:           b.push,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
