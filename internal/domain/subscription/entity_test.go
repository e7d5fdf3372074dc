//go:build unit

package subscription_test

import (
	"testing"
	"time"

	"alert-engine/internal/domain/subscription"
	"alert-engine/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	t.Run("lowercases and trims", func(t *testing.T) {
		email, err := subscription.NewEmail("  Asha@Example.COM ")
		require.NoError(t, err)
		assert.Equal(t, "asha@example.com", email.Value())
	})

	t.Run("rejects malformed addresses", func(t *testing.T) {
		for _, in := range []string{"", "asha", "asha@", "@example.com", "asha@example"} {
			_, err := subscription.NewEmail(in)
			assert.ErrorIs(t, err, subscription.ErrInvalidEmail, "input %q", in)
		}
	})
}

func TestNewStatus(t *testing.T) {
	for _, in := range []string{"pending_verification", "active", "deleted"} {
		status, err := subscription.NewStatus(in)
		require.NoError(t, err)
		assert.Equal(t, in, status.String())
	}

	_, err := subscription.NewStatus("verified")
	assert.ErrorIs(t, err, subscription.ErrInvalidStatus)
}

func TestNewFrequency(t *testing.T) {
	daily, err := subscription.NewFrequency("daily")
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, daily.Lookback())

	weekly, err := subscription.NewFrequency("weekly")
	require.NoError(t, err)
	assert.Equal(t, 168*time.Hour, weekly.Lookback())

	_, err = subscription.NewFrequency("hourly")
	assert.ErrorIs(t, err, subscription.ErrInvalidFrequency)
}

func TestNewKeyword(t *testing.T) {
	t.Run("label defaults to the value", func(t *testing.T) {
		kw, err := subscription.NewKeyword("", "react", subscription.KindRole)
		require.NoError(t, err)
		assert.Equal(t, "react", kw.Label)
	})

	t.Run("rejects blank values", func(t *testing.T) {
		_, err := subscription.NewKeyword("React", "   ", subscription.KindRole)
		assert.ErrorIs(t, err, subscription.ErrEmptyKeyword)
	})

	t.Run("rejects unknown kinds", func(t *testing.T) {
		_, err := subscription.NewKeyword("React", "react", subscription.KeywordKind("vibe"))
		assert.ErrorIs(t, err, subscription.ErrInvalidKeyword)
	})
}

func TestSubscriptionEligible(t *testing.T) {
	assert.True(t, builder.NewSubscriptionBuilder().Build().Eligible())
	assert.False(t, builder.NewSubscriptionBuilder().WithStatus(subscription.StatusPendingVerification).Build().Eligible())
	assert.False(t, builder.NewSubscriptionBuilder().WithStatus(subscription.StatusDeleted).Build().Eligible())
}

func TestSubscriptionHasPushChannel(t *testing.T) {
	assert.False(t, builder.NewSubscriptionBuilder().Build().HasPushChannel())
	assert.True(t, builder.NewSubscriptionBuilder().WithPush("https://push.example.com/ep").Build().HasPushChannel())

	partial := &subscription.PushRegistration{Endpoint: "https://push.example.com/ep"}
	assert.False(t, builder.NewSubscriptionBuilder().WithPushRegistration(partial).Build().HasPushChannel())
}

func TestSubscriptionCutoffFor(t *testing.T) {
	runAt := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

	t.Run("cursor wins when present", func(t *testing.T) {
		cursor := runAt.Add(-3 * time.Hour)
		sub := builder.NewSubscriptionBuilder().WithCursor(cursor).Build()
		assert.Equal(t, cursor, sub.CutoffFor(runAt, 24*time.Hour))
	})

	t.Run("lookback window without a cursor", func(t *testing.T) {
		sub := builder.NewSubscriptionBuilder().WithoutCursor().Build()
		assert.Equal(t, runAt.Add(-24*time.Hour), sub.CutoffFor(runAt, 24*time.Hour))
		assert.Equal(t, runAt.Add(-168*time.Hour), sub.CutoffFor(runAt, 168*time.Hour))
	})
}

func TestSubscriptionGreetingName(t *testing.T) {
	assert.Equal(t, "Asha", builder.NewSubscriptionBuilder().Build().GreetingName())
	assert.Equal(t, "There", builder.NewSubscriptionBuilder().WithName("").Build().GreetingName())
}
