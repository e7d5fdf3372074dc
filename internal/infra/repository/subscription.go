package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"alert-engine/internal/domain/subscription"
	"alert-engine/internal/infra"
	"alert-engine/internal/pkg/ptr"
	"alert-engine/internal/usecase"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const subscriptionColumns = `
	id, email, display_name, keywords, location, experience,
	frequency, status, last_notified_at,
	push_endpoint, push_p256dh, push_auth,
	created_at, updated_at`

type subscriptionRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewSubscriptionRepository(pool *pgxpool.Pool, logger *slog.Logger) usecase.SubscriptionRepository {
	return &subscriptionRepository{pool: pool, logger: logger}
}

func (r *subscriptionRepository) FindEligible(ctx context.Context, freq subscription.Frequency) ([]*subscription.Subscription, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+subscriptionColumns+`
		 FROM subscriptions
		 WHERE status = $1 AND frequency = $2
		 ORDER BY created_at`,
		subscription.StatusActive.String(), freq.String(),
	)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to query eligible subscriptions", err)
	}
	defer rows.Close()

	return r.collect(rows)
}

// FindPushCandidates narrows by indexed/cheap fields only: eligibility, a
// present push channel, and location compatibility. The location test unions
// three predicates (absent, substring of the posting location, city-prefix).
// Location-restricted alerts outside all three are excluded even when their
// keywords alone would score past the match bar; those subscribers are
// served by the digest path.
func (r *subscriptionRepository) FindPushCandidates(ctx context.Context, postingLocation, cityPrefix string) ([]*subscription.Subscription, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+subscriptionColumns+`
		 FROM subscriptions
		 WHERE status = $1
		   AND push_endpoint IS NOT NULL
		   AND (
		     location IS NULL
		     OR location = ''
		     OR strpos(lower($2), lower(location)) > 0
		     OR lower(location) LIKE lower($3) || '%'
		   )`,
		subscription.StatusActive.String(), postingLocation, cityPrefix,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to query push candidates", err)
	}
	defer rows.Close()

	return r.collect(rows)
}

// AdvanceCursor is guarded so the cursor is monotonically non-decreasing even
// under concurrent runs, and touches only the cursor column.
func (r *subscriptionRepository) AdvanceCursor(ctx context.Context, id uuid.UUID, notifiedAt time.Time) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE subscriptions
		 SET last_notified_at = $2, updated_at = now()
		 WHERE id = $1
		   AND (last_notified_at IS NULL OR last_notified_at < $2)`,
		id, notifiedAt,
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to advance notification cursor", err)
	}
	if tag.RowsAffected() == 0 {
		// Either the row is gone or a concurrent run already moved the
		// cursor further. Both are fine under the monotonicity contract.
		r.logger.Debug("cursor advance was a no-op", "subscription_id", id)
	}
	return nil
}

// ClearPushRegistration nulls only the push channel fields so a concurrent
// cursor advance on the same row is never clobbered.
func (r *subscriptionRepository) ClearPushRegistration(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE subscriptions
		 SET push_endpoint = NULL, push_p256dh = NULL, push_auth = NULL, updated_at = now()
		 WHERE id = $1`,
		id,
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to clear push registration", err)
	}
	return nil
}

// collect maps rows to domain subscriptions. A malformed row is a data
// error: it is logged and skipped so the batch continues.
func (r *subscriptionRepository) collect(rows pgx.Rows) ([]*subscription.Subscription, error) {
	var subs []*subscription.Subscription
	for rows.Next() {
		sub, err := scanSubscription(rows)
		if err != nil {
			r.logger.Warn("skipping malformed subscription row", "error", err)
			continue
		}
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to read subscription rows", err)
	}
	return subs, nil
}

func scanSubscription(rows pgx.Rows) (*subscription.Subscription, error) {
	var (
		id           uuid.UUID
		email        string
		displayName  pgtype.Text
		keywordsJSON []byte
		location     pgtype.Text
		experience   pgtype.Text
		frequency    string
		status       string
		lastNotified pgtype.Timestamptz
		pushEndpoint pgtype.Text
		pushP256dh   pgtype.Text
		pushAuth     pgtype.Text
		createdAt    pgtype.Timestamptz
		updatedAt    pgtype.Timestamptz
	)
	if err := rows.Scan(
		&id, &email, &displayName, &keywordsJSON, &location, &experience,
		&frequency, &status, &lastNotified,
		&pushEndpoint, &pushP256dh, &pushAuth,
		&createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	emailVO, err := subscription.NewEmail(email)
	if err != nil {
		return nil, err
	}
	freqVO, err := subscription.NewFrequency(frequency)
	if err != nil {
		return nil, err
	}
	statusVO, err := subscription.NewStatus(status)
	if err != nil {
		return nil, err
	}

	var keywords []subscription.Keyword
	if len(keywordsJSON) > 0 {
		if err := json.Unmarshal(keywordsJSON, &keywords); err != nil {
			return nil, err
		}
	}

	sub := &subscription.Subscription{
		ID:             id,
		Email:          emailVO,
		Keywords:       keywords,
		Frequency:      freqVO,
		Status:         statusVO,
		LastNotifiedAt: ptr.TimeFromPgtype(lastNotified),
		CreatedAt:      createdAt.Time,
		UpdatedAt:      updatedAt.Time,
	}
	if displayName.Valid {
		sub.DisplayName = displayName.String
	}
	if location.Valid {
		sub.Location = location.String
	}
	if experience.Valid {
		sub.Experience = experience.String
	}
	if pushEndpoint.Valid {
		sub.Push = &subscription.PushRegistration{
			Endpoint: pushEndpoint.String,
			P256dh:   pushP256dh.String,
			Auth:     pushAuth.String,
		}
	}
	return sub, nil
}
