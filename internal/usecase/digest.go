package usecase

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"alert-engine/internal/domain/matching"
	"alert-engine/internal/domain/posting"
	"alert-engine/internal/domain/subscription"
	"alert-engine/internal/pkg/clock"
	"alert-engine/internal/pkg/errs"
	"alert-engine/internal/usecase/shared"
)

// DigestRequest is what the scheduler hands over per run. Lookback is only
// consulted for subscriptions without a cursor; zero means the frequency's
// default window.
type DigestRequest struct {
	Frequency subscription.Frequency
	Lookback  time.Duration
}

type DigestResult struct {
	Processed int
	Sent      int
	Skipped   int
	Failed    int
}

type DigestCommands interface {
	Run(ctx context.Context, req DigestRequest) (*DigestResult, error)
}

type digestUseCaseImpl struct {
	subs     SubscriptionRepository
	postings PostingRepository
	sender   DigestSender
	matcher  matching.Strategy
	clock    clock.Clock
	logger   *slog.Logger
	workers  int
}

func NewDigestCommands(
	subs SubscriptionRepository,
	postings PostingRepository,
	sender DigestSender,
	matcher matching.Strategy,
	clk clock.Clock,
	logger *slog.Logger,
	workers int,
) DigestCommands {
	return &digestUseCaseImpl{
		subs:     subs,
		postings: postings,
		sender:   sender,
		matcher:  matcher,
		clock:    clk,
		logger:   logger,
		workers:  workers,
	}
}

// Run executes one scheduled digest pass. Only the initial subscription load
// can abort the run; every subscription after that is an independent
// select→match→send→advance unit with its own error isolation.
func (uc *digestUseCaseImpl) Run(ctx context.Context, req DigestRequest) (*DigestResult, error) {
	if !req.Frequency.IsValid() {
		return nil, errs.ErrInvalidFrequency
	}
	lookback := req.Lookback
	if lookback <= 0 {
		lookback = req.Frequency.Lookback()
	}

	subs, err := uc.subs.FindEligible(ctx, req.Frequency)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load eligible subscriptions")
	}

	runAt := uc.clock.Now()
	uc.logger.Info("digest run started",
		"frequency", req.Frequency.String(),
		"subscriptions", len(subs),
		"run_at", runAt,
	)

	var sent, skipped, failed atomic.Int64
	shared.ForEachLimit(ctx, uc.workers, subs, func(ctx context.Context, sub *subscription.Subscription) {
		switch uc.processOne(ctx, sub, runAt, lookback) {
		case digestSent:
			sent.Add(1)
		case digestSkipped:
			skipped.Add(1)
		case digestFailed:
			failed.Add(1)
		}
	})

	result := &DigestResult{
		Processed: len(subs),
		Sent:      int(sent.Load()),
		Skipped:   int(skipped.Load()),
		Failed:    int(failed.Load()),
	}
	uc.logger.Info("digest run finished",
		"frequency", req.Frequency.String(),
		"sent", result.Sent,
		"skipped", result.Skipped,
		"failed", result.Failed,
	)
	return result, nil
}

type digestOutcome int

const (
	digestSent digestOutcome = iota
	digestSkipped
	digestFailed
)

func (uc *digestUseCaseImpl) processOne(ctx context.Context, sub *subscription.Subscription, runAt time.Time, lookback time.Duration) digestOutcome {
	cutoff := sub.CutoffFor(runAt, lookback)

	candidates, err := uc.postings.FindCreatedAfter(ctx, cutoff)
	if err != nil {
		uc.logger.Error("failed to load candidate postings",
			"subscription_id", sub.ID,
			"cutoff", cutoff,
			"error", err,
		)
		return digestFailed
	}

	var matched []*posting.Posting
	for _, p := range candidates {
		if uc.matcher.Matches(sub, p) {
			matched = append(matched, p)
		}
	}
	if len(matched) == 0 {
		return digestSkipped
	}

	if err := uc.sender.SendDigest(ctx, sub.Email.Value(), sub.GreetingName(), matched); err != nil {
		// Cursor stays put: the same postings reappear as candidates on the
		// next run.
		uc.logger.Error("digest send failed",
			"subscription_id", sub.ID,
			"postings", len(matched),
			"error", err,
		)
		return digestFailed
	}

	if err := uc.subs.AdvanceCursor(ctx, sub.ID, runAt); err != nil {
		// The email went out; a stuck cursor means a duplicate next run,
		// which the digest path tolerates (at-least-once).
		uc.logger.Error("failed to advance notification cursor",
			"subscription_id", sub.ID,
			"error", err,
		)
	}
	return digestSent
}
