package usecase

import (
	"context"
	"log/slog"
	"sync/atomic"

	"alert-engine/internal/domain/matching"
	"alert-engine/internal/domain/subscription"
	"alert-engine/internal/pkg/errs"
	"alert-engine/internal/usecase/shared"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

type RealtimeResult struct {
	// Suppressed is true when the event guard saw this posting already.
	Suppressed bool
	Candidates int
	Pushed     int
	Cleared    int
	Failed     int
}

type RealtimeCommands interface {
	NotifyPostingCreated(ctx context.Context, postingID uuid.UUID) (*RealtimeResult, error)
}

type realtimeUseCaseImpl struct {
	subs          SubscriptionRepository
	postings      PostingRepository
	push          PushSender
	guard         EventGuard
	matcher       matching.Strategy
	logger        *slog.Logger
	workers       int
	targetBaseURL string
}

func NewRealtimeCommands(
	subs SubscriptionRepository,
	postings PostingRepository,
	push PushSender,
	guard EventGuard,
	matcher matching.Strategy,
	logger *slog.Logger,
	workers int,
	targetBaseURL string,
) RealtimeCommands {
	return &realtimeUseCaseImpl{
		subs:          subs,
		postings:      postings,
		push:          push,
		guard:         guard,
		matcher:       matcher,
		logger:        logger,
		workers:       workers,
		targetBaseURL: targetBaseURL,
	}
}

// NotifyPostingCreated runs the realtime pipeline for one newly created (or
// status-changed) posting. Fire-and-forget per subscription: an error
// notifying one subscriber never prevents notifying the others, and no state
// changes except clearing registrations the push service reports dead.
func (uc *realtimeUseCaseImpl) NotifyPostingCreated(ctx context.Context, postingID uuid.UUID) (*RealtimeResult, error) {
	post, err := uc.postings.FindByID(ctx, postingID)
	if err != nil {
		if errors.Is(err, errs.ErrPostingNotFound) {
			// Data error: skip the item, nothing to abort.
			uc.logger.Warn("posting vanished before realtime processing", "posting_id", postingID)
			return &RealtimeResult{}, nil
		}
		return nil, errs.Wrap(err, "failed to load posting")
	}

	if uc.guard != nil {
		first, gerr := uc.guard.FirstSeen(ctx, postingID)
		switch {
		case gerr != nil:
			// Guard is advisory; the push tag still collapses duplicates.
			uc.logger.Warn("event guard unavailable, processing anyway",
				"posting_id", postingID,
				"error", gerr,
			)
		case !first:
			uc.logger.Info("duplicate posting event suppressed", "posting_id", postingID)
			return &RealtimeResult{Suppressed: true}, nil
		}
	}

	candidates, err := uc.subs.FindPushCandidates(ctx, post.Location, post.CityPrefix())
	if err != nil {
		return nil, errs.Wrap(err, "failed to load push candidates")
	}

	payload := PushPayload{
		Title:     "New Job Match 🎯",
		Body:      post.Title,
		URL:       uc.targetBaseURL + "/" + post.ID.String(),
		PostingID: post.ID,
		Tag:       "posting-" + post.ID.String(),
	}

	var pushed, cleared, failed atomic.Int64
	shared.ForEachLimit(ctx, uc.workers, candidates, func(ctx context.Context, sub *subscription.Subscription) {
		if !uc.matcher.Matches(sub, post) {
			return
		}

		err := uc.push.Send(ctx, sub.Push, payload)
		switch {
		case err == nil:
			pushed.Add(1)
		case errors.Is(err, errs.ErrRegistrationGone):
			// Permanent channel failure: drop the registration so future
			// runs never retry a dead channel. Field-scoped by the repo.
			if cerr := uc.subs.ClearPushRegistration(ctx, sub.ID); cerr != nil {
				uc.logger.Error("failed to clear dead push registration",
					"subscription_id", sub.ID,
					"error", cerr,
				)
				failed.Add(1)
				return
			}
			cleared.Add(1)
		case errors.Is(err, errs.ErrSenderUnauthorized):
			uc.logger.Error("push sender credentials rejected",
				"subscription_id", sub.ID,
				"error", err,
			)
			failed.Add(1)
		default:
			// Transient: no mutation, no retry here. The next triggering
			// event is the retry.
			uc.logger.Warn("push delivery failed",
				"subscription_id", sub.ID,
				"posting_id", post.ID,
				"error", err,
			)
			failed.Add(1)
		}
	})

	result := &RealtimeResult{
		Candidates: len(candidates),
		Pushed:     int(pushed.Load()),
		Cleared:    int(cleared.Load()),
		Failed:     int(failed.Load()),
	}
	uc.logger.Info("realtime notification pass finished",
		"posting_id", post.ID,
		"candidates", result.Candidates,
		"pushed", result.Pushed,
		"cleared", result.Cleared,
		"failed", result.Failed,
	)
	return result, nil
}
