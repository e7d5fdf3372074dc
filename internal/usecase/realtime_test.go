//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"

	"alert-engine/internal/domain/matching"
	"alert-engine/internal/domain/subscription"
	"alert-engine/internal/infra"
	"alert-engine/internal/pkg/errs"
	"alert-engine/internal/usecase"
	"alert-engine/tests/common/builder"
	usecasemock "alert-engine/tests/mock/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testTargetBaseURL = "https://careerspage.app/jobs"

type realtimeMocks struct {
	subs     *usecasemock.MockSubscriptionRepository
	postings *usecasemock.MockPostingRepository
	push     *usecasemock.MockPushSender
	guard    *usecasemock.MockEventGuard
}

func newRealtimeCommands(ctrl *gomock.Controller) (usecase.RealtimeCommands, realtimeMocks) {
	m := realtimeMocks{
		subs:     usecasemock.NewMockSubscriptionRepository(ctrl),
		postings: usecasemock.NewMockPostingRepository(ctrl),
		push:     usecasemock.NewMockPushSender(ctrl),
		guard:    usecasemock.NewMockEventGuard(ctrl),
	}
	uc := usecase.NewRealtimeCommands(m.subs, m.postings, m.push, m.guard, matching.NewWeighted(), discardLogger(), 4, testTargetBaseURL)
	return uc, m
}

func TestNotifyPostingCreated_PushesToMatchingCandidates(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newRealtimeCommands(ctrl)

	post := builder.NewPostingBuilder().Build()
	sub := builder.NewSubscriptionBuilder().WithPush("https://push.example.com/ep-1").Build()

	m.postings.EXPECT().FindByID(ctx, post.ID).Return(post, nil)
	m.guard.EXPECT().FirstSeen(ctx, post.ID).Return(true, nil)
	m.subs.EXPECT().FindPushCandidates(ctx, "Bangalore, India", "Bangalore").
		Return([]*subscription.Subscription{sub}, nil)

	var got usecase.PushPayload
	m.push.EXPECT().Send(ctx, sub.Push, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *subscription.PushRegistration, payload usecase.PushPayload) error {
			got = payload
			return nil
		})

	result, err := uc.NotifyPostingCreated(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, &usecase.RealtimeResult{Candidates: 1, Pushed: 1}, result)

	assert.Equal(t, "New Job Match 🎯", got.Title)
	assert.Equal(t, post.Title, got.Body)
	assert.Equal(t, testTargetBaseURL+"/"+post.ID.String(), got.URL)
	assert.Equal(t, post.ID, got.PostingID)
	assert.Equal(t, "posting-"+post.ID.String(), got.Tag)
}

func TestNotifyPostingCreated_SkipsNonMatchingCandidates(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newRealtimeCommands(ctrl)

	post := builder.NewPostingBuilder().Build()
	match := builder.NewSubscriptionBuilder().WithPush("https://push.example.com/ep-1").Build()
	offTopic := builder.NewSubscriptionBuilder().
		WithKeywordValues("golang").
		WithPush("https://push.example.com/ep-2").
		Build()

	m.postings.EXPECT().FindByID(ctx, post.ID).Return(post, nil)
	m.guard.EXPECT().FirstSeen(ctx, post.ID).Return(true, nil)
	m.subs.EXPECT().FindPushCandidates(ctx, post.Location, "Bangalore").
		Return([]*subscription.Subscription{match, offTopic}, nil)
	m.push.EXPECT().Send(ctx, match.Push, gomock.Any()).Return(nil)
	// No Send for offTopic.

	result, err := uc.NotifyPostingCreated(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, &usecase.RealtimeResult{Candidates: 2, Pushed: 1}, result)
}

func TestNotifyPostingCreated_DeadRegistrationIsCleared(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newRealtimeCommands(ctrl)

	post := builder.NewPostingBuilder().Build()
	sub := builder.NewSubscriptionBuilder().WithPush("https://push.example.com/ep-dead").Build()

	m.postings.EXPECT().FindByID(ctx, post.ID).Return(post, nil)
	m.guard.EXPECT().FirstSeen(ctx, post.ID).Return(true, nil)
	m.subs.EXPECT().FindPushCandidates(ctx, post.Location, "Bangalore").
		Return([]*subscription.Subscription{sub}, nil)
	m.push.EXPECT().Send(ctx, sub.Push, gomock.Any()).
		Return(errs.ErrRegistrationGone)
	m.subs.EXPECT().ClearPushRegistration(ctx, sub.ID).Return(nil)

	result, err := uc.NotifyPostingCreated(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, &usecase.RealtimeResult{Candidates: 1, Cleared: 1}, result)
}

func TestNotifyPostingCreated_ClearFailureCountsAsFailed(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newRealtimeCommands(ctrl)

	post := builder.NewPostingBuilder().Build()
	sub := builder.NewSubscriptionBuilder().WithPush("https://push.example.com/ep-dead").Build()

	m.postings.EXPECT().FindByID(ctx, post.ID).Return(post, nil)
	m.guard.EXPECT().FirstSeen(ctx, post.ID).Return(true, nil)
	m.subs.EXPECT().FindPushCandidates(ctx, post.Location, "Bangalore").
		Return([]*subscription.Subscription{sub}, nil)
	m.push.EXPECT().Send(ctx, sub.Push, gomock.Any()).
		Return(errs.ErrRegistrationGone)
	m.subs.EXPECT().ClearPushRegistration(ctx, sub.ID).
		Return(errors.New("connection reset"))

	result, err := uc.NotifyPostingCreated(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, &usecase.RealtimeResult{Candidates: 1, Failed: 1}, result)
}

func TestNotifyPostingCreated_TransientFailureMutatesNothing(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newRealtimeCommands(ctrl)

	post := builder.NewPostingBuilder().Build()
	sub := builder.NewSubscriptionBuilder().WithPush("https://push.example.com/ep-1").Build()

	m.postings.EXPECT().FindByID(ctx, post.ID).Return(post, nil)
	m.guard.EXPECT().FirstSeen(ctx, post.ID).Return(true, nil)
	m.subs.EXPECT().FindPushCandidates(ctx, post.Location, "Bangalore").
		Return([]*subscription.Subscription{sub}, nil)
	m.push.EXPECT().Send(ctx, sub.Push, gomock.Any()).
		Return(errors.New("push endpoint returned 503"))
	// No ClearPushRegistration: the channel may come back.

	result, err := uc.NotifyPostingCreated(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, &usecase.RealtimeResult{Candidates: 1, Failed: 1}, result)
}

func TestNotifyPostingCreated_UnauthorizedSenderCountsAsFailed(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newRealtimeCommands(ctrl)

	post := builder.NewPostingBuilder().Build()
	sub := builder.NewSubscriptionBuilder().WithPush("https://push.example.com/ep-1").Build()

	m.postings.EXPECT().FindByID(ctx, post.ID).Return(post, nil)
	m.guard.EXPECT().FirstSeen(ctx, post.ID).Return(true, nil)
	m.subs.EXPECT().FindPushCandidates(ctx, post.Location, "Bangalore").
		Return([]*subscription.Subscription{sub}, nil)
	m.push.EXPECT().Send(ctx, sub.Push, gomock.Any()).
		Return(errs.ErrSenderUnauthorized)

	result, err := uc.NotifyPostingCreated(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, &usecase.RealtimeResult{Candidates: 1, Failed: 1}, result)
}

func TestNotifyPostingCreated_DuplicateEventIsSuppressed(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newRealtimeCommands(ctrl)

	post := builder.NewPostingBuilder().Build()

	m.postings.EXPECT().FindByID(ctx, post.ID).Return(post, nil)
	m.guard.EXPECT().FirstSeen(ctx, post.ID).Return(false, nil)
	// No candidate load, no pushes.

	result, err := uc.NotifyPostingCreated(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, &usecase.RealtimeResult{Suppressed: true}, result)
}

func TestNotifyPostingCreated_GuardOutageDoesNotBlockDelivery(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newRealtimeCommands(ctrl)

	post := builder.NewPostingBuilder().Build()
	sub := builder.NewSubscriptionBuilder().WithPush("https://push.example.com/ep-1").Build()

	m.postings.EXPECT().FindByID(ctx, post.ID).Return(post, nil)
	m.guard.EXPECT().FirstSeen(ctx, post.ID).Return(false, errors.New("redis: connection pool timeout"))
	m.subs.EXPECT().FindPushCandidates(ctx, post.Location, "Bangalore").
		Return([]*subscription.Subscription{sub}, nil)
	m.push.EXPECT().Send(ctx, sub.Push, gomock.Any()).Return(nil)

	result, err := uc.NotifyPostingCreated(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Pushed)
}

func TestNotifyPostingCreated_VanishedPostingIsANoOp(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newRealtimeCommands(ctrl)

	post := builder.NewPostingBuilder().Build()

	// The exact error shape the repository produces for a missing row.
	notFound := infra.WrapRepoErr(discardLogger(), infra.KindNotFound, "posting not found",
		errs.Mark(errors.New("no rows"), errs.ErrPostingNotFound))
	m.postings.EXPECT().FindByID(ctx, post.ID).Return(nil, notFound)

	result, err := uc.NotifyPostingCreated(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, &usecase.RealtimeResult{}, result)
}

func TestNotifyPostingCreated_PostingLoadFailureAborts(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newRealtimeCommands(ctrl)

	post := builder.NewPostingBuilder().Build()

	m.postings.EXPECT().FindByID(ctx, post.ID).
		Return(nil, errors.New("connection refused"))

	result, err := uc.NotifyPostingCreated(ctx, post.ID)
	assert.Error(t, err)
	assert.Nil(t, result)
}
