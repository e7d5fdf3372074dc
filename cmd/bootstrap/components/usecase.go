package components

import (
	"log/slog"

	"alert-engine/internal/domain/matching"
	"alert-engine/internal/pkg/clock"
	"alert-engine/internal/pkg/config"
	"alert-engine/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		NewMatcherStrategy,
		NewDigestCommands,
		NewRealtimeCommands,
	),
)

func NewMatcherStrategy(cfg config.Config) (matching.Strategy, error) {
	return matching.NewStrategy(cfg.Match.Strategy)
}

func NewDigestCommands(
	subs usecase.SubscriptionRepository,
	postings usecase.PostingRepository,
	sender usecase.DigestSender,
	matcher matching.Strategy,
	clk clock.Clock,
	logger *slog.Logger,
	cfg config.Config,
) usecase.DigestCommands {
	return usecase.NewDigestCommands(subs, postings, sender, matcher, clk, logger, cfg.Digest.Workers)
}

func NewRealtimeCommands(
	subs usecase.SubscriptionRepository,
	postings usecase.PostingRepository,
	push usecase.PushSender,
	guard usecase.EventGuard,
	matcher matching.Strategy,
	logger *slog.Logger,
	cfg config.Config,
) usecase.RealtimeCommands {
	return usecase.NewRealtimeCommands(subs, postings, push, guard, matcher, logger, cfg.Digest.Workers, cfg.Push.TargetBaseURL)
}
