package components

import (
	"context"
	"log/slog"

	"alert-engine/internal/pkg/config"
	"alert-engine/internal/scheduler"
	"alert-engine/internal/usecase"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewScheduler,
	),
	fx.Invoke(startScheduler),
)

func NewScheduler(digest usecase.DigestCommands, cfg config.Config, logger *slog.Logger) *scheduler.Scheduler {
	return scheduler.New(digest, cfg.Digest, logger)
}

func startScheduler(lc fx.Lifecycle, s *scheduler.Scheduler) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			// Runs outlive the start hook, so they get their own context.
			return s.Start(context.Background())
		},
		OnStop: func(_ context.Context) error {
			s.Stop()
			return nil
		},
	})
}
