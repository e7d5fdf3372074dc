// Package scheduler wires up the cron entries that periodically trigger the
// daily and weekly digest runs.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"

	"alert-engine/internal/domain/subscription"
	"alert-engine/internal/pkg/config"
	"alert-engine/internal/usecase"

	"github.com/robfig/cron/v3"
)

type Scheduler struct {
	cron   *cron.Cron
	digest usecase.DigestCommands
	cfg    config.DigestConfig
	logger *slog.Logger
}

func New(digest usecase.DigestCommands, cfg config.DigestConfig, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(cron.WithLogger(cron.DefaultLogger)),
		digest: digest,
		cfg:    cfg,
		logger: logger,
	}
}

// Start registers both cadences and starts the cron loop. A run is not
// cancellable mid-flight; partial completion is fine because every
// subscription resumes from its own cursor on the next tick.
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.cfg.DailySpec, func() {
		s.run(ctx, subscription.FrequencyDaily)
	}); err != nil {
		return fmt.Errorf("cron.AddFunc daily: %w", err)
	}
	if _, err := s.cron.AddFunc(s.cfg.WeeklySpec, func() {
		s.run(ctx, subscription.FrequencyWeekly)
	}); err != nil {
		return fmt.Errorf("cron.AddFunc weekly: %w", err)
	}

	s.cron.Start()
	s.logger.Info("digest scheduler started",
		"daily_spec", s.cfg.DailySpec,
		"weekly_spec", s.cfg.WeeklySpec,
	)
	return nil
}

// Stop shuts down the cron loop; in-flight runs finish on their own.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.logger.Info("digest scheduler stopped")
}

func (s *Scheduler) run(ctx context.Context, freq subscription.Frequency) {
	if _, err := s.digest.Run(ctx, usecase.DigestRequest{
		Frequency: freq,
		Lookback:  freq.Lookback(),
	}); err != nil {
		s.logger.Error("scheduled digest run failed",
			"frequency", freq.String(),
			"error", err,
		)
	}
}
