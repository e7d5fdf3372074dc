package components

import (
	"log/slog"

	"alert-engine/internal/infra/dedup"
	"alert-engine/internal/infra/mailer"
	"alert-engine/internal/infra/push"
	"alert-engine/internal/pkg/config"
	"alert-engine/internal/usecase"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var DeliveryModule = fx.Module("delivery",
	fx.Provide(
		NewDigestSender,
		NewPushSender,
		NewEventGuard,
	),
)

func NewDigestSender(cfg config.Config, logger *slog.Logger) (usecase.DigestSender, error) {
	return mailer.NewSMTPDigestSender(cfg.SMTP, logger)
}

func NewPushSender(cfg config.Config, logger *slog.Logger) usecase.PushSender {
	return push.NewWebPushSender(cfg.Push, logger)
}

func NewEventGuard(rdb *redis.Client, cfg config.Config) usecase.EventGuard {
	return dedup.NewRedisEventGuard(rdb, cfg.Redis.EventTTL)
}
