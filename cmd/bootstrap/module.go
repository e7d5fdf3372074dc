package bootstrap

import (
	"alert-engine/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	RedisModule,
	components.RepositoryModule,
	components.DeliveryModule,
	components.UseCaseModule,
	components.HandlerModule,
	components.SchedulerModule,
)
