package components

import (
	"alert-engine/internal/handler"
	"alert-engine/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewTriggerHandler,
	),
	fx.Invoke(handler.NewRouter),
)
