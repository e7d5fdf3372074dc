package components

import (
	"alert-engine/internal/infra/repository"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		repository.NewSubscriptionRepository,
		repository.NewPostingRepository,
	),
)
