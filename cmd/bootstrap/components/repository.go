package components

import (
	"hotelier/internal/infra/memstore"
	"hotelier/internal/usecase/commands"
	"hotelier/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			memstore.NewStore,
			fx.As(new(commands.HotelStore)),
			fx.As(new(queries.ReadStore)),
		),
		fx.Annotate(
			memstore.NewIdempotencyStore,
			fx.As(new(commands.IdempotencyStore)),
		),
	),
)
