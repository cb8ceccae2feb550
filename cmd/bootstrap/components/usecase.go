package components

import (
	"hotelier/internal/domain/booking"
	"hotelier/internal/domain/pricing"
	"hotelier/internal/pkg/clock"
	"hotelier/internal/pkg/config"
	"hotelier/internal/pkg/sequence"
	"hotelier/internal/usecase/commands"
	"hotelier/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		sequence.NewInMemory,
		fx.As(new(sequence.Generator)),
	),
	fx.Annotate(
		pricing.NewNightlyCalculator,
		fx.As(new(pricing.Calculator)),
	),
	booking.NewFactory,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewHotelCommands,
		func(
			store commands.HotelStore,
			idempotency commands.IdempotencyStore,
			factory *booking.Factory,
			hotelQueries queries.HotelQueries,
			clk clock.Clock,
			cfg config.Config,
		) commands.BookingCommands {
			return commands.NewBookingCommands(store, idempotency, factory, hotelQueries, clk, cfg.Booking.IdempotencyTTL)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewHotelQueries,
		queries.NewAvailabilityQueries,
	),
)
