package components

import (
	"gather-venues/internal/domain/availability"
	"gather-venues/internal/domain/booking"
	"gather-venues/internal/pkg/clock"
	"gather-venues/internal/usecase/commands"
	"gather-venues/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	booking.NewIDGenerator,
	fx.Annotate(
		availability.NewRandomProvider,
		fx.As(new(availability.Provider)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewSearchCommands,
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewVenueQueries,
		queries.NewBookingQueries,
	),
)
