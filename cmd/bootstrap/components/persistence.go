package components

import (
	"gather-venues/internal/infra/bookingstore"
	"gather-venues/internal/infra/catalog"
	"gather-venues/internal/infra/flowstore"
	"gather-venues/internal/usecase/commands"
	"gather-venues/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		// Catalog
		fx.Annotate(
			catalog.Load,
			fx.As(new(queries.VenueCatalog)),
			fx.As(new(commands.VenueCatalog)),
		),
		// Bookings
		fx.Annotate(
			bookingstore.NewFileStore,
			fx.As(new(commands.RecordStore)),
			fx.As(new(queries.RecordReadStore)),
		),
		// Flow sessions
		fx.Annotate(
			flowstore.New,
			fx.As(new(commands.FlowStore)),
			fx.As(new(queries.FlowReadStore)),
		),
	),
)
