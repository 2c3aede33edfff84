package components

import (
	"gather-venues/internal/handler"
	"gather-venues/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewVenueHandler,
		api.NewSearchHandler,
		api.NewBookingHandler,
	),
	fx.Invoke(handler.NewRouter),
)
