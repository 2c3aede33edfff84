package bootstrap

import (
	"gather-venues/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.CatalogConfig { return cfg.Catalog },
		func(cfg config.Config) config.StoreConfig { return cfg.Store },
		func(cfg config.Config) config.BookingConfig { return cfg.Booking },
	),
)
