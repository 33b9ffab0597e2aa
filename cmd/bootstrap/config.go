package bootstrap

import (
	"asset-factory/internal/pkg/config"
	"asset-factory/internal/usecase/commands"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) (commands.Params, error) {
			return commands.NewParams(cfg.Program)
		},
	),
)
