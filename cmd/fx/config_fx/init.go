package config_fx

import (
	"go.uber.org/fx"

	"tripsmith/internal/config"
)

var Module = fx.Provide(config.Load)
