package config_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"aroundtown/internal/infra"
	"aroundtown/pkg/logger"
)

var Module = fx.Provide(
	infra.LoadConfig,
	provideLogger)

func provideLogger(cfg infra.Config) (*zap.Logger, error) {
	return logger.New(cfg.LogLevel, cfg.LogFormat)
}
