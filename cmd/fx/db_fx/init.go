package db_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"aroundtown/internal/api/controllers"
	"aroundtown/internal/infra"
	"aroundtown/internal/services"
)

var Module = fx.Options(
	fx.Provide(
		provideDB,
		func(p *infra.Provider) services.Sessioner { return p },
		func(p *infra.Provider) controllers.Pinger { return p },
	),
)

func provideDB(lc fx.Lifecycle, cfg infra.Config, log *zap.Logger) (*infra.Provider, error) {
	provider, err := infra.Open(cfg, log)
	if err != nil {
		return nil, err
	}

	if cfg.AutoMigrate {
		if dialect, _, _ := cfg.Dialect(); dialect == infra.DialectSQLite {
			if err := provider.AutoMigrate(); err != nil {
				return nil, err
			}
		} else {
			log.Warn("DB_AUTO_MIGRATE is only honoured for sqlite; skipping", zap.String("dialect", dialect))
		}
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return provider.Close()
		},
	})
	return provider, nil
}
