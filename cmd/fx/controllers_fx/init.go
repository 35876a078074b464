package controllers_fx

import (
	"go.uber.org/fx"

	"aroundtown/internal/api/controllers"
	"aroundtown/internal/infra"
	"aroundtown/internal/web"
)

var Module = fx.Options(
	fx.Provide(provideRenderer),
	fx.Provide(controllers.NewListingController),
	fx.Provide(controllers.NewHealthController))

func provideRenderer(cfg infra.Config) (*web.Renderer, error) {
	return web.NewRenderer(web.RendererConfig{
		SubmitGroupURL: cfg.SubmitGroupURL,
		CardColumns:    cfg.CardColumns,
	})
}
