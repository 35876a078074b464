package listing_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"aroundtown/internal/infra"
	"aroundtown/internal/services"
)

var Module = fx.Provide(
	provideListingService)

func provideListingService(sessions services.Sessioner, cfg infra.Config, log *zap.Logger) services.ListingServiceInterface {
	return services.NewListingService(sessions, services.ListingOptions{
		StrictCategory: cfg.StrictCategoryFilter,
	}, log.Named("listing"))
}
