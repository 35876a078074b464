package main

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"aroundtown/cmd/fx/config_fx"
	"aroundtown/cmd/fx/controllers_fx"
	"aroundtown/cmd/fx/db_fx"
	"aroundtown/cmd/fx/listing_fx"
	"aroundtown/internal/api/controllers"
	"aroundtown/internal/infra"
	"aroundtown/pkg/middleware"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		listing_fx.Module,
		controllers_fx.Module,

		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Named("fx")}
		}),
		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg infra.Config, engine *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Info("starting HTTP server", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("HTTP server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	cfg infra.Config,
	log *zap.Logger,
	listingController *controllers.ListingController,
	healthController *controllers.HealthController) *gin.Engine {

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(log.Named("http")))
	r.Use(gin.Recovery())

	RegisterRoutes(r, listingController, healthController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	listingController *controllers.ListingController,
	healthController *controllers.HealthController) {

	r.GET("/", listingController.GetPage)
	r.GET("/static/styles.css", listingController.GetStylesheet)
	r.GET("/charts/:file", listingController.GetChart)
	r.GET("/healthz", healthController.GetHealth)

	api := r.Group("/api")
	api.GET("/filters", listingController.GetFilterOptions)
	api.GET("/groups", listingController.ListGroups)
	api.GET("/insights/:metric", listingController.GetInsight)
}
