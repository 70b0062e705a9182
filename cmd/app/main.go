package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripsmith/cmd/fx/config_fx"
	"tripsmith/cmd/fx/controllers_fx"
	"tripsmith/cmd/fx/db_fx"
	"tripsmith/cmd/fx/llm_fx"
	"tripsmith/cmd/fx/logger_fx"
	"tripsmith/cmd/fx/memcache_fx"
	"tripsmith/cmd/fx/planner_fx"
	"tripsmith/cmd/fx/spots_fx"
	"tripsmith/internal/api/controllers"
	"tripsmith/internal/config"
	"tripsmith/pkg/metrics"
	"tripsmith/pkg/middleware"
)

func main() {
	app := fx.New(
		config_fx.Module,
		logger_fx.Module,
		db_fx.Module,
		llm_fx.Module,
		spots_fx.Module,
		planner_fx.Module,
		memcache_fx.Module,
		controllers_fx.Module,

		fx.Provide(metrics.InitRegistry),
		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, logger *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.ServerAddr(),
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("Starting HTTP server", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("Failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	logger *zap.Logger,
	registry *prometheus.Registry,
	tripController *controllers.TripController,
	spotsController *controllers.SpotsController) *gin.Engine {

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(logger.Named("http")))
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, registry, tripController, spotsController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	registry *prometheus.Registry,
	tripController *controllers.TripController,
	spotsController *controllers.SpotsController) {

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler(registry)))

	tripsGroup := r.Group("/trips")
	tripsGroup.POST("/plan", tripController.PlanTrip)

	spotsGroup := r.Group("/spots")
	spotsGroup.GET("", spotsController.ListSpots)
	spotsGroup.GET("/:id", spotsController.GetSpot)
}
