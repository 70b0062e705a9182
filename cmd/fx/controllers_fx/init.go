package controllers_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripsmith/internal/api/controllers"
	"tripsmith/internal/config"
	"tripsmith/internal/services"
	mem "tripsmith/pkg/memcache"
)

var Module = fx.Options(
	fx.Provide(provideTripController),
	fx.Provide(controllers.NewSpotsController))

func provideTripController(
	plannerService services.TripPlannerServiceInterface,
	inFlight mem.InFlightStore,
	cfg *config.Config,
	logger *zap.Logger,
) *controllers.TripController {
	return controllers.NewTripController(plannerService, inFlight, cfg.Planner.PlanLockTTL, logger)
}
