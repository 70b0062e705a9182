package planner_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripsmith/internal/config"
	"tripsmith/internal/repositories"
	"tripsmith/internal/services"
	"tripsmith/pkg/utils"
)

var Module = fx.Provide(
	provideNameResolver,
	providePlanGenerator,
	provideImageEnricher,
	provideTripPlannerService)

func provideNameResolver(llm utils.GenerativeClientInterface, logger *zap.Logger) services.NameResolverInterface {
	return services.NewNameResolver(llm, logger)
}

func providePlanGenerator(llm utils.GenerativeClientInterface, logger *zap.Logger) services.PlanGeneratorInterface {
	return services.NewPlanGenerator(llm, logger)
}

func provideImageEnricher() services.ImageEnricherInterface {
	return services.NewImageEnricher(nil)
}

func provideTripPlannerService(
	resolver services.NameResolverInterface,
	spotRepo repositories.SpotRepository,
	generator services.PlanGeneratorInterface,
	enricher services.ImageEnricherInterface,
	cfg *config.Config,
	logger *zap.Logger,
) services.TripPlannerServiceInterface {
	return services.NewTripPlannerService(resolver, spotRepo, generator, enricher, cfg.Planner.MaxDestinations, logger)
}
