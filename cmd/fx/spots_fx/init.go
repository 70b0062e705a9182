package spots_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"tripsmith/internal/config"
	"tripsmith/internal/repositories"
	"tripsmith/internal/services"
)

var Module = fx.Provide(
	provideSpotRepo, provideSpotService)

func provideSpotRepo(db *gorm.DB, cfg *config.Config) repositories.SpotRepository {
	return repositories.NewSpotRepository(db, cfg.Planner.SpotPageSize)
}

func provideSpotService(spotRepo repositories.SpotRepository, logger *zap.Logger) services.SpotServiceInterface {
	return services.NewSpotService(spotRepo, logger)
}
