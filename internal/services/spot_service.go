package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tripsmith/internal/models/response_models"
	"tripsmith/internal/repositories"
	"tripsmith/pkg/utils"
)

const (
	FeaturedSpotsLimit = 5
	DefaultSpotsLimit  = 50
	MaxSpotsLimit      = 100
)

type SpotServiceInterface interface {
	ListSpots(ctx context.Context, limit int) ([]response_models.TouristSpot, error)
	GetSpot(ctx context.Context, id string) (*response_models.TouristSpot, error)
}

type SpotService struct {
	spotRepo repositories.SpotRepository
	logger   *zap.Logger
}

func NewSpotService(spotRepo repositories.SpotRepository, logger *zap.Logger) SpotServiceInterface {
	return &SpotService{
		spotRepo: spotRepo,
		logger:   logger.Named("spot_service"),
	}
}

// ListSpots returns spots ordered by name. limit is clamped to [1, MaxSpotsLimit].
func (s *SpotService) ListSpots(ctx context.Context, limit int) ([]response_models.TouristSpot, error) {
	if limit < 1 {
		limit = DefaultSpotsLimit
	}
	if limit > MaxSpotsLimit {
		limit = MaxSpotsLimit
	}

	rows, err := s.spotRepo.List(ctx, limit)
	if err != nil {
		s.logger.Error("list spots failed", zap.Int("limit", limit), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	spots := make([]response_models.TouristSpot, 0, len(rows))
	for _, row := range rows {
		spots = append(spots, row.ToResponse())
	}
	return spots, nil
}

func (s *SpotService) GetSpot(ctx context.Context, id string) (*response_models.TouristSpot, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: invalid spot id", utils.ErrInvalidInput)
	}

	row, err := s.spotRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("get spot failed", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if row == nil {
		return nil, utils.ErrSpotNotFound
	}

	spot := row.ToResponse()
	return &spot, nil
}
