package controllers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tripsmith/internal/models/response_models"
	"tripsmith/internal/services"
)

type MockTripPlannerService struct {
	mock.Mock
}

func (m *MockTripPlannerService) PlanTrip(ctx context.Context, input services.PlanTripInput) (*response_models.TripPlanResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response_models.TripPlanResult), args.Error(1)
}

type MockSpotService struct {
	mock.Mock
}

func (m *MockSpotService) ListSpots(ctx context.Context, limit int) ([]response_models.TouristSpot, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response_models.TouristSpot), args.Error(1)
}

func (m *MockSpotService) GetSpot(ctx context.Context, id string) (*response_models.TouristSpot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response_models.TouristSpot), args.Error(1)
}
