package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tripsmith/internal/models/db_models"
	"tripsmith/internal/models/response_models"
	"tripsmith/pkg/utils"
)

type MockGenerativeClient struct {
	mock.Mock
}

func (m *MockGenerativeClient) Generate(ctx context.Context, req utils.GenerationRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockGenerativeClient) Provider() string { return "mock" }

func (m *MockGenerativeClient) Close() error { return nil }

type MockSpotRepository struct {
	mock.Mock
}

func (m *MockSpotRepository) FindByDistricts(ctx context.Context, names []string) ([]response_models.TouristSpot, error) {
	args := m.Called(ctx, names)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response_models.TouristSpot), args.Error(1)
}

func (m *MockSpotRepository) List(ctx context.Context, limit int) ([]db_models.TouristSpot, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.TouristSpot), args.Error(1)
}

func (m *MockSpotRepository) GetByID(ctx context.Context, id string) (*db_models.TouristSpot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.TouristSpot), args.Error(1)
}

func (m *MockSpotRepository) UpsertBatch(ctx context.Context, spots []db_models.TouristSpot) error {
	args := m.Called(ctx, spots)
	return args.Error(0)
}
