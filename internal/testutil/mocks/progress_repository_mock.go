package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/algogame/internal/models"
)

// MockProgressRepository is a mock implementation of repository.ProgressRepository
type MockProgressRepository struct {
	mock.Mock
}

func (m *MockProgressRepository) Get(ctx context.Context, profileID int64, algorithm models.Algorithm) (*models.ProgressRecord, error) {
	args := m.Called(ctx, profileID, algorithm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProgressRecord), args.Error(1)
}

func (m *MockProgressRepository) List(ctx context.Context, profileID int64) ([]models.AlgorithmProgress, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AlgorithmProgress), args.Error(1)
}
