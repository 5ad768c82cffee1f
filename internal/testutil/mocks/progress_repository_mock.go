package mocks

import (
	"context"

	"github.com/nmoreira/puzzleday/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockProgressRepository is a mock implementation of repository.ProgressRepository
type MockProgressRepository struct {
	mock.Mock
}

func (m *MockProgressRepository) Get(ctx context.Context, userID string) (*models.UserProgress, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProgress), args.Error(1)
}

func (m *MockProgressRepository) Upsert(ctx context.Context, progress models.UserProgress) error {
	args := m.Called(ctx, progress)
	return args.Error(0)
}
