package mocks

import (
	"context"

	"github.com/nmoreira/puzzleday/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockCompletionRepository is a mock implementation of repository.CompletionRepository
type MockCompletionRepository struct {
	mock.Mock
}

func (m *MockCompletionRepository) Get(ctx context.Context, userID, date string) (*models.CompletionRecord, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CompletionRecord), args.Error(1)
}

func (m *MockCompletionRepository) Upsert(ctx context.Context, record models.CompletionRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockCompletionRepository) ListByUser(ctx context.Context, userID string, filter models.CompletionFilter) ([]models.CompletionRecord, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CompletionRecord), args.Error(1)
}
