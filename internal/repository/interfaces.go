package repository

import (
	"context"

	"github.com/nmoreira/puzzleday/internal/models"
)

// CompletionRepository handles per-(user, date) completion records.
// Get returns (nil, nil) when no record exists.
type CompletionRepository interface {
	Get(ctx context.Context, userID, date string) (*models.CompletionRecord, error)
	Upsert(ctx context.Context, record models.CompletionRecord) error
	ListByUser(ctx context.Context, userID string, filter models.CompletionFilter) ([]models.CompletionRecord, error)
}

// ProgressRepository handles per-user progress snapshots.
// Get returns (nil, nil) when no snapshot exists.
type ProgressRepository interface {
	Get(ctx context.Context, userID string) (*models.UserProgress, error)
	Upsert(ctx context.Context, progress models.UserProgress) error
}

// UserRepository handles account data access.
// GetByEmail and GetByID return (nil, nil) when no user exists.
type UserRepository interface {
	Insert(ctx context.Context, user models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}
