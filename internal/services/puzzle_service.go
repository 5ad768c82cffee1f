package services

import (
	"context"
	"time"

	"github.com/nmoreira/puzzleday/internal/errors"
	"github.com/nmoreira/puzzleday/internal/logger"
	"github.com/nmoreira/puzzleday/internal/models"
	"github.com/nmoreira/puzzleday/internal/progress"
	"github.com/nmoreira/puzzleday/internal/puzzle"
	"github.com/nmoreira/puzzleday/internal/repository"
)

// SubmissionResult is the outcome of an answer submission. Progress is set
// only when the submission completes the day's puzzle.
type SubmissionResult struct {
	IsCorrect bool                 `json:"is_correct"`
	Feedback  string               `json:"feedback"`
	Attempts  int                  `json:"attempts"`
	Progress  *models.UserProgress `json:"progress,omitempty"`
}

// PuzzleService handles puzzle-related business logic
type PuzzleService interface {
	DailyPuzzle(ctx context.Context, date string, kind models.Kind) (*models.Puzzle, error)
	SubmitAnswer(ctx context.Context, userID, date string, kind models.Kind, answer string, timeSpentSeconds int) (*SubmissionResult, error)
	GetProgress(ctx context.Context, userID string) (*models.UserProgress, error)
	ListCompletions(ctx context.Context, userID string, filter models.CompletionFilter) ([]models.CompletionRecord, error)
}

type puzzleService struct {
	registry    *puzzle.Registry
	tracker     *progress.Tracker
	completions repository.CompletionRepository
}

// NewPuzzleService creates a new PuzzleService
func NewPuzzleService(registry *puzzle.Registry, tracker *progress.Tracker, completions repository.CompletionRepository) PuzzleService {
	return &puzzleService{
		registry:    registry,
		tracker:     tracker,
		completions: completions,
	}
}

func (s *puzzleService) DailyPuzzle(ctx context.Context, date string, kind models.Kind) (*models.Puzzle, error) {
	log := logger.FromContext(ctx)
	log.Debug("generating daily puzzle: date=%s, kind=%s", date, kind)

	if date == "" {
		date = puzzle.Today()
	}

	p, err := s.registry.Daily(date, kind)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *puzzleService) SubmitAnswer(ctx context.Context, userID, date string, kind models.Kind, answer string, timeSpentSeconds int) (*SubmissionResult, error) {
	log := logger.FromContext(ctx)
	log.Debug("submitting answer: user_id=%s, date=%s, kind=%s", userID, date, kind)

	if userID == "" {
		return nil, errors.NewValidationError("userId", "must not be empty")
	}
	if date == "" {
		date = puzzle.Today()
	}

	p, err := s.registry.Daily(date, kind)
	if err != nil {
		return nil, err
	}

	result, err := s.registry.Validate(p, answer)
	if err != nil {
		return nil, err
	}

	prev, err := s.tracker.GetCompletion(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	attempts := 1
	if prev != nil {
		attempts = prev.Attempts + 1
	}
	wasCompleted := prev != nil && prev.IsCompleted

	score := 0
	if result.IsCorrect {
		score = p.Score
	}
	record := models.CompletionRecord{
		UserID:           userID,
		Date:             date,
		PuzzleID:         p.ID,
		IsCompleted:      result.IsCorrect || wasCompleted,
		Score:            score,
		TimeSpentSeconds: timeSpentSeconds,
		Attempts:         attempts,
		UpdatedAt:        time.Now().UTC(),
	}
	if wasCompleted && !result.IsCorrect {
		// A completed day stays completed; keep the recorded score.
		record.Score = prev.Score
	}

	prog, err := s.tracker.ApplyCompletion(ctx, record)
	if err != nil {
		return nil, err
	}

	out := &SubmissionResult{
		IsCorrect: result.IsCorrect,
		Feedback:  result.Feedback,
		Attempts:  attempts,
	}
	if record.IsCompleted {
		out.Progress = prog
	}
	log.Info("answer submitted: user_id=%s, date=%s, correct=%t, attempts=%d", userID, date, result.IsCorrect, attempts)
	return out, nil
}

func (s *puzzleService) GetProgress(ctx context.Context, userID string) (*models.UserProgress, error) {
	if userID == "" {
		return nil, errors.NewValidationError("userId", "must not be empty")
	}
	return s.tracker.GetProgress(ctx, userID)
}

func (s *puzzleService) ListCompletions(ctx context.Context, userID string, filter models.CompletionFilter) ([]models.CompletionRecord, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing completions: user_id=%s", userID)

	if userID == "" {
		return nil, errors.NewValidationError("userId", "must not be empty")
	}
	records, err := s.completions.ListByUser(ctx, userID, filter)
	if err != nil {
		log.Error("failed to list completions: %v", err)
		return nil, errors.NewStoreUnavailableError(err)
	}
	return records, nil
}
