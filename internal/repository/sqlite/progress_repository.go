package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/nmoreira/puzzleday/internal/logger"
	"github.com/nmoreira/puzzleday/internal/models"
	"github.com/nmoreira/puzzleday/internal/repository"
)

type progressRepository struct {
	db *sql.DB
}

// NewProgressRepository creates a new ProgressRepository implementation
func NewProgressRepository(db *sql.DB) repository.ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) Get(ctx context.Context, userID string) (*models.UserProgress, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("getting progress: user_id=%s", userID)

	var p models.UserProgress
	err := r.db.QueryRowContext(ctx, `
SELECT user_id, current_streak, longest_streak, total_puzzles_solved, total_score, last_completed_date, updated_at
FROM user_progress
WHERE user_id = ?
`, userID).Scan(&p.UserID, &p.CurrentStreak, &p.LongestStreak, &p.TotalPuzzlesSolved, &p.TotalScore, &p.LastCompletedDate, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("progress not found: user_id=%s", userID)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get progress: %v", err)
		return nil, err
	}
	return &p, nil
}

func (r *progressRepository) Upsert(ctx context.Context, p models.UserProgress) error {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("upserting progress: user_id=%s, streak=%d, total_score=%d", p.UserID, p.CurrentStreak, p.TotalScore)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO user_progress (user_id, current_streak, longest_streak, total_puzzles_solved, total_score, last_completed_date)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT (user_id) DO UPDATE SET
    current_streak = excluded.current_streak,
    longest_streak = excluded.longest_streak,
    total_puzzles_solved = excluded.total_puzzles_solved,
    total_score = excluded.total_score,
    last_completed_date = excluded.last_completed_date,
    updated_at = CURRENT_TIMESTAMP
`, p.UserID, p.CurrentStreak, p.LongestStreak, p.TotalPuzzlesSolved, p.TotalScore, p.LastCompletedDate)
	if err != nil {
		log.Error("failed to upsert progress: %v", err)
	}
	return err
}
