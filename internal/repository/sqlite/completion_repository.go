package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/nmoreira/puzzleday/internal/logger"
	"github.com/nmoreira/puzzleday/internal/models"
	"github.com/nmoreira/puzzleday/internal/repository"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

type completionRepository struct {
	db *sql.DB
}

// NewCompletionRepository creates a new CompletionRepository implementation
func NewCompletionRepository(db *sql.DB) repository.CompletionRepository {
	return &completionRepository{db: db}
}

func (r *completionRepository) Get(ctx context.Context, userID, date string) (*models.CompletionRecord, error) {
	log := logger.FromContext(ctx).WithPrefix("completion_repo")
	log.Debug("getting completion: user_id=%s, date=%s", userID, date)

	var rec models.CompletionRecord
	err := r.db.QueryRowContext(ctx, `
SELECT user_id, date, puzzle_id, is_completed, score, time_spent_seconds, attempts, created_at, updated_at
FROM daily_completions
WHERE user_id = ? AND date = ?
`, userID, date).Scan(&rec.UserID, &rec.Date, &rec.PuzzleID, &rec.IsCompleted, &rec.Score, &rec.TimeSpentSeconds, &rec.Attempts, &rec.CreatedAt, &rec.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("completion not found: user_id=%s, date=%s", userID, date)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get completion: %v", err)
		return nil, err
	}
	return &rec, nil
}

func (r *completionRepository) Upsert(ctx context.Context, rec models.CompletionRecord) error {
	log := logger.FromContext(ctx).WithPrefix("completion_repo")
	log.Debug("upserting completion: user_id=%s, date=%s, completed=%t", rec.UserID, rec.Date, rec.IsCompleted)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO daily_completions (user_id, date, puzzle_id, is_completed, score, time_spent_seconds, attempts)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (user_id, date) DO UPDATE SET
    puzzle_id = excluded.puzzle_id,
    is_completed = excluded.is_completed,
    score = excluded.score,
    time_spent_seconds = excluded.time_spent_seconds,
    attempts = excluded.attempts,
    updated_at = CURRENT_TIMESTAMP
`, rec.UserID, rec.Date, rec.PuzzleID, rec.IsCompleted, rec.Score, rec.TimeSpentSeconds, rec.Attempts)
	if err != nil {
		log.Error("failed to upsert completion: %v", err)
	}
	return err
}

func (r *completionRepository) ListByUser(ctx context.Context, userID string, filter models.CompletionFilter) ([]models.CompletionRecord, error) {
	log := logger.FromContext(ctx).WithPrefix("completion_repo")
	log.Debug("listing completions: user_id=%s, date=%s, completed_only=%t", userID, filter.Date, filter.CompletedOnly)

	query := sqlBuilder.
		Select("user_id", "date", "puzzle_id", "is_completed", "score", "time_spent_seconds", "attempts", "created_at", "updated_at").
		From("daily_completions").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("date DESC")

	if filter.Date != "" {
		query = query.Where(squirrel.Eq{"date": filter.Date})
	}
	if filter.CompletedOnly {
		query = query.Where(squirrel.Eq{"is_completed": true})
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query = query.Limit(uint64(limit))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to query completions: %v", err)
		return nil, err
	}
	defer rows.Close()

	var records []models.CompletionRecord
	for rows.Next() {
		var rec models.CompletionRecord
		if err := rows.Scan(&rec.UserID, &rec.Date, &rec.PuzzleID, &rec.IsCompleted, &rec.Score, &rec.TimeSpentSeconds, &rec.Attempts, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			log.Error("failed to scan completion row: %v", err)
			return nil, err
		}
		records = append(records, rec)
	}
	log.Debug("found %d completions", len(records))
	return records, rows.Err()
}
