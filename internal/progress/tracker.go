package progress

import (
	"context"
	"sync"
	"time"

	"github.com/nmoreira/puzzleday/internal/errors"
	"github.com/nmoreira/puzzleday/internal/logger"
	"github.com/nmoreira/puzzleday/internal/models"
	"github.com/nmoreira/puzzleday/internal/puzzle"
	"github.com/nmoreira/puzzleday/internal/repository"
)

// Tracker is the streak state machine. All state lives in the persisted
// UserProgress snapshot, so any number of stateless instances can run
// concurrently for different users. For a single user the read-modify-write
// sequence is serialized by a per-user lock.
type Tracker struct {
	completions repository.CompletionRepository
	progress    repository.ProgressRepository

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewTracker creates a Tracker over the given stores.
func NewTracker(completions repository.CompletionRepository, progress repository.ProgressRepository) *Tracker {
	return &Tracker{
		completions: completions,
		progress:    progress,
		locks:       make(map[string]*sync.Mutex),
	}
}

func (t *Tracker) userLock(userID string) *sync.Mutex {
	t.mu.Lock()
	defer t.mu.Unlock()
	l, ok := t.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		t.locks[userID] = l
	}
	return l
}

// ApplyCompletion ingests a submission for (record.UserID, record.Date) and
// updates the user's streak, totals and completion record.
//
// Streak transitions happen only when the record is completed and the date
// was not already completed: a first-ever completion or a completion exactly
// one day after the last one extends the streak; a gap restarts it at 1.
// Re-submissions for an already-completed date are idempotent apart from the
// score delta. A completion dated before the last completed date is rejected
// and leaves everything unmodified.
func (t *Tracker) ApplyCompletion(ctx context.Context, record models.CompletionRecord) (*models.UserProgress, error) {
	log := logger.FromContext(ctx).WithPrefix("tracker")

	if _, err := puzzle.ParseDate(record.Date); err != nil {
		return nil, err
	}

	lock := t.userLock(record.UserID)
	lock.Lock()
	defer lock.Unlock()

	prev, err := t.completions.Get(ctx, record.UserID, record.Date)
	if err != nil {
		log.Error("failed to load completion record: %v", err)
		return nil, errors.NewStoreUnavailableError(err)
	}

	prog, err := t.progress.Get(ctx, record.UserID)
	if err != nil {
		log.Error("failed to load progress: %v", err)
		return nil, errors.NewStoreUnavailableError(err)
	}
	if prog == nil {
		prog = &models.UserProgress{UserID: record.UserID}
	}

	if !record.IsCompleted {
		// A failed or partial submission only updates the record, and a
		// date that was already completed stays completed.
		if prev != nil && prev.IsCompleted {
			log.Debug("ignoring non-completing re-submission: user=%s date=%s", record.UserID, record.Date)
			return prog, nil
		}
		if err := t.completions.Upsert(ctx, record); err != nil {
			log.Error("failed to upsert completion record: %v", err)
			return nil, errors.NewStoreUnavailableError(err)
		}
		return prog, nil
	}

	if prog.LastCompletedDate != "" {
		gap, err := puzzle.DaysBetween(prog.LastCompletedDate, record.Date)
		if err != nil {
			return nil, err
		}
		if gap < 0 {
			log.Warn("out-of-order completion rejected: user=%s date=%s last=%s", record.UserID, record.Date, prog.LastCompletedDate)
			return nil, errors.NewOutOfOrderCompletionError(prog.LastCompletedDate, record.Date)
		}

		alreadyCompleted := prev != nil && prev.IsCompleted
		if !alreadyCompleted {
			switch {
			case gap == 1:
				prog.CurrentStreak++
			case gap > 1:
				prog.CurrentStreak = 1
			}
			// gap == 0 leaves the streak untouched.
			prog.TotalPuzzlesSolved++
		}
	} else {
		// First ever completion.
		prog.CurrentStreak++
		prog.TotalPuzzlesSolved++
	}

	if prog.CurrentStreak > prog.LongestStreak {
		prog.LongestStreak = prog.CurrentStreak
	}

	// Score is applied once per (user, date): on re-submission only the
	// delta from the previously recorded score counts.
	previouslyApplied := 0
	if prev != nil && prev.IsCompleted {
		previouslyApplied = prev.Score
	}
	prog.TotalScore += record.Score - previouslyApplied

	prog.LastCompletedDate = record.Date
	prog.UpdatedAt = time.Now().UTC()

	if err := t.completions.Upsert(ctx, record); err != nil {
		log.Error("failed to upsert completion record: %v", err)
		return nil, errors.NewStoreUnavailableError(err)
	}
	if err := t.progress.Upsert(ctx, *prog); err != nil {
		log.Error("failed to upsert progress: %v", err)
		return nil, errors.NewStoreUnavailableError(err)
	}

	log.Info("completion applied: user=%s date=%s streak=%d total=%d", record.UserID, record.Date, prog.CurrentStreak, prog.TotalScore)
	return prog, nil
}

// GetProgress returns the user's snapshot, or a zero-valued one for users
// who have never completed a puzzle.
func (t *Tracker) GetProgress(ctx context.Context, userID string) (*models.UserProgress, error) {
	prog, err := t.progress.Get(ctx, userID)
	if err != nil {
		return nil, errors.NewStoreUnavailableError(err)
	}
	if prog == nil {
		return &models.UserProgress{UserID: userID}, nil
	}
	return prog, nil
}

// GetCompletion returns the record for (userID, date), or nil when absent.
func (t *Tracker) GetCompletion(ctx context.Context, userID, date string) (*models.CompletionRecord, error) {
	rec, err := t.completions.Get(ctx, userID, date)
	if err != nil {
		return nil, errors.NewStoreUnavailableError(err)
	}
	return rec, nil
}
