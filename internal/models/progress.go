package models

import "time"

// CompletionRecord is the per-(user, date) submission record. Repeated
// submissions for the same day overwrite the previous record, never append.
type CompletionRecord struct {
	UserID           string    `json:"user_id"`
	Date             string    `json:"date"` // YYYY-MM-DD
	PuzzleID         string    `json:"puzzle_id"`
	IsCompleted      bool      `json:"is_completed"`
	Score            int       `json:"score"`
	TimeSpentSeconds int       `json:"time_spent_seconds"`
	Attempts         int       `json:"attempts"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// UserProgress is the per-user streak and score snapshot. It is the only
// state the streak machine needs; there is no in-memory session state.
type UserProgress struct {
	UserID             string    `json:"user_id"`
	CurrentStreak      int       `json:"current_streak"`
	LongestStreak      int       `json:"longest_streak"`
	TotalPuzzlesSolved int       `json:"total_puzzles_solved"`
	TotalScore         int       `json:"total_score"`
	LastCompletedDate  string    `json:"last_completed_date,omitempty"` // empty when never completed
	UpdatedAt          time.Time `json:"updated_at"`
}

// CompletionFilter narrows completion listings.
type CompletionFilter struct {
	Date          string // exact date, optional
	CompletedOnly bool
	Limit         int
}
