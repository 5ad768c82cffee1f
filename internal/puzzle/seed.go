package puzzle

import (
	"time"

	"github.com/nmoreira/puzzleday/internal/errors"
)

// DateLayout is the canonical wire form for calendar dates.
const DateLayout = "2006-01-02"

// DailySeed derives the deterministic seed for a calendar date. The date's
// YYYYMMDD digits are read as an integer and pushed through one LCG step.
// Two distinct dates may collide into the same seed (the modulus has only
// 233280 buckets); callers rely on per-date determinism, never uniqueness.
func DailySeed(date string) (int, error) {
	t, err := ParseDate(date)
	if err != nil {
		return 0, err
	}
	n := int64(t.Year()*10000 + int(t.Month())*100 + t.Day())
	seed := (n*lcgMultiplier + lcgIncrement) % lcgModulus
	if seed < 0 {
		seed = -seed
	}
	return int(seed), nil
}

// ParseDate parses a YYYY-MM-DD string as a UTC calendar date.
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, errors.NewValidationError("date", "must be YYYY-MM-DD")
	}
	return t, nil
}

// Today returns the current UTC date in YYYY-MM-DD form.
func Today() string {
	return time.Now().UTC().Format(DateLayout)
}

// DaysBetween returns the signed number of calendar days from a to b.
// Positive when b is after a.
func DaysBetween(a, b string) (int, error) {
	ta, err := ParseDate(a)
	if err != nil {
		return 0, err
	}
	tb, err := ParseDate(b)
	if err != nil {
		return 0, err
	}
	return int(tb.Sub(ta).Hours() / 24), nil
}
