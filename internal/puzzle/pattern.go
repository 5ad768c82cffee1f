package puzzle

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nmoreira/puzzleday/internal/errors"
	"github.com/nmoreira/puzzleday/internal/models"
)

const patternLength = 5

type patternGenerator struct{}

func (patternGenerator) Kind() models.Kind { return models.KindPatternRecognition }

func (patternGenerator) Generate(date string, seed int) (models.Puzzle, error) {
	r, err := NewRand(seed)
	if err != nil {
		return models.Puzzle{}, err
	}

	rule, err := Choice(r, []string{"add", "multiply"})
	if err != nil {
		return models.Puzzle{}, err
	}

	var start, step int
	switch rule {
	case "add":
		start = r.NextInt(1, 10)
		step = r.NextInt(2, 9)
	case "multiply":
		start = r.NextInt(1, 5)
		step = r.NextInt(2, 4)
	}

	seq := make([]int, patternLength)
	seq[0] = start
	for i := 1; i < patternLength; i++ {
		if rule == "add" {
			seq[i] = seq[i-1] + step
		} else {
			seq[i] = seq[i-1] * step
		}
	}

	answer := seq[patternLength-1] + step
	if rule == "multiply" {
		answer = seq[patternLength-1] * step
	}

	return models.Puzzle{
		ID:          puzzleID(date, models.KindPatternRecognition),
		Kind:        models.KindPatternRecognition,
		Date:        date,
		Difficulty:  models.DifficultyMedium,
		Title:       "Pattern Recognition",
		Description: "What number comes next in the sequence?",
		Rules: []string{
			"The sequence follows a single consistent rule.",
			"Enter the next term as a number.",
		},
		Score: 20,
		Pattern: &models.PatternPuzzle{
			Sequence: seq,
			Answer:   answer,
		},
	}, nil
}

func (patternGenerator) Validate(p models.Puzzle, answer string) (models.ValidationResult, error) {
	if p.Pattern == nil {
		return models.ValidationResult{}, errors.NewValidationError("puzzle", "missing pattern payload")
	}

	n, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil || n != p.Pattern.Answer {
		return models.ValidationResult{
			IsCorrect: false,
			Feedback:  fmt.Sprintf("The next term is %d.", p.Pattern.Answer),
		}, nil
	}
	return models.ValidationResult{IsCorrect: true, Feedback: "Correct!"}, nil
}
