package puzzle

import (
	"fmt"
	"strings"

	"github.com/nmoreira/puzzleday/internal/errors"
	"github.com/nmoreira/puzzleday/internal/models"
)

// vocabulary for the word scramble. Order matters: Choice indexes into it
// deterministically, so reordering would change historical puzzles.
var scrambleWords = []string{
	"JAVASCRIPT",
	"TYPESCRIPT",
	"COMPONENT",
	"DATABASE",
	"ALGORITHM",
	"INTERFACE",
}

type wordScrambleGenerator struct{}

func (wordScrambleGenerator) Kind() models.Kind { return models.KindWordScramble }

func (wordScrambleGenerator) Generate(date string, seed int) (models.Puzzle, error) {
	r, err := NewRand(seed)
	if err != nil {
		return models.Puzzle{}, err
	}

	word, err := Choice(r, scrambleWords)
	if err != nil {
		return models.Puzzle{}, err
	}
	scrambled := string(Shuffle(r, []rune(word)))

	return models.Puzzle{
		ID:          puzzleID(date, models.KindWordScramble),
		Kind:        models.KindWordScramble,
		Date:        date,
		Difficulty:  models.DifficultyMedium,
		Title:       "Word Scramble",
		Description: "Unscramble the letters to reveal the hidden word.",
		Rules: []string{
			"Every letter must be used exactly once.",
			"Case does not matter.",
		},
		Score: 15,
		WordScramble: &models.WordScramblePuzzle{
			Scrambled: scrambled,
			Hint:      fmt.Sprintf("%d letters, starts with %q", len(word), string(word[0])),
			Word:      word,
		},
	}, nil
}

func (wordScrambleGenerator) Validate(p models.Puzzle, answer string) (models.ValidationResult, error) {
	if p.WordScramble == nil {
		return models.ValidationResult{}, errors.NewValidationError("puzzle", "missing word scramble payload")
	}

	if strings.EqualFold(strings.TrimSpace(answer), p.WordScramble.Word) {
		return models.ValidationResult{IsCorrect: true, Feedback: "Correct!"}, nil
	}
	return models.ValidationResult{
		IsCorrect: false,
		Feedback:  fmt.Sprintf("The word was %s.", p.WordScramble.Word),
	}, nil
}
