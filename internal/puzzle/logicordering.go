package puzzle

import (
	"fmt"
	"strings"

	"github.com/nmoreira/puzzleday/internal/errors"
	"github.com/nmoreira/puzzleday/internal/models"
)

// Ordered sequences for the logic ordering puzzle. Like the scramble
// vocabulary, the order of this list is part of the generation contract.
var orderingSequences = [][]string{
	{"seed", "sprout", "sapling", "tree"},
	{"egg", "caterpillar", "chrysalis", "butterfly"},
	{"dawn", "noon", "dusk", "midnight"},
	{"spring", "summer", "autumn", "winter"},
	{"infant", "child", "teenager", "adult"},
	{"draft", "review", "revision", "publication"},
}

type logicOrderingGenerator struct{}

func (logicOrderingGenerator) Kind() models.Kind { return models.KindLogicOrdering }

func (logicOrderingGenerator) Generate(date string, seed int) (models.Puzzle, error) {
	r, err := NewRand(seed)
	if err != nil {
		return models.Puzzle{}, err
	}

	answer, err := Choice(r, orderingSequences)
	if err != nil {
		return models.Puzzle{}, err
	}
	items := Shuffle(r, answer)

	return models.Puzzle{
		ID:          puzzleID(date, models.KindLogicOrdering),
		Kind:        models.KindLogicOrdering,
		Date:        date,
		Difficulty:  models.DifficultyHard,
		Title:       "Logic Ordering",
		Description: "Put the items back in their natural order.",
		Rules: []string{
			"Every item appears exactly once.",
			"Enter the items comma-separated, first to last.",
		},
		Score: 20,
		LogicOrdering: &models.LogicOrderingPuzzle{
			Items:  items,
			Answer: answer,
		},
	}, nil
}

func (logicOrderingGenerator) Validate(p models.Puzzle, answer string) (models.ValidationResult, error) {
	if p.LogicOrdering == nil {
		return models.ValidationResult{}, errors.NewValidationError("puzzle", "missing logic ordering payload")
	}

	want := p.LogicOrdering.Answer
	got := strings.Split(answer, ",")
	correct := len(got) == len(want)
	if correct {
		for i := range want {
			if !strings.EqualFold(strings.TrimSpace(got[i]), want[i]) {
				correct = false
				break
			}
		}
	}

	if correct {
		return models.ValidationResult{IsCorrect: true, Feedback: "Correct!"}, nil
	}
	return models.ValidationResult{
		IsCorrect: false,
		Feedback:  fmt.Sprintf("The order was: %s.", strings.Join(want, ", ")),
	}, nil
}
