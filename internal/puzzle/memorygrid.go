package puzzle

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/nmoreira/puzzleday/internal/errors"
	"github.com/nmoreira/puzzleday/internal/models"
)

const (
	gridSize    = 4
	gridTargets = 4
	markedCell  = "*"
	emptyCell   = "."
)

type memoryGridGenerator struct{}

func (memoryGridGenerator) Kind() models.Kind { return models.KindMemoryGrid }

func (memoryGridGenerator) Generate(date string, seed int) (models.Puzzle, error) {
	r, err := NewRand(seed)
	if err != nil {
		return models.Puzzle{}, err
	}

	// Shuffle all cell indices and take the first gridTargets as marked.
	indices := make([]int, gridSize*gridSize)
	for i := range indices {
		indices[i] = i
	}
	targets := Shuffle(r, indices)[:gridTargets]
	sort.Ints(targets)

	cells := make([]string, gridSize*gridSize)
	for i := range cells {
		cells[i] = emptyCell
	}
	for _, t := range targets {
		cells[t] = markedCell
	}

	return models.Puzzle{
		ID:          puzzleID(date, models.KindMemoryGrid),
		Kind:        models.KindMemoryGrid,
		Date:        date,
		Difficulty:  models.DifficultyHard,
		Title:       "Memory Grid",
		Description: fmt.Sprintf("Memorize the %d marked cells, then enter their positions.", gridTargets),
		Rules: []string{
			"Cells are numbered left to right, top to bottom, starting at 0.",
			"Enter the marked positions as comma-separated numbers, in any order.",
		},
		Score: 25,
		MemoryGrid: &models.MemoryGridPuzzle{
			Size:    gridSize,
			Cells:   cells,
			Targets: targets,
		},
	}, nil
}

func (memoryGridGenerator) Validate(p models.Puzzle, answer string) (models.ValidationResult, error) {
	if p.MemoryGrid == nil {
		return models.ValidationResult{}, errors.NewValidationError("puzzle", "missing memory grid payload")
	}

	want := make(map[int]bool, len(p.MemoryGrid.Targets))
	for _, t := range p.MemoryGrid.Targets {
		want[t] = true
	}

	got := make(map[int]bool)
	for _, part := range strings.Split(answer, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return wrongGrid(p), nil
		}
		got[n] = true
	}

	if len(got) != len(want) {
		return wrongGrid(p), nil
	}
	for t := range want {
		if !got[t] {
			return wrongGrid(p), nil
		}
	}
	return models.ValidationResult{IsCorrect: true, Feedback: "Correct!"}, nil
}

func wrongGrid(p models.Puzzle) models.ValidationResult {
	parts := make([]string, len(p.MemoryGrid.Targets))
	for i, t := range p.MemoryGrid.Targets {
		parts[i] = strconv.Itoa(t)
	}
	return models.ValidationResult{
		IsCorrect: false,
		Feedback:  fmt.Sprintf("The marked cells were %s.", strings.Join(parts, ", ")),
	}
}
