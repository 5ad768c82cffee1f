package puzzle

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nmoreira/puzzleday/internal/errors"
	"github.com/nmoreira/puzzleday/internal/models"
)

type arithmeticGenerator struct{}

func (arithmeticGenerator) Kind() models.Kind { return models.KindArithmetic }

func (arithmeticGenerator) Generate(date string, seed int) (models.Puzzle, error) {
	r, err := NewRand(seed)
	if err != nil {
		return models.Puzzle{}, err
	}

	num1 := r.NextInt(1, 50)
	num2 := r.NextInt(1, 50)
	op, err := Choice(r, []string{"+", "-", "*"})
	if err != nil {
		return models.Puzzle{}, err
	}

	var result int
	switch op {
	case "+":
		result = num1 + num2
	case "-":
		result = num1 - num2
	case "*":
		result = num1 * num2
	}

	return models.Puzzle{
		ID:          puzzleID(date, models.KindArithmetic),
		Kind:        models.KindArithmetic,
		Date:        date,
		Difficulty:  models.DifficultyEasy,
		Title:       "Arithmetic Challenge",
		Description: fmt.Sprintf("What is %d %s %d?", num1, op, num2),
		Rules: []string{
			"Solve the expression using standard integer arithmetic.",
			"Enter the numeric result.",
		},
		Score: 10,
		Arithmetic: &models.ArithmeticPuzzle{
			Num1:     num1,
			Num2:     num2,
			Operator: op,
			Result:   result,
		},
	}, nil
}

func (arithmeticGenerator) Validate(p models.Puzzle, answer string) (models.ValidationResult, error) {
	if p.Arithmetic == nil {
		return models.ValidationResult{}, errors.NewValidationError("puzzle", "missing arithmetic payload")
	}

	n, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil || n != p.Arithmetic.Result {
		return models.ValidationResult{
			IsCorrect: false,
			Feedback:  fmt.Sprintf("The answer is %d.", p.Arithmetic.Result),
		}, nil
	}
	return models.ValidationResult{IsCorrect: true, Feedback: "Correct!"}, nil
}
