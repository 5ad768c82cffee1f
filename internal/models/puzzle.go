package models

// Kind discriminates puzzle variants.
type Kind string

const (
	KindArithmetic         Kind = "arithmetic"
	KindWordScramble       Kind = "word_scramble"
	KindPatternRecognition Kind = "pattern_recognition"
	KindMemoryGrid         Kind = "memory_grid"
	KindLogicOrdering      Kind = "logic_ordering"
)

// Difficulty of a puzzle.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Puzzle is a tagged union over puzzle kinds: Kind selects which payload
// pointer is set, all others are nil. Puzzles are immutable once generated
// and are never persisted; generation is pure and deterministic per
// (date, kind), so a puzzle can be regenerated at will.
//
// Solution fields inside payloads are tagged `json:"-"` so a marshaled
// puzzle never leaks its answer to clients.
type Puzzle struct {
	ID          string     `json:"id"` // date + "-" + kind
	Kind        Kind       `json:"kind"`
	Date        string     `json:"date"` // YYYY-MM-DD
	Difficulty  Difficulty `json:"difficulty"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Rules       []string   `json:"rules"`
	Score       int        `json:"score"` // base points awarded on success

	Arithmetic    *ArithmeticPuzzle    `json:"arithmetic,omitempty"`
	WordScramble  *WordScramblePuzzle  `json:"word_scramble,omitempty"`
	Pattern       *PatternPuzzle       `json:"pattern,omitempty"`
	MemoryGrid    *MemoryGridPuzzle    `json:"memory_grid,omitempty"`
	LogicOrdering *LogicOrderingPuzzle `json:"logic_ordering,omitempty"`
}

// ArithmeticPuzzle asks for the result of a two-operand expression.
type ArithmeticPuzzle struct {
	Num1     int    `json:"num1"`
	Num2     int    `json:"num2"`
	Operator string `json:"operator"` // "+", "-" or "*"
	Result   int    `json:"-"`
}

// WordScramblePuzzle asks for the original word behind a scrambled one.
type WordScramblePuzzle struct {
	Scrambled string `json:"scrambled"`
	Hint      string `json:"hint"`
	Word      string `json:"-"`
}

// PatternPuzzle shows the first terms of a numeric sequence and asks for
// the next one.
type PatternPuzzle struct {
	Sequence []int `json:"sequence"`
	Answer   int   `json:"-"`
}

// MemoryGridPuzzle shows a grid of cells briefly; the player must recall
// which cells were marked. Cells are row-major; Targets holds the indices
// of marked cells.
type MemoryGridPuzzle struct {
	Size    int      `json:"size"`
	Cells   []string `json:"cells"`
	Targets []int    `json:"-"`
}

// LogicOrderingPuzzle shows items out of order; the player must restore
// the natural order.
type LogicOrderingPuzzle struct {
	Items  []string `json:"items"`
	Answer []string `json:"-"`
}

// ValidationResult is the outcome of checking a candidate answer.
type ValidationResult struct {
	IsCorrect bool   `json:"is_correct"`
	Feedback  string `json:"feedback"`
}
