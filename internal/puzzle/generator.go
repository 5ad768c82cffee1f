package puzzle

import (
	"fmt"

	"github.com/nmoreira/puzzleday/internal/errors"
	"github.com/nmoreira/puzzleday/internal/models"
)

// Generator is one puzzle kind's generate/validate pair. Generate must be
// pure: the same (date, seed) returns a structurally identical puzzle on
// every call, with no I/O and no shared state. That purity is what lets
// every user receive the identical daily puzzle without server-side
// puzzle storage.
type Generator interface {
	Kind() models.Kind
	Generate(date string, seed int) (models.Puzzle, error)
	Validate(p models.Puzzle, answer string) (models.ValidationResult, error)
}

// Registry maps puzzle kinds to their generator/validator pairs. It is
// built once at startup; lookups never allocate.
type Registry struct {
	generators map[models.Kind]Generator
	kinds      []models.Kind // registration order, drives daily rotation
}

// NewRegistry returns a registry with all built-in puzzle kinds.
func NewRegistry() *Registry {
	r := &Registry{generators: make(map[models.Kind]Generator)}
	r.register(arithmeticGenerator{})
	r.register(wordScrambleGenerator{})
	r.register(patternGenerator{})
	r.register(memoryGridGenerator{})
	r.register(logicOrderingGenerator{})
	return r
}

func (r *Registry) register(g Generator) {
	r.generators[g.Kind()] = g
	r.kinds = append(r.kinds, g.Kind())
}

// Generator returns the generator for kind.
func (r *Registry) Generator(kind models.Kind) (Generator, error) {
	g, ok := r.generators[kind]
	if !ok {
		return nil, errors.NewUnknownPuzzleKindError(string(kind))
	}
	return g, nil
}

// Kinds returns the registered kinds in registration order.
func (r *Registry) Kinds() []models.Kind {
	return r.kinds
}

// Daily generates the puzzle for the given date. When kind is empty the
// kind itself rotates deterministically with the date, so all users see
// the same kind on the same day.
func (r *Registry) Daily(date string, kind models.Kind) (models.Puzzle, error) {
	seed, err := DailySeed(date)
	if err != nil {
		return models.Puzzle{}, err
	}
	if kind == "" {
		kind = r.kinds[seed%len(r.kinds)]
	}
	g, err := r.Generator(kind)
	if err != nil {
		return models.Puzzle{}, err
	}
	return g.Generate(date, seed)
}

// Validate checks answer against p using the generator registered for
// p.Kind.
func (r *Registry) Validate(p models.Puzzle, answer string) (models.ValidationResult, error) {
	g, err := r.Generator(p.Kind)
	if err != nil {
		return models.ValidationResult{}, err
	}
	return g.Validate(p, answer)
}

// puzzleID derives the stable identifier for a (date, kind) pair.
func puzzleID(date string, kind models.Kind) string {
	return fmt.Sprintf("%s-%s", date, kind)
}
