package services_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/nmoreira/puzzleday/internal/models"
	"github.com/nmoreira/puzzleday/internal/progress"
	"github.com/nmoreira/puzzleday/internal/puzzle"
	"github.com/nmoreira/puzzleday/internal/repository/sqlite"
	"github.com/nmoreira/puzzleday/internal/services"
	"github.com/nmoreira/puzzleday/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPuzzleService(t *testing.T) services.PuzzleService {
	db := testutil.NewTestDB(t)
	t.Cleanup(func() { testutil.MustClose(t, db) })

	completions := sqlite.NewCompletionRepository(db)
	snapshots := sqlite.NewProgressRepository(db)
	tracker := progress.NewTracker(completions, snapshots)
	return services.NewPuzzleService(puzzle.NewRegistry(), tracker, completions)
}

func TestDailyPuzzle_SameForAllCallers(t *testing.T) {
	svc := newPuzzleService(t)
	ctx := context.Background()

	a, err := svc.DailyPuzzle(ctx, "2024-03-15", models.KindArithmetic)
	require.NoError(t, err)
	b, err := svc.DailyPuzzle(ctx, "2024-03-15", models.KindArithmetic)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, "2024-03-15-arithmetic", a.ID)
}

func TestDailyPuzzle_UnknownKind(t *testing.T) {
	svc := newPuzzleService(t)

	_, err := svc.DailyPuzzle(context.Background(), "2024-03-15", "crossword")
	assert.Error(t, err)
}

func TestSubmitAnswer_CorrectCompletesDay(t *testing.T) {
	svc := newPuzzleService(t)
	ctx := context.Background()

	p, err := svc.DailyPuzzle(ctx, "2024-03-15", models.KindWordScramble)
	require.NoError(t, err)

	res, err := svc.SubmitAnswer(ctx, "u1", "2024-03-15", models.KindWordScramble, p.WordScramble.Word, 30)
	require.NoError(t, err)

	assert.True(t, res.IsCorrect)
	assert.Equal(t, 1, res.Attempts)
	require.NotNil(t, res.Progress)
	assert.Equal(t, 1, res.Progress.CurrentStreak)
	assert.Equal(t, p.Score, res.Progress.TotalScore)
}

func TestSubmitAnswer_WrongCountsAttempt(t *testing.T) {
	svc := newPuzzleService(t)
	ctx := context.Background()

	res, err := svc.SubmitAnswer(ctx, "u1", "2024-03-15", models.KindWordScramble, "nope", 10)
	require.NoError(t, err)
	assert.False(t, res.IsCorrect)
	assert.Equal(t, 1, res.Attempts)
	assert.Nil(t, res.Progress)

	res, err = svc.SubmitAnswer(ctx, "u1", "2024-03-15", models.KindWordScramble, "still nope", 20)
	require.NoError(t, err)
	assert.False(t, res.IsCorrect)
	assert.Equal(t, 2, res.Attempts)

	// Failed attempts never touch progress.
	prog, err := svc.GetProgress(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 0, prog.CurrentStreak)
	assert.Equal(t, 0, prog.TotalScore)
}

func TestSubmitAnswer_WrongAfterCorrectKeepsCompletion(t *testing.T) {
	svc := newPuzzleService(t)
	ctx := context.Background()

	p, err := svc.DailyPuzzle(ctx, "2024-03-15", models.KindWordScramble)
	require.NoError(t, err)

	_, err = svc.SubmitAnswer(ctx, "u1", "2024-03-15", models.KindWordScramble, p.WordScramble.Word, 30)
	require.NoError(t, err)

	res, err := svc.SubmitAnswer(ctx, "u1", "2024-03-15", models.KindWordScramble, "wrong", 5)
	require.NoError(t, err)
	assert.False(t, res.IsCorrect)

	prog, err := svc.GetProgress(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, prog.CurrentStreak)
	assert.Equal(t, p.Score, prog.TotalScore, "score is not lost on a later wrong submission")
}

func TestSubmitAnswer_IdempotentResubmission(t *testing.T) {
	svc := newPuzzleService(t)
	ctx := context.Background()

	p, err := svc.DailyPuzzle(ctx, "2024-03-15", models.KindWordScramble)
	require.NoError(t, err)

	first, err := svc.SubmitAnswer(ctx, "u1", "2024-03-15", models.KindWordScramble, p.WordScramble.Word, 30)
	require.NoError(t, err)
	second, err := svc.SubmitAnswer(ctx, "u1", "2024-03-15", models.KindWordScramble, p.WordScramble.Word, 25)
	require.NoError(t, err)

	assert.Equal(t, first.Progress.CurrentStreak, second.Progress.CurrentStreak)
	assert.Equal(t, first.Progress.TotalPuzzlesSolved, second.Progress.TotalPuzzlesSolved)
	assert.Equal(t, first.Progress.TotalScore, second.Progress.TotalScore)
	assert.Equal(t, 2, second.Attempts)
}

func TestSubmitAnswer_StreakAcrossDays(t *testing.T) {
	svc := newPuzzleService(t)
	ctx := context.Background()

	for _, date := range []string{"2024-01-01", "2024-01-02", "2024-01-03"} {
		p, err := svc.DailyPuzzle(ctx, date, models.KindArithmetic)
		require.NoError(t, err)

		res, err := svc.SubmitAnswer(ctx, "u1", date, models.KindArithmetic, arithmeticAnswer(p), 15)
		require.NoError(t, err)
		require.True(t, res.IsCorrect)
	}

	prog, err := svc.GetProgress(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 3, prog.CurrentStreak)
	assert.Equal(t, 3, prog.TotalPuzzlesSolved)
}

func TestSubmitAnswer_MissingUser(t *testing.T) {
	svc := newPuzzleService(t)

	_, err := svc.SubmitAnswer(context.Background(), "", "2024-03-15", models.KindArithmetic, "1", 0)
	assert.Error(t, err)
}

func TestListCompletions(t *testing.T) {
	svc := newPuzzleService(t)
	ctx := context.Background()

	for _, date := range []string{"2024-01-01", "2024-01-02"} {
		p, err := svc.DailyPuzzle(ctx, date, models.KindArithmetic)
		require.NoError(t, err)
		_, err = svc.SubmitAnswer(ctx, "u1", date, models.KindArithmetic, arithmeticAnswer(p), 15)
		require.NoError(t, err)
	}

	records, err := svc.ListCompletions(ctx, "u1", models.CompletionFilter{})
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func arithmeticAnswer(p *models.Puzzle) string {
	switch p.Arithmetic.Operator {
	case "+":
		return strconv.Itoa(p.Arithmetic.Num1 + p.Arithmetic.Num2)
	case "-":
		return strconv.Itoa(p.Arithmetic.Num1 - p.Arithmetic.Num2)
	default:
		return strconv.Itoa(p.Arithmetic.Num1 * p.Arithmetic.Num2)
	}
}
