package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/nmoreira/puzzleday/internal/models"
	"github.com/nmoreira/puzzleday/internal/repository"
	"github.com/nmoreira/puzzleday/internal/repository/sqlite"
	"github.com/nmoreira/puzzleday/internal/testutil"
	"github.com/stretchr/testify/suite"
)

type ProgressRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.ProgressRepository
}

func (s *ProgressRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewProgressRepository(s.db)
}

func (s *ProgressRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *ProgressRepositorySuite) TestGet_Absent() {
	p, err := s.repo.Get(context.Background(), "u1")
	s.Require().NoError(err)
	s.Nil(p)
}

func (s *ProgressRepositorySuite) TestUpsertAndGet() {
	ctx := context.Background()

	p := models.UserProgress{
		UserID:             "u1",
		CurrentStreak:      3,
		LongestStreak:      5,
		TotalPuzzlesSolved: 12,
		TotalScore:         130,
		LastCompletedDate:  "2024-01-03",
	}
	s.Require().NoError(s.repo.Upsert(ctx, p))

	got, err := s.repo.Get(ctx, "u1")
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal(3, got.CurrentStreak)
	s.Equal(5, got.LongestStreak)
	s.Equal(12, got.TotalPuzzlesSolved)
	s.Equal(130, got.TotalScore)
	s.Equal("2024-01-03", got.LastCompletedDate)
}

func (s *ProgressRepositorySuite) TestUpsert_Idempotent() {
	ctx := context.Background()

	p := models.UserProgress{UserID: "u1", CurrentStreak: 1, LongestStreak: 1, TotalPuzzlesSolved: 1, TotalScore: 10, LastCompletedDate: "2024-01-01"}
	s.Require().NoError(s.repo.Upsert(ctx, p))

	p.CurrentStreak = 2
	p.LongestStreak = 2
	p.TotalPuzzlesSolved = 2
	p.TotalScore = 20
	p.LastCompletedDate = "2024-01-02"
	s.Require().NoError(s.repo.Upsert(ctx, p))

	got, err := s.repo.Get(ctx, "u1")
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal(2, got.CurrentStreak)
	s.Equal(20, got.TotalScore)

	var count int
	err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM user_progress`).Scan(&count)
	s.Require().NoError(err)
	s.Equal(1, count)
}

func TestProgressRepositorySuite(t *testing.T) {
	suite.Run(t, new(ProgressRepositorySuite))
}
