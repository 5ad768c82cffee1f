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

type CompletionRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.CompletionRepository
}

func (s *CompletionRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewCompletionRepository(s.db)
}

func (s *CompletionRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *CompletionRepositorySuite) TestGet_Absent() {
	rec, err := s.repo.Get(context.Background(), "u1", "2024-01-01")
	s.Require().NoError(err)
	s.Nil(rec)
}

func (s *CompletionRepositorySuite) TestUpsertAndGet() {
	ctx := context.Background()

	rec := models.CompletionRecord{
		UserID:           "u1",
		Date:             "2024-01-01",
		PuzzleID:         "2024-01-01-arithmetic",
		IsCompleted:      true,
		Score:            10,
		TimeSpentSeconds: 42,
		Attempts:         2,
	}
	s.Require().NoError(s.repo.Upsert(ctx, rec))

	got, err := s.repo.Get(ctx, "u1", "2024-01-01")
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal("2024-01-01-arithmetic", got.PuzzleID)
	s.True(got.IsCompleted)
	s.Equal(10, got.Score)
	s.Equal(42, got.TimeSpentSeconds)
	s.Equal(2, got.Attempts)
	s.False(got.CreatedAt.IsZero())
}

func (s *CompletionRepositorySuite) TestUpsert_OverwritesNotAppends() {
	ctx := context.Background()

	rec := models.CompletionRecord{
		UserID:   "u1",
		Date:     "2024-01-01",
		PuzzleID: "2024-01-01-arithmetic",
		Score:    5,
		Attempts: 1,
	}
	s.Require().NoError(s.repo.Upsert(ctx, rec))

	rec.IsCompleted = true
	rec.Score = 10
	rec.Attempts = 2
	s.Require().NoError(s.repo.Upsert(ctx, rec))

	got, err := s.repo.Get(ctx, "u1", "2024-01-01")
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.True(got.IsCompleted)
	s.Equal(10, got.Score)
	s.Equal(2, got.Attempts)

	var count int
	err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM daily_completions WHERE user_id = ?`, "u1").Scan(&count)
	s.Require().NoError(err)
	s.Equal(1, count, "at most one record per (user, date)")
}

func (s *CompletionRepositorySuite) TestListByUser() {
	ctx := context.Background()

	for i, date := range []string{"2024-01-01", "2024-01-02", "2024-01-03"} {
		rec := models.CompletionRecord{
			UserID:      "u1",
			Date:        date,
			PuzzleID:    date + "-arithmetic",
			IsCompleted: i != 1,
			Score:       10,
			Attempts:    1,
		}
		s.Require().NoError(s.repo.Upsert(ctx, rec))
	}
	// Another user's record must not leak into the listing.
	s.Require().NoError(s.repo.Upsert(ctx, models.CompletionRecord{
		UserID: "u2", Date: "2024-01-01", IsCompleted: true,
	}))

	records, err := s.repo.ListByUser(ctx, "u1", models.CompletionFilter{})
	s.Require().NoError(err)
	s.Require().Len(records, 3)
	s.Equal("2024-01-03", records[0].Date, "newest first")

	completedOnly, err := s.repo.ListByUser(ctx, "u1", models.CompletionFilter{CompletedOnly: true})
	s.Require().NoError(err)
	s.Len(completedOnly, 2)

	byDate, err := s.repo.ListByUser(ctx, "u1", models.CompletionFilter{Date: "2024-01-02"})
	s.Require().NoError(err)
	s.Require().Len(byDate, 1)
	s.Equal("2024-01-02", byDate[0].Date)

	limited, err := s.repo.ListByUser(ctx, "u1", models.CompletionFilter{Limit: 2})
	s.Require().NoError(err)
	s.Len(limited, 2)
}

func TestCompletionRepositorySuite(t *testing.T) {
	suite.Run(t, new(CompletionRepositorySuite))
}
