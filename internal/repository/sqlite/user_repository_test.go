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

type UserRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.UserRepository
}

func (s *UserRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewUserRepository(s.db)
}

func (s *UserRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *UserRepositorySuite) TestInsertAndGet() {
	ctx := context.Background()

	u := models.User{
		ID:           "user-1",
		Email:        "ada@example.com",
		Name:         "Ada",
		PasswordHash: "$2a$10$hash",
	}
	s.Require().NoError(s.repo.Insert(ctx, u))

	byEmail, err := s.repo.GetByEmail(ctx, "ada@example.com")
	s.Require().NoError(err)
	s.Require().NotNil(byEmail)
	s.Equal("user-1", byEmail.ID)
	s.Equal("Ada", byEmail.Name)
	s.Equal("$2a$10$hash", byEmail.PasswordHash)

	byID, err := s.repo.GetByID(ctx, "user-1")
	s.Require().NoError(err)
	s.Require().NotNil(byID)
	s.Equal("ada@example.com", byID.Email)
}

func (s *UserRepositorySuite) TestGet_Absent() {
	ctx := context.Background()

	u, err := s.repo.GetByEmail(ctx, "nobody@example.com")
	s.Require().NoError(err)
	s.Nil(u)

	u, err = s.repo.GetByID(ctx, "missing")
	s.Require().NoError(err)
	s.Nil(u)
}

func (s *UserRepositorySuite) TestInsert_DuplicateEmail() {
	ctx := context.Background()

	u := models.User{ID: "user-1", Email: "ada@example.com", PasswordHash: "h"}
	s.Require().NoError(s.repo.Insert(ctx, u))

	dup := models.User{ID: "user-2", Email: "ada@example.com", PasswordHash: "h"}
	s.Error(s.repo.Insert(ctx, dup))
}

func TestUserRepositorySuite(t *testing.T) {
	suite.Run(t, new(UserRepositorySuite))
}
