package services

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/nmoreira/puzzleday/internal/errors"
	"github.com/nmoreira/puzzleday/internal/logger"
	"github.com/nmoreira/puzzleday/internal/models"
	"github.com/nmoreira/puzzleday/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles signup, login and token verification
type AuthService interface {
	Signup(ctx context.Context, email, name, password string) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	Verify(tokenString string) (string, error)
}

type authService struct {
	users    repository.UserRepository
	secret   []byte
	tokenTTL time.Duration
}

// NewAuthService creates a new AuthService
func NewAuthService(users repository.UserRepository, secret string, tokenTTL time.Duration) AuthService {
	return &authService{
		users:    users,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
	}
}

func (s *authService) Signup(ctx context.Context, email, name, password string) (*models.User, string, error) {
	log := logger.FromContext(ctx)
	log.Debug("signing up user: email=%s", email)

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, "", errors.NewValidationError("email", "must be a valid email address")
	}
	if len(password) < 8 {
		return nil, "", errors.NewValidationError("password", "must be at least 8 characters")
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		log.Error("failed to check existing user: %v", err)
		return nil, "", errors.NewStoreUnavailableError(err)
	}
	if existing != nil {
		return nil, "", errors.NewValidationError("email", "already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("failed to hash password: %v", err)
		return nil, "", errors.NewInternalError(err)
	}

	user := models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         strings.TrimSpace(name),
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Insert(ctx, user); err != nil {
		log.Error("failed to insert user: %v", err)
		return nil, "", errors.NewStoreUnavailableError(err)
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, "", errors.NewInternalError(err)
	}

	log.Info("user signed up: id=%s", user.ID)
	return &user, token, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	log := logger.FromContext(ctx)
	log.Debug("logging in user: email=%s", email)

	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		log.Error("failed to load user: %v", err)
		return nil, "", errors.NewStoreUnavailableError(err)
	}
	if user == nil {
		return nil, "", errors.NewUnauthorizedError("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Warn("invalid password: email=%s", email)
		return nil, "", errors.NewUnauthorizedError("invalid email or password")
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, "", errors.NewInternalError(err)
	}

	log.Info("user logged in: id=%s", user.ID)
	return user, token, nil
}

func (s *authService) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.NewUnauthorizedError("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", errors.NewUnauthorizedError("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.NewUnauthorizedError("invalid token claims")
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", errors.NewUnauthorizedError("token missing subject")
	}
	return sub, nil
}

func (s *authService) issueToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"exp": now.Add(s.tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
