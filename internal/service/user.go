// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/dishly/dishly/internal/auth"
	"github.com/dishly/dishly/internal/metrics"
	"github.com/dishly/dishly/internal/model"
	"github.com/dishly/dishly/internal/repository"
)

// User service errors.
var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserStore defines the persistence operations the user flows need.
// *repository.Repository satisfies it.
type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}

// UserService handles registration and login.
type UserService struct {
	store      UserStore
	tokens     *auth.TokenManager
	bcryptCost int
	metrics    metrics.Recorder
}

// NewUserService creates a new UserService.
func NewUserService(store UserStore, tokens *auth.TokenManager, bcryptCost int, recorder metrics.Recorder) *UserService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &UserService{
		store:      store,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		metrics:    recorder,
	}
}

// Register creates a new account for the given credentials.
// The email is checked for existence before insert; the store's unique
// index additionally maps a concurrent duplicate insert to ErrUserExists.
func (s *UserService) Register(ctx context.Context, email, password string) (*model.User, error) {
	_, err := s.store.GetUserByEmail(ctx, email)
	if err == nil {
		return nil, ErrUserExists
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:           ulid.Make().String(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.metrics.IncUserRegistered()

	return user, nil
}

// Login verifies the credentials and issues an access token.
// Unknown email, store failure, and password mismatch all produce
// ErrInvalidCredentials so callers cannot probe for account existence.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		s.metrics.IncLoginFailed()
		return "", ErrInvalidCredentials
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		s.metrics.IncLoginFailed()
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.metrics.IncLoginSucceeded()

	return token, nil
}
