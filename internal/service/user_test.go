package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dishly/dishly/internal/auth"
	"github.com/dishly/dishly/internal/model"
	"github.com/dishly/dishly/internal/repository"
)

// fakeUserStore is an in-memory UserStore keyed by email.
type fakeUserStore struct {
	users     map[string]*model.User
	createErr error
	fetchErr  error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*model.User)}
}

func (f *fakeUserStore) CreateUser(_ context.Context, user *model.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.users[user.Email]; ok {
		return repository.ErrEmailExists
	}
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserStore) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	user, ok := f.users[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

func newUserService(store UserStore) *UserService {
	tokens := auth.NewTokenManager("test-secret", 2*time.Hour)
	return NewUserService(store, tokens, bcrypt.MinCost, nil)
}

func TestUserService_RegisterThenLogin(t *testing.T) {
	store := newFakeUserStore()
	svc := newUserService(store)
	ctx := context.Background()

	user, err := svc.Register(ctx, "a@b.com", "pw123456")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if user.ID == "" {
		t.Error("expected user ID to be assigned")
	}
	if user.Email != "a@b.com" {
		t.Errorf("expected email 'a@b.com', got %q", user.Email)
	}
	if user.PasswordHash == "pw123456" || user.PasswordHash == "" {
		t.Error("expected password to be stored as a hash")
	}

	token, err := svc.Login(ctx, "a@b.com", "pw123456")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	claims, err := auth.NewTokenManager("test-secret", 2*time.Hour).Verify(token)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("token UserID %q does not match registered id %q", claims.UserID, user.ID)
	}
	if claims.Email != "a@b.com" {
		t.Errorf("token Email %q does not match registered email", claims.Email)
	}
}

func TestUserService_RegisterDuplicate(t *testing.T) {
	store := newFakeUserStore()
	svc := newUserService(store)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "a@b.com", "pw123456"); err != nil {
		t.Fatalf("first Register error: %v", err)
	}

	_, err := svc.Register(ctx, "a@b.com", "other-password")
	if !errors.Is(err, ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserService_RegisterDuplicateRace(t *testing.T) {
	// The pre-check passes but the insert hits the unique index: the store
	// error maps to the same ErrUserExists as the pre-check path.
	store := newFakeUserStore()
	store.createErr = repository.ErrEmailExists
	svc := newUserService(store)

	_, err := svc.Register(context.Background(), "a@b.com", "pw123456")
	if !errors.Is(err, ErrUserExists) {
		t.Fatalf("expected ErrUserExists from insert race, got %v", err)
	}
}

func TestUserService_RegisterStoreError(t *testing.T) {
	store := newFakeUserStore()
	store.createErr = errors.New("connection reset")
	svc := newUserService(store)

	_, err := svc.Register(context.Background(), "a@b.com", "pw123456")
	if err == nil || errors.Is(err, ErrUserExists) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}

func TestUserService_LoginRejections(t *testing.T) {
	store := newFakeUserStore()
	svc := newUserService(store)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "a@b.com", "pw123456"); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "a@b.com", "wrong"},
		{"unknown email", "nobody@b.com", "pw123456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(ctx, tt.email, tt.password)
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestUserService_LoginStoreErrorIndistinguishable(t *testing.T) {
	store := newFakeUserStore()
	store.fetchErr = errors.New("connection reset")
	svc := newUserService(store)

	_, err := svc.Login(context.Background(), "a@b.com", "pw123456")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for store failure, got %v", err)
	}
}
