// Package testutil provides helpers for integration tests.
package testutil

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oklog/ulid/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/dishly/dishly/internal/model"
)

// RequireEnv returns an environment variable or skips the test if missing.
func RequireEnv(t testing.TB, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("%s not set", key)
	}
	return value
}

const advisoryLockID int64 = 730731

// AcquireDBLock grabs a global advisory lock to serialize DB tests.
func AcquireDBLock(ctx context.Context, pool *pgxpool.Pool) (func() error, error) {
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}

	if _, err := conn.Exec(ctx, "SELECT pg_advisory_lock($1)", advisoryLockID); err != nil {
		conn.Release()
		return nil, fmt.Errorf("acquire advisory lock: %w", err)
	}

	unlock := func() error {
		defer conn.Release()
		if _, err := conn.Exec(ctx, "SELECT pg_advisory_unlock($1)", advisoryLockID); err != nil {
			return fmt.Errorf("release advisory lock: %w", err)
		}
		return nil
	}

	return unlock, nil
}

// ResetTables empties the recipe and user tables between tests. Assumes
// migrations have already been applied against the test database.
func ResetTables(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, "TRUNCATE TABLE recipes, users CASCADE"); err != nil {
		return fmt.Errorf("truncate tables: %w", err)
	}
	return nil
}

// UniqueID returns a fresh ULID string.
func UniqueID() string {
	return ulid.Make().String()
}

// NewTestUser creates a test user with sensible defaults. The stored
// hash corresponds to the password "test-password".
func NewTestUser(t testing.TB, email string) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("test-password"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash test password: %v", err)
	}
	return &model.User{
		ID:           UniqueID(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
}

// NewTestRecipe creates a test recipe owned by the given user.
func NewTestRecipe(t testing.TB, ownerID string) *model.Recipe {
	t.Helper()
	return &model.Recipe{
		ID:           UniqueID(),
		Title:        "Test Recipe",
		Ingredients:  "flour, water, salt",
		Instructions: "mix and bake",
		Category:     model.DefaultCategory,
		AddedBy:      ownerID,
		CreatedAt:    time.Now().UTC(),
	}
}
