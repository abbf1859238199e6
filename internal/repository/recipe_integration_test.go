//go:build integration

package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/dishly/dishly/internal/testutil"
)

func TestIntegrationRecipeRepository_CreateAndGet(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)

	owner := testutil.NewTestUser(t, "owner@example.com")
	if err := repo.CreateUser(ctx, owner); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	recipe := testutil.NewTestRecipe(t, owner.ID)
	if err := repo.CreateRecipe(ctx, recipe); err != nil {
		t.Fatalf("CreateRecipe failed: %v", err)
	}

	retrieved, err := repo.GetRecipeByID(ctx, recipe.ID)
	if err != nil {
		t.Fatalf("GetRecipeByID failed: %v", err)
	}

	if retrieved.Title != recipe.Title {
		t.Errorf("Title mismatch: got %q, want %q", retrieved.Title, recipe.Title)
	}
	if retrieved.AddedBy != owner.ID {
		t.Errorf("AddedBy mismatch: got %q, want %q", retrieved.AddedBy, owner.ID)
	}
	if retrieved.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestIntegrationRecipeRepository_GetByID_NotFound(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)

	_, err := repo.GetRecipeByID(ctx, "nonexistent-id")
	if !errors.Is(err, ErrRecipeNotFound) {
		t.Errorf("Expected ErrRecipeNotFound, got: %v", err)
	}
}

func TestIntegrationRecipeRepository_List_NewestFirst(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)

	owner := testutil.NewTestUser(t, "owner@example.com")
	if err := repo.CreateUser(ctx, owner); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	first := testutil.NewTestRecipe(t, owner.ID)
	first.Title = "First"
	second := testutil.NewTestRecipe(t, owner.ID)
	second.Title = "Second"
	second.CreatedAt = first.CreatedAt.Add(time.Second)

	if err := repo.CreateRecipe(ctx, first); err != nil {
		t.Fatalf("CreateRecipe (first) failed: %v", err)
	}
	if err := repo.CreateRecipe(ctx, second); err != nil {
		t.Fatalf("CreateRecipe (second) failed: %v", err)
	}

	recipes, err := repo.ListRecipes(ctx)
	if err != nil {
		t.Fatalf("ListRecipes failed: %v", err)
	}

	if len(recipes) != 2 {
		t.Fatalf("expected 2 recipes, got %d", len(recipes))
	}
	if recipes[0].Title != "Second" {
		t.Errorf("expected newest recipe first, got %q", recipes[0].Title)
	}
}

func TestIntegrationRecipeRepository_Update(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)

	owner := testutil.NewTestUser(t, "owner@example.com")
	if err := repo.CreateUser(ctx, owner); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	recipe := testutil.NewTestRecipe(t, owner.ID)
	if err := repo.CreateRecipe(ctx, recipe); err != nil {
		t.Fatalf("CreateRecipe failed: %v", err)
	}

	recipe.Title = "Updated Title"
	recipe.Category = "Soups"
	if err := repo.UpdateRecipe(ctx, recipe); err != nil {
		t.Fatalf("UpdateRecipe failed: %v", err)
	}

	retrieved, err := repo.GetRecipeByID(ctx, recipe.ID)
	if err != nil {
		t.Fatalf("GetRecipeByID failed: %v", err)
	}
	if retrieved.Title != "Updated Title" {
		t.Errorf("Title mismatch: got %q", retrieved.Title)
	}
	if retrieved.Category != "Soups" {
		t.Errorf("Category mismatch: got %q", retrieved.Category)
	}
}

func TestIntegrationRecipeRepository_Update_NotFound(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)

	recipe := testutil.NewTestRecipe(t, "no-such-user")
	recipe.ID = "nonexistent-id"

	err := repo.UpdateRecipe(ctx, recipe)
	if !errors.Is(err, ErrRecipeNotFound) {
		t.Errorf("Expected ErrRecipeNotFound, got: %v", err)
	}
}

func TestIntegrationRecipeRepository_Delete(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)

	owner := testutil.NewTestUser(t, "owner@example.com")
	if err := repo.CreateUser(ctx, owner); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	recipe := testutil.NewTestRecipe(t, owner.ID)
	if err := repo.CreateRecipe(ctx, recipe); err != nil {
		t.Fatalf("CreateRecipe failed: %v", err)
	}

	if err := repo.DeleteRecipe(ctx, recipe.ID); err != nil {
		t.Fatalf("DeleteRecipe failed: %v", err)
	}

	_, err := repo.GetRecipeByID(ctx, recipe.ID)
	if !errors.Is(err, ErrRecipeNotFound) {
		t.Errorf("Expected ErrRecipeNotFound after delete, got: %v", err)
	}
}

func TestIntegrationRecipeRepository_Delete_NotFound(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)

	err := repo.DeleteRecipe(ctx, "nonexistent-id")
	if !errors.Is(err, ErrRecipeNotFound) {
		t.Errorf("Expected ErrRecipeNotFound, got: %v", err)
	}
}
