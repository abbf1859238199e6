package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/dishly/dishly/internal/metrics"
	"github.com/dishly/dishly/internal/model"
	"github.com/dishly/dishly/internal/repository"
)

// Recipe service errors.
var (
	ErrRecipeNotFound      = errors.New("recipe not found")
	ErrNotOwner            = errors.New("not the recipe owner")
	ErrMissingRecipeFields = errors.New("title, ingredients, and instructions are required")
)

// RecipeStore defines the persistence operations the recipe flows need.
// *repository.Repository satisfies it.
type RecipeStore interface {
	CreateRecipe(ctx context.Context, recipe *model.Recipe) error
	GetRecipeByID(ctx context.Context, id string) (*model.Recipe, error)
	ListRecipes(ctx context.Context) ([]*model.Recipe, error)
	UpdateRecipe(ctx context.Context, recipe *model.Recipe) error
	DeleteRecipe(ctx context.Context, id string) error
}

// RecipeService handles recipe CRUD and ownership enforcement.
type RecipeService struct {
	store   RecipeStore
	metrics metrics.Recorder
}

// NewRecipeService creates a new RecipeService.
func NewRecipeService(store RecipeStore, recorder metrics.Recorder) *RecipeService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &RecipeService{
		store:   store,
		metrics: recorder,
	}
}

// CreateRecipeInput defines input for creating a recipe.
type CreateRecipeInput struct {
	Title        string
	Ingredients  string
	Instructions string
	Category     string
	OwnerID      string
}

// Create validates the input and inserts a new recipe owned by OwnerID.
// Category defaults to "Uncategorized" when absent.
func (s *RecipeService) Create(ctx context.Context, input CreateRecipeInput) (*model.Recipe, error) {
	if input.Title == "" || input.Ingredients == "" || input.Instructions == "" {
		return nil, ErrMissingRecipeFields
	}

	category := input.Category
	if category == "" {
		category = model.DefaultCategory
	}

	recipe := &model.Recipe{
		ID:           ulid.Make().String(),
		Title:        input.Title,
		Ingredients:  input.Ingredients,
		Instructions: input.Instructions,
		Category:     category,
		AddedBy:      input.OwnerID,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.store.CreateRecipe(ctx, recipe); err != nil {
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}

	s.metrics.IncRecipeCreated()

	return recipe, nil
}

// Get retrieves a recipe by ID.
func (s *RecipeService) Get(ctx context.Context, id string) (*model.Recipe, error) {
	recipe, err := s.store.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	return recipe, nil
}

// List retrieves all recipes.
func (s *RecipeService) List(ctx context.Context) ([]*model.Recipe, error) {
	return s.store.ListRecipes(ctx)
}

// UpdateRecipeInput defines input for updating a recipe.
// Empty fields retain the stored value; an update cannot clear a field
// to empty. That quirk is part of the API contract.
type UpdateRecipeInput struct {
	ID           string
	RequesterID  string
	Title        string
	Ingredients  string
	Instructions string
	Category     string
}

// Update merges the supplied fields over the existing recipe and persists it.
// The ownership check runs strictly before any mutation.
func (s *RecipeService) Update(ctx context.Context, input UpdateRecipeInput) (*model.Recipe, error) {
	recipe, err := s.store.GetRecipeByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	if recipe.AddedBy != input.RequesterID {
		return nil, ErrNotOwner
	}

	if input.Title != "" {
		recipe.Title = input.Title
	}
	if input.Ingredients != "" {
		recipe.Ingredients = input.Ingredients
	}
	if input.Instructions != "" {
		recipe.Instructions = input.Instructions
	}
	if input.Category != "" {
		recipe.Category = input.Category
	}

	if err := s.store.UpdateRecipe(ctx, recipe); err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	s.metrics.IncRecipeUpdated()

	return recipe, nil
}

// Delete removes a recipe after verifying the requester owns it.
func (s *RecipeService) Delete(ctx context.Context, id, requesterID string) error {
	recipe, err := s.store.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return ErrRecipeNotFound
		}
		return err
	}

	if recipe.AddedBy != requesterID {
		return ErrNotOwner
	}

	if err := s.store.DeleteRecipe(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return ErrRecipeNotFound
		}
		return err
	}

	s.metrics.IncRecipeDeleted()

	return nil
}
