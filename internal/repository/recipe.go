package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dishly/dishly/internal/model"
)

// ErrRecipeNotFound is returned when no recipe matches the given ID.
var ErrRecipeNotFound = errors.New("recipe not found")

// CreateRecipe inserts a new recipe into the database.
func (r *Repository) CreateRecipe(ctx context.Context, recipe *model.Recipe) error {
	query := `
		INSERT INTO recipes (id, title, ingredients, instructions, category, added_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		recipe.ID,
		recipe.Title,
		recipe.Ingredients,
		recipe.Instructions,
		recipe.Category,
		recipe.AddedBy,
		recipe.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create recipe: %w", err)
	}

	return nil
}

// GetRecipeByID retrieves a recipe by its ID.
func (r *Repository) GetRecipeByID(ctx context.Context, id string) (*model.Recipe, error) {
	query := `
		SELECT id, title, ingredients, instructions, category, added_by, created_at
		FROM recipes
		WHERE id = $1
	`

	recipe, err := scanRecipe(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRecipeNotFound
		}
		return nil, fmt.Errorf("failed to get recipe by ID: %w", err)
	}

	return recipe, nil
}

// ListRecipes retrieves all recipes, newest first.
func (r *Repository) ListRecipes(ctx context.Context) ([]*model.Recipe, error) {
	query := `
		SELECT id, title, ingredients, instructions, category, added_by, created_at
		FROM recipes
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	defer rows.Close()

	var recipes []*model.Recipe
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recipe: %w", err)
		}
		recipes = append(recipes, recipe)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recipes: %w", err)
	}

	return recipes, nil
}

// UpdateRecipe updates a recipe's mutable fields.
// AddedBy and CreatedAt are never touched.
func (r *Repository) UpdateRecipe(ctx context.Context, recipe *model.Recipe) error {
	query := `
		UPDATE recipes
		SET title = $2, ingredients = $3, instructions = $4, category = $5
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		recipe.ID,
		recipe.Title,
		recipe.Ingredients,
		recipe.Instructions,
		recipe.Category,
	)

	if err != nil {
		return fmt.Errorf("failed to update recipe: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrRecipeNotFound
	}

	return nil
}

// DeleteRecipe removes a recipe by its ID.
func (r *Repository) DeleteRecipe(ctx context.Context, id string) error {
	query := `
		DELETE FROM recipes
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrRecipeNotFound
	}

	return nil
}

// scanRecipe scans a single row into a Recipe model.
func scanRecipe(row pgx.Row) (*model.Recipe, error) {
	var recipe model.Recipe
	err := row.Scan(
		&recipe.ID,
		&recipe.Title,
		&recipe.Ingredients,
		&recipe.Instructions,
		&recipe.Category,
		&recipe.AddedBy,
		&recipe.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}
