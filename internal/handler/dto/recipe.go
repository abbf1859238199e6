package dto

import (
	"time"

	"github.com/dishly/dishly/internal/model"
)

// CreateRecipeRequest represents the request body for POST /recipes.
type CreateRecipeRequest struct {
	Title        string `json:"title"`
	Ingredients  string `json:"ingredients"`
	Instructions string `json:"instructions"`
	Category     string `json:"category,omitempty"`
}

// UpdateRecipeRequest represents the request body for PUT /recipes/{id}.
// All fields are optional; empty values keep the stored ones.
type UpdateRecipeRequest struct {
	Title        string `json:"title,omitempty"`
	Ingredients  string `json:"ingredients,omitempty"`
	Instructions string `json:"instructions,omitempty"`
	Category     string `json:"category,omitempty"`
}

// RecipeResponse represents a recipe in API responses.
type RecipeResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Ingredients  string    `json:"ingredients"`
	Instructions string    `json:"instructions"`
	Category     string    `json:"category"`
	AddedBy      string    `json:"added_by"`
	CreatedAt    time.Time `json:"created_at"`
}

// RecipeEnvelope wraps a recipe with an operation message.
type RecipeEnvelope struct {
	Message string         `json:"message"`
	Recipe  RecipeResponse `json:"recipe"`
}

// MessageResponse is a bare confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ToRecipeResponse converts a Recipe model to RecipeResponse.
func ToRecipeResponse(recipe *model.Recipe) RecipeResponse {
	return RecipeResponse{
		ID:           recipe.ID,
		Title:        recipe.Title,
		Ingredients:  recipe.Ingredients,
		Instructions: recipe.Instructions,
		Category:     recipe.Category,
		AddedBy:      recipe.AddedBy,
		CreatedAt:    recipe.CreatedAt,
	}
}

// ToRecipeListResponse converts a slice of Recipe models to response form.
func ToRecipeListResponse(recipes []*model.Recipe) []RecipeResponse {
	responses := make([]RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		responses = append(responses, ToRecipeResponse(recipe))
	}
	return responses
}
