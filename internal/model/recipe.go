package model

import "time"

// DefaultCategory is assigned when a recipe is created without a category.
const DefaultCategory = "Uncategorized"

// Recipe represents a recipe record.
// AddedBy is the ID of the creating user and is immutable once set;
// only that user may update or delete the recipe.
type Recipe struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Ingredients  string    `json:"ingredients"`
	Instructions string    `json:"instructions"`
	Category     string    `json:"category"`
	AddedBy      string    `json:"added_by"`
	CreatedAt    time.Time `json:"created_at"`
}
