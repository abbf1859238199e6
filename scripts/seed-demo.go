package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/dishly/dishly/internal/auth"
	"github.com/dishly/dishly/internal/model"
	"github.com/dishly/dishly/internal/repository"
)

type output struct {
	UserID   string   `json:"user_id"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Recipes  []string `json:"recipe_ids"`
}

var demoRecipes = []struct {
	title        string
	ingredients  string
	instructions string
	category     string
}{
	{
		title:        "Pho Bo",
		ingredients:  "beef bones, rice noodles, star anise, ginger, fish sauce",
		instructions: "Simmer the bones for six hours, strain, season, pour over noodles.",
		category:     "Soups",
	},
	{
		title:        "Shakshuka",
		ingredients:  "eggs, tomatoes, bell pepper, cumin, paprika",
		instructions: "Cook the sauce, crack the eggs in, cover until just set.",
		category:     "Breakfast",
	},
	{
		title:        "Focaccia",
		ingredients:  "flour, water, yeast, olive oil, rosemary",
		instructions: "Mix a wet dough, fold twice, proof overnight, bake at 230C.",
		category:     "Baking",
	},
}

func main() {
	var (
		databaseURL = flag.String("database-url", os.Getenv("DATABASE_URL"), "PostgreSQL connection string")
		email       = flag.String("email", "demo@dishly.local", "Demo account email")
		password    = flag.String("password", "demo-password", "Demo account password")
		format      = flag.String("format", "plain", "Output format: plain or json")
	)
	flag.Parse()

	if *databaseURL == "" {
		fmt.Fprintln(os.Stderr, "DATABASE_URL is required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := repository.RunMigrations(ctx, *databaseURL); err != nil {
		fmt.Fprintln(os.Stderr, "run migrations:", err)
		os.Exit(1)
	}

	repo, err := repository.New(ctx, *databaseURL)
	if err != nil {
		fmt.Fprintln(os.Stderr, "connect database:", err)
		os.Exit(1)
	}
	defer repo.Close()

	hash, err := auth.HashPassword(*password, auth.DefaultBcryptCost)
	if err != nil {
		fmt.Fprintln(os.Stderr, "hash password:", err)
		os.Exit(1)
	}

	user := &model.User{
		ID:           ulid.Make().String(),
		Email:        *email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := repo.CreateUser(ctx, user); err != nil {
		if existing, lookupErr := repo.GetUserByEmail(ctx, *email); lookupErr == nil {
			user = existing
		} else {
			fmt.Fprintln(os.Stderr, "create user:", err)
			os.Exit(1)
		}
	}

	recipeIDs := make([]string, 0, len(demoRecipes))
	for _, seed := range demoRecipes {
		recipe := &model.Recipe{
			ID:           ulid.Make().String(),
			Title:        seed.title,
			Ingredients:  seed.ingredients,
			Instructions: seed.instructions,
			Category:     seed.category,
			AddedBy:      user.ID,
			CreatedAt:    time.Now().UTC(),
		}
		if err := repo.CreateRecipe(ctx, recipe); err != nil {
			fmt.Fprintln(os.Stderr, "create recipe:", err)
			os.Exit(1)
		}
		recipeIDs = append(recipeIDs, recipe.ID)
	}

	out := output{
		UserID:   user.ID,
		Email:    *email,
		Password: *password,
		Recipes:  recipeIDs,
	}

	switch strings.ToLower(*format) {
	case "plain":
		fmt.Printf("user %s (%s) seeded with %d recipes\n", out.Email, out.UserID, len(out.Recipes))
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(out)
	default:
		fmt.Fprintln(os.Stderr, "invalid format; use plain or json")
		os.Exit(1)
	}
}
