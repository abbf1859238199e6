package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dishly/dishly/internal/auth"
	"github.com/dishly/dishly/internal/handler/dto"
	"github.com/dishly/dishly/internal/service"
)

// RecipeHandler handles HTTP requests for recipe operations.
type RecipeHandler struct {
	svc    *service.RecipeService
	logger *slog.Logger
}

// NewRecipeHandler creates a new RecipeHandler.
func NewRecipeHandler(svc *service.RecipeService, logger *slog.Logger) *RecipeHandler {
	return &RecipeHandler{
		svc:    svc,
		logger: logger,
	}
}

// List handles GET /recipes. Unauthenticated; returns every recipe.
func (h *RecipeHandler) List(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.svc.List(r.Context())
	if err != nil {
		h.logger.Error("list recipes failed", slog.String("error", err.Error()))
		writeStoreError(w, http.StatusInternalServerError, "Error fetching recipes", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToRecipeListResponse(recipes))
}

// Get handles GET /recipes/{id}. Unauthenticated.
func (h *RecipeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	recipe, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			writeError(w, http.StatusNotFound, "Recipe not found")
			return
		}
		h.logger.Error("get recipe failed", slog.String("error", err.Error()))
		writeStoreError(w, http.StatusInternalServerError, "Error fetching recipe", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToRecipeResponse(recipe))
}

// Create handles POST /recipes. Requires an authenticated context.
func (h *RecipeHandler) Create(w http.ResponseWriter, r *http.Request) {
	authCtx := auth.AuthFromContext(r.Context())
	if authCtx == nil {
		writeError(w, http.StatusUnauthorized, "Access token missing")
		return
	}

	var req dto.CreateRecipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Title, ingredients, and instructions are required")
		return
	}

	recipe, err := h.svc.Create(r.Context(), service.CreateRecipeInput{
		Title:        req.Title,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		Category:     req.Category,
		OwnerID:      authCtx.UserID,
	})
	if err != nil {
		if errors.Is(err, service.ErrMissingRecipeFields) {
			writeError(w, http.StatusBadRequest, "Title, ingredients, and instructions are required")
			return
		}
		h.logger.Error("create recipe failed", slog.String("error", err.Error()))
		writeStoreError(w, http.StatusInternalServerError, "Error adding recipe", err)
		return
	}

	h.logger.Info("recipe_created",
		slog.String("recipe_id", recipe.ID),
		slog.String("user_id", authCtx.UserID),
	)

	writeJSON(w, http.StatusCreated, dto.RecipeEnvelope{
		Message: "Recipe added successfully",
		Recipe:  dto.ToRecipeResponse(recipe),
	})
}

// Update handles PUT /recipes/{id}. Requires an authenticated context;
// only the owner may update.
func (h *RecipeHandler) Update(w http.ResponseWriter, r *http.Request) {
	authCtx := auth.AuthFromContext(r.Context())
	if authCtx == nil {
		writeError(w, http.StatusUnauthorized, "Access token missing")
		return
	}

	id := chi.URLParam(r, "id")

	var req dto.UpdateRecipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	recipe, err := h.svc.Update(r.Context(), service.UpdateRecipeInput{
		ID:           id,
		RequesterID:  authCtx.UserID,
		Title:        req.Title,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		Category:     req.Category,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecipeNotFound):
			writeError(w, http.StatusNotFound, "Recipe not found")
		case errors.Is(err, service.ErrNotOwner):
			writeError(w, http.StatusForbidden, "You are not authorized to update this recipe")
		default:
			h.logger.Error("update recipe failed", slog.String("error", err.Error()))
			writeStoreError(w, http.StatusInternalServerError, "Error updating recipe", err)
		}
		return
	}

	h.logger.Info("recipe_updated",
		slog.String("recipe_id", recipe.ID),
		slog.String("user_id", authCtx.UserID),
	)

	writeJSON(w, http.StatusOK, dto.RecipeEnvelope{
		Message: "Recipe updated successfully",
		Recipe:  dto.ToRecipeResponse(recipe),
	})
}

// Delete handles DELETE /recipes/{id}. Requires an authenticated context;
// only the owner may delete.
func (h *RecipeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	authCtx := auth.AuthFromContext(r.Context())
	if authCtx == nil {
		writeError(w, http.StatusUnauthorized, "Access token missing")
		return
	}

	id := chi.URLParam(r, "id")

	if err := h.svc.Delete(r.Context(), id, authCtx.UserID); err != nil {
		switch {
		case errors.Is(err, service.ErrRecipeNotFound):
			writeError(w, http.StatusNotFound, "Recipe not found")
		case errors.Is(err, service.ErrNotOwner):
			writeError(w, http.StatusForbidden, "You are not authorized to delete this recipe")
		default:
			h.logger.Error("delete recipe failed", slog.String("error", err.Error()))
			writeStoreError(w, http.StatusInternalServerError, "Error deleting recipe", err)
		}
		return
	}

	h.logger.Info("recipe_deleted",
		slog.String("recipe_id", id),
		slog.String("user_id", authCtx.UserID),
	)

	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Recipe deleted successfully"})
}
