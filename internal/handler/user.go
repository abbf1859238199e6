package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dishly/dishly/internal/handler/dto"
	"github.com/dishly/dishly/internal/service"
)

// UserHandler handles registration and login endpoints.
type UserHandler struct {
	svc    *service.UserService
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc *service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		svc:    svc,
		logger: logger,
	}
}

// Register handles POST /register.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	// Presence check happens before any store access.
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := h.svc.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			writeError(w, http.StatusBadRequest, "User already exists")
			return
		}
		h.logger.Error("register failed", slog.String("error", err.Error()))
		writeStoreError(w, http.StatusInternalServerError, "Error creating user", err)
		return
	}

	h.logger.Info("user_registered", slog.String("user_id", user.ID))

	writeJSON(w, http.StatusCreated, dto.RegisterResponse{
		Message: "User created successfully",
		User:    dto.ToUserResponse(user),
	})
}

// Login handles POST /login.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	token, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusBadRequest, "Invalid credentials")
			return
		}
		h.logger.Error("login failed", slog.String("error", err.Error()))
		writeStoreError(w, http.StatusInternalServerError, "Error logging in", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.LoginResponse{
		Message: "Login successful",
		Token:   token,
	})
}
