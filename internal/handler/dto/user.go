// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import "github.com/dishly/dishly/internal/model"

// RegisterRequest represents the request body for POST /register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the request body for POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse represents a user in API responses.
// Only the public identity fields; never the password hash.
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// RegisterResponse represents the body returned for a successful registration.
type RegisterResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// LoginResponse represents the body returned for a successful login.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// ErrorResponse represents an API error.
// Error carries the underlying store message when one exists.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// ToUserResponse converts a User model to UserResponse.
func ToUserResponse(user *model.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Email: user.Email,
	}
}
