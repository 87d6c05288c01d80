package dto

import (
	"github.com/Sachin796/Worktopia/internal/core/domain"
)

// RegisterRequest defines data for creating an account.
type RegisterRequest struct {
	Username string          `json:"username" binding:"required,min=3,max=100"`
	Email    *string         `json:"email" binding:"omitempty,email"`
	Password string          `json:"password" binding:"required,min=6"`
	Name     string          `json:"name" binding:"required"`
	Role     domain.UserRole `json:"role" binding:"required,oneof=OWNER RENTER"`
}

// LoginRequest represents the login payload.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// GoogleLoginRequest carries a Google ID token obtained by the client.
type GoogleLoginRequest struct {
	IDToken string          `json:"idToken" binding:"required"`
	Role    domain.UserRole `json:"role" binding:"omitempty,oneof=OWNER RENTER"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token    string          `json:"token"`
	UserID   int64           `json:"userID"`
	UserRole domain.UserRole `json:"userRole"`
}

// UserResponse defines the user data returned by the API.
type UserResponse struct {
	UserID   int64           `json:"userID"`
	Username string          `json:"username"`
	Email    *string         `json:"email,omitempty"`
	Name     string          `json:"name"`
	Role     domain.UserRole `json:"role"`
}

// ToUserResponse converts a domain.User to a UserResponse DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:   u.UserID,
		Username: u.Username,
		Email:    u.Email,
		Name:     u.Name,
		Role:     u.Role,
	}
}
