package dto

import "github.com/stgabriel-shg/shg_backend/internal/core/domain"

// LoginRequest is the credential payload for officer sign-in.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the API representation of an office holder.
type UserResponse struct {
	UserID string          `json:"userID"`
	Email  string          `json:"email"`
	Name   string          `json:"name"`
	Role   domain.UserRole `json:"role"`
}

// ToUserResponse converts a domain user to its API representation.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID: u.UserID,
		Email:  u.Email,
		Name:   u.Name,
		Role:   u.Role,
	}
}
