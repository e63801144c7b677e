package dto

import (
	"time"

	"github.com/google/uuid"

	"majalahku_backend/internals/features/users/auth/model"
)

// ============================
// Request DTO
// ============================

type RegisterRequest struct {
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserFullName string `json:"user_full_name" validate:"required,min=3,max=120"`
	UserPassword string `json:"user_password" validate:"required,min=8"`
}

type LoginRequest struct {
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// ============================
// Response DTO
// ============================

type UserDTO struct {
	UserID        uuid.UUID `json:"user_id"`
	UserEmail     string    `json:"user_email"`
	UserFullName  string    `json:"user_full_name"`
	UserRole      string    `json:"user_role"`
	UserIsActive  bool      `json:"user_is_active"`
	UserCreatedAt time.Time `json:"user_created_at"`
}

type LoginResponse struct {
	AccessToken  string  `json:"access_token"`
	RefreshToken string  `json:"refresh_token"`
	User         UserDTO `json:"user"`
}

// ============================
// Converter
// ============================

func ToUserDTO(m model.UserModel) UserDTO {
	return UserDTO{
		UserID:        m.UserID,
		UserEmail:     m.UserEmail,
		UserFullName:  m.UserFullName,
		UserRole:      m.UserRole,
		UserIsActive:  m.UserIsActive,
		UserCreatedAt: m.UserCreatedAt,
	}
}
