package dto

import (
	"time"

	"github.com/google/uuid"

	"majalahku_backend/internals/features/editorial/authors/model"
)

// ============================
// Response DTO
// ============================

type AuthorDTO struct {
	AuthorID          uuid.UUID `json:"author_id"`
	AuthorName        string    `json:"author_name"`
	AuthorEmail       string    `json:"author_email"`
	AuthorPhone       *string   `json:"author_phone,omitempty"`
	AuthorBio         *string   `json:"author_bio,omitempty"`
	AuthorSpecialties []string  `json:"author_specialties"`
	AuthorPhotoURL    *string   `json:"author_photo_url,omitempty"`
	AuthorIsActive    bool      `json:"author_is_active"`
	AuthorCreatedAt   time.Time `json:"author_created_at"`
	AuthorUpdatedAt   time.Time `json:"author_updated_at"`
}

// Per-status article counters for the detail endpoint.
type AuthorStatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type AuthorDetailDTO struct {
	AuthorDTO
	ArticleCounts []AuthorStatusCount `json:"article_counts"`
}

// ============================
// Create & Update Request DTO
// ============================

type CreateAuthorRequest struct {
	AuthorName        string   `json:"author_name" validate:"required,min=3,max=120"`
	AuthorEmail       string   `json:"author_email" validate:"required,email"`
	AuthorPhone       *string  `json:"author_phone" validate:"omitempty,max=32"`
	AuthorBio         *string  `json:"author_bio"`
	AuthorSpecialties []string `json:"author_specialties" validate:"omitempty,dive,min=2,max=40"`
}

type UpdateAuthorRequest struct {
	AuthorName        string   `json:"author_name" validate:"required,min=3,max=120"`
	AuthorEmail       string   `json:"author_email" validate:"required,email"`
	AuthorPhone       *string  `json:"author_phone" validate:"omitempty,max=32"`
	AuthorBio         *string  `json:"author_bio"`
	AuthorSpecialties []string `json:"author_specialties" validate:"omitempty,dive,min=2,max=40"`
	AuthorIsActive    *bool    `json:"author_is_active"`
}

// ============================
// Converter
// ============================

func ToAuthorDTO(m model.AuthorModel) AuthorDTO {
	return AuthorDTO{
		AuthorID:          m.AuthorID,
		AuthorName:        m.AuthorName,
		AuthorEmail:       m.AuthorEmail,
		AuthorPhone:       m.AuthorPhone,
		AuthorBio:         m.AuthorBio,
		AuthorSpecialties: m.AuthorSpecialties,
		AuthorPhotoURL:    m.AuthorPhotoURL,
		AuthorIsActive:    m.AuthorIsActive,
		AuthorCreatedAt:   m.AuthorCreatedAt,
		AuthorUpdatedAt:   m.AuthorUpdatedAt,
	}
}
