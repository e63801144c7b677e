package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID       uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	UserEmail    string    `gorm:"column:user_email;type:varchar(255);not null;uniqueIndex" json:"user_email"`
	UserFullName string    `gorm:"column:user_full_name;type:varchar(120);not null" json:"user_full_name"`

	// bcrypt hash; nullable for Google-only accounts
	UserPassword *string `gorm:"column:user_password;type:text" json:"-"`

	// owner | editor | contributor
	UserRole string `gorm:"column:user_role;type:varchar(20);not null;default:'contributor'" json:"user_role"`

	UserGoogleID *string `gorm:"column:user_google_id;type:varchar(64);uniqueIndex" json:"user_google_id,omitempty"`
	UserIsActive bool    `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }
