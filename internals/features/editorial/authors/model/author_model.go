package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type AuthorModel struct {
	AuthorID    uuid.UUID `gorm:"column:author_id;type:uuid;default:gen_random_uuid();primaryKey" json:"author_id"`
	AuthorName  string    `gorm:"column:author_name;type:varchar(120);not null" json:"author_name"`
	AuthorEmail string    `gorm:"column:author_email;type:varchar(255);not null;uniqueIndex" json:"author_email"`

	AuthorPhone *string `gorm:"column:author_phone;type:varchar(32)" json:"author_phone,omitempty"`
	AuthorBio   *string `gorm:"column:author_bio;type:text" json:"author_bio,omitempty"`

	// e.g. {"food","travel","photography"}
	AuthorSpecialties pq.StringArray `gorm:"column:author_specialties;type:text[];not null;default:'{}'" json:"author_specialties"`

	AuthorPhotoURL *string `gorm:"column:author_photo_url;type:text" json:"author_photo_url,omitempty"`
	AuthorIsActive bool    `gorm:"column:author_is_active;not null;default:true" json:"author_is_active"`

	AuthorCreatedAt time.Time      `gorm:"column:author_created_at;autoCreateTime" json:"author_created_at"`
	AuthorUpdatedAt time.Time      `gorm:"column:author_updated_at;autoUpdateTime" json:"author_updated_at"`
	AuthorDeletedAt gorm.DeletedAt `gorm:"column:author_deleted_at;index" json:"author_deleted_at,omitempty"`
}

func (AuthorModel) TableName() string { return "authors" }
