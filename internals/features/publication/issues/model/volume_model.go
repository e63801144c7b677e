package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VolumeModel struct {
	VolumeID     uuid.UUID `gorm:"column:volume_id;type:uuid;default:gen_random_uuid();primaryKey" json:"volume_id"`
	VolumeNumber int       `gorm:"column:volume_number;not null;uniqueIndex" json:"volume_number"`
	VolumeYear   int       `gorm:"column:volume_year;not null" json:"volume_year"`
	VolumeTheme  *string   `gorm:"column:volume_theme;type:varchar(255)" json:"volume_theme,omitempty"`

	VolumeCreatedAt time.Time      `gorm:"column:volume_created_at;autoCreateTime" json:"volume_created_at"`
	VolumeUpdatedAt time.Time      `gorm:"column:volume_updated_at;autoUpdateTime" json:"volume_updated_at"`
	VolumeDeletedAt gorm.DeletedAt `gorm:"column:volume_deleted_at;index" json:"volume_deleted_at,omitempty"`
}

func (VolumeModel) TableName() string { return "volumes" }
