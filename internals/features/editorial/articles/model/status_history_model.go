package model

import (
	"time"

	"github.com/google/uuid"
)

// One row per applied status transition (audit trail).
type StatusHistoryModel struct {
	StatusHistoryID        uuid.UUID `gorm:"column:status_history_id;type:uuid;default:gen_random_uuid();primaryKey" json:"status_history_id"`
	StatusHistoryArticleID uuid.UUID `gorm:"column:status_history_article_id;type:uuid;not null;index;constraint:OnDelete:CASCADE" json:"status_history_article_id"`

	StatusHistoryFromStatus string `gorm:"column:status_history_from_status;type:varchar(20);not null" json:"status_history_from_status"`
	StatusHistoryToStatus   string `gorm:"column:status_history_to_status;type:varchar(20);not null" json:"status_history_to_status"`

	StatusHistoryChangedBy uuid.UUID `gorm:"column:status_history_changed_by;type:uuid;not null" json:"status_history_changed_by"`
	StatusHistoryNote      *string   `gorm:"column:status_history_note;type:text" json:"status_history_note,omitempty"`

	StatusHistoryCreatedAt time.Time `gorm:"column:status_history_created_at;autoCreateTime" json:"status_history_created_at"`
}

func (StatusHistoryModel) TableName() string { return "article_status_histories" }
