package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type IssueModel struct {
	IssueID       uuid.UUID `gorm:"column:issue_id;type:uuid;default:gen_random_uuid();primaryKey" json:"issue_id"`
	IssueVolumeID uuid.UUID `gorm:"column:issue_volume_id;type:uuid;not null;index;constraint:OnDelete:CASCADE;uniqueIndex:uq_issue_volume_number" json:"issue_volume_id"`

	// number is unique within its volume
	IssueNumber int     `gorm:"column:issue_number;not null;uniqueIndex:uq_issue_volume_number" json:"issue_number"`
	IssueTitle  *string `gorm:"column:issue_title;type:varchar(255)" json:"issue_title,omitempty"`

	IssuePublicationDate *time.Time `gorm:"column:issue_publication_date" json:"issue_publication_date,omitempty"`
	IssueCoverURL        *string    `gorm:"column:issue_cover_url;type:text" json:"issue_cover_url,omitempty"`

	IssueCreatedAt time.Time      `gorm:"column:issue_created_at;autoCreateTime" json:"issue_created_at"`
	IssueUpdatedAt time.Time      `gorm:"column:issue_updated_at;autoUpdateTime" json:"issue_updated_at"`
	IssueDeletedAt gorm.DeletedAt `gorm:"column:issue_deleted_at;index" json:"issue_deleted_at,omitempty"`
}

func (IssueModel) TableName() string { return "issues" }
