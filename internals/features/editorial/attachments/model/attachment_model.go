package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttachmentModel struct {
	AttachmentID        uuid.UUID `gorm:"column:attachment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"attachment_id"`
	AttachmentArticleID uuid.UUID `gorm:"column:attachment_article_id;type:uuid;not null;index;constraint:OnDelete:CASCADE" json:"attachment_article_id"`

	// photo | document
	AttachmentKind string `gorm:"column:attachment_kind;type:varchar(20);not null" json:"attachment_kind"`

	AttachmentOriginalName string `gorm:"column:attachment_original_name;type:varchar(255);not null" json:"attachment_original_name"`
	AttachmentObjectKey    string `gorm:"column:attachment_object_key;type:text;not null" json:"attachment_object_key"`
	AttachmentPublicURL    string `gorm:"column:attachment_public_url;type:text;not null" json:"attachment_public_url"`
	AttachmentContentType  string `gorm:"column:attachment_content_type;type:varchar(120);not null" json:"attachment_content_type"`
	AttachmentByteSize     int64  `gorm:"column:attachment_byte_size;not null" json:"attachment_byte_size"`

	// photos only
	AttachmentWidth  *int `gorm:"column:attachment_width" json:"attachment_width,omitempty"`
	AttachmentHeight *int `gorm:"column:attachment_height" json:"attachment_height,omitempty"`

	AttachmentCaption *string `gorm:"column:attachment_caption;type:text" json:"attachment_caption,omitempty"`

	AttachmentCreatedAt time.Time      `gorm:"column:attachment_created_at;autoCreateTime" json:"attachment_created_at"`
	AttachmentUpdatedAt time.Time      `gorm:"column:attachment_updated_at;autoUpdateTime" json:"attachment_updated_at"`
	AttachmentDeletedAt gorm.DeletedAt `gorm:"column:attachment_deleted_at;index" json:"attachment_deleted_at,omitempty"`
}

func (AttachmentModel) TableName() string { return "attachments" }
