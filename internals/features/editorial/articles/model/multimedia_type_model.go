package model

import (
	"time"

	"github.com/google/uuid"
)

// Lookup table: gallery, video, audio, infographic, ...
type MultimediaTypeModel struct {
	MultimediaTypeID       uuid.UUID `gorm:"column:multimedia_type_id;type:uuid;default:gen_random_uuid();primaryKey" json:"multimedia_type_id"`
	MultimediaTypeCode     string    `gorm:"column:multimedia_type_code;type:varchar(40);not null;uniqueIndex" json:"multimedia_type_code"`
	MultimediaTypeLabel    string    `gorm:"column:multimedia_type_label;type:varchar(120);not null" json:"multimedia_type_label"`
	MultimediaTypeIsActive bool      `gorm:"column:multimedia_type_is_active;not null;default:true" json:"multimedia_type_is_active"`

	MultimediaTypeCreatedAt time.Time `gorm:"column:multimedia_type_created_at;autoCreateTime" json:"multimedia_type_created_at"`
	MultimediaTypeUpdatedAt time.Time `gorm:"column:multimedia_type_updated_at;autoUpdateTime" json:"multimedia_type_updated_at"`
}

func (MultimediaTypeModel) TableName() string { return "multimedia_types" }

// Join rows: which multimedia kinds an article ships with.
type ArticleMultimediaTypeModel struct {
	ArticleMultimediaTypeID        uuid.UUID `gorm:"column:article_multimedia_type_id;type:uuid;default:gen_random_uuid();primaryKey" json:"article_multimedia_type_id"`
	ArticleMultimediaTypeArticleID uuid.UUID `gorm:"column:article_multimedia_type_article_id;type:uuid;not null;uniqueIndex:uq_article_multimedia;constraint:OnDelete:CASCADE" json:"article_multimedia_type_article_id"`
	ArticleMultimediaTypeTypeID    uuid.UUID `gorm:"column:article_multimedia_type_type_id;type:uuid;not null;uniqueIndex:uq_article_multimedia" json:"article_multimedia_type_type_id"`

	ArticleMultimediaTypeCreatedAt time.Time `gorm:"column:article_multimedia_type_created_at;autoCreateTime" json:"article_multimedia_type_created_at"`
}

func (ArticleMultimediaTypeModel) TableName() string { return "article_multimedia_types" }
