package model

import (
	"time"

	"github.com/google/uuid"
)

type ArticleNoteModel struct {
	ArticleNoteID        uuid.UUID `gorm:"column:article_note_id;type:uuid;default:gen_random_uuid();primaryKey" json:"article_note_id"`
	ArticleNoteArticleID uuid.UUID `gorm:"column:article_note_article_id;type:uuid;not null;index;constraint:OnDelete:CASCADE" json:"article_note_article_id"`
	ArticleNoteUserID    uuid.UUID `gorm:"column:article_note_user_id;type:uuid;not null" json:"article_note_user_id"`

	ArticleNoteBody     string `gorm:"column:article_note_body;type:text;not null" json:"article_note_body"`
	ArticleNoteIsPinned bool   `gorm:"column:article_note_is_pinned;not null;default:false" json:"article_note_is_pinned"`

	ArticleNoteCreatedAt time.Time `gorm:"column:article_note_created_at;autoCreateTime" json:"article_note_created_at"`
	ArticleNoteUpdatedAt time.Time `gorm:"column:article_note_updated_at;autoUpdateTime" json:"article_note_updated_at"`
}

func (ArticleNoteModel) TableName() string { return "article_notes" }
