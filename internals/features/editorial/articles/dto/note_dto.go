package dto

import (
	"time"

	"github.com/google/uuid"

	"majalahku_backend/internals/features/editorial/articles/model"
)

// ============================
// Notes
// ============================

type ArticleNoteDTO struct {
	ArticleNoteID        uuid.UUID `json:"article_note_id"`
	ArticleNoteArticleID uuid.UUID `json:"article_note_article_id"`
	ArticleNoteUserID    uuid.UUID `json:"article_note_user_id"`
	ArticleNoteBody      string    `json:"article_note_body"`
	ArticleNoteIsPinned  bool      `json:"article_note_is_pinned"`
	ArticleNoteCreatedAt time.Time `json:"article_note_created_at"`
	ArticleNoteUpdatedAt time.Time `json:"article_note_updated_at"`
}

type CreateNoteRequest struct {
	ArticleNoteBody     string `json:"article_note_body" validate:"required,min=1"`
	ArticleNoteIsPinned bool   `json:"article_note_is_pinned"`
}

type UpdateNoteRequest struct {
	ArticleNoteBody     string `json:"article_note_body" validate:"required,min=1"`
	ArticleNoteIsPinned *bool  `json:"article_note_is_pinned"`
}

func ToArticleNoteDTO(m model.ArticleNoteModel) ArticleNoteDTO {
	return ArticleNoteDTO{
		ArticleNoteID:        m.ArticleNoteID,
		ArticleNoteArticleID: m.ArticleNoteArticleID,
		ArticleNoteUserID:    m.ArticleNoteUserID,
		ArticleNoteBody:      m.ArticleNoteBody,
		ArticleNoteIsPinned:  m.ArticleNoteIsPinned,
		ArticleNoteCreatedAt: m.ArticleNoteCreatedAt,
		ArticleNoteUpdatedAt: m.ArticleNoteUpdatedAt,
	}
}

// ============================
// Status history
// ============================

type StatusHistoryDTO struct {
	StatusHistoryID         uuid.UUID `json:"status_history_id"`
	StatusHistoryArticleID  uuid.UUID `json:"status_history_article_id"`
	StatusHistoryFromStatus string    `json:"status_history_from_status"`
	StatusHistoryToStatus   string    `json:"status_history_to_status"`
	StatusHistoryChangedBy  uuid.UUID `json:"status_history_changed_by"`
	StatusHistoryNote       *string   `json:"status_history_note,omitempty"`
	StatusHistoryCreatedAt  time.Time `json:"status_history_created_at"`
}

func ToStatusHistoryDTO(m model.StatusHistoryModel) StatusHistoryDTO {
	return StatusHistoryDTO{
		StatusHistoryID:         m.StatusHistoryID,
		StatusHistoryArticleID:  m.StatusHistoryArticleID,
		StatusHistoryFromStatus: m.StatusHistoryFromStatus,
		StatusHistoryToStatus:   m.StatusHistoryToStatus,
		StatusHistoryChangedBy:  m.StatusHistoryChangedBy,
		StatusHistoryNote:       m.StatusHistoryNote,
		StatusHistoryCreatedAt:  m.StatusHistoryCreatedAt,
	}
}

// ============================
// Multimedia types
// ============================

type MultimediaTypeDTO struct {
	MultimediaTypeID       uuid.UUID `json:"multimedia_type_id"`
	MultimediaTypeCode     string    `json:"multimedia_type_code"`
	MultimediaTypeLabel    string    `json:"multimedia_type_label"`
	MultimediaTypeIsActive bool      `json:"multimedia_type_is_active"`
}

type CreateMultimediaTypeRequest struct {
	MultimediaTypeCode  string `json:"multimedia_type_code" validate:"required,min=2,max=40,lowercase"`
	MultimediaTypeLabel string `json:"multimedia_type_label" validate:"required,min=2,max=120"`
}

type UpdateMultimediaTypeRequest struct {
	MultimediaTypeLabel    string `json:"multimedia_type_label" validate:"required,min=2,max=120"`
	MultimediaTypeIsActive *bool  `json:"multimedia_type_is_active"`
}

type SetArticleMultimediaRequest struct {
	MultimediaTypeIDs []string `json:"multimedia_type_ids" validate:"required,dive,uuid"`
}

func ToMultimediaTypeDTO(m model.MultimediaTypeModel) MultimediaTypeDTO {
	return MultimediaTypeDTO{
		MultimediaTypeID:       m.MultimediaTypeID,
		MultimediaTypeCode:     m.MultimediaTypeCode,
		MultimediaTypeLabel:    m.MultimediaTypeLabel,
		MultimediaTypeIsActive: m.MultimediaTypeIsActive,
	}
}
