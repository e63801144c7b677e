package dto

import (
	"time"

	"github.com/google/uuid"

	"majalahku_backend/internals/features/publication/issues/model"
)

// =============================
// Response DTO
// =============================

type VolumeDTO struct {
	VolumeID     uuid.UUID `json:"volume_id"`
	VolumeNumber int       `json:"volume_number"`
	VolumeYear   int       `json:"volume_year"`
	VolumeTheme  *string   `json:"volume_theme,omitempty"`
	IssueCount   int64     `json:"issue_count"`
}

type IssueDTO struct {
	IssueID              uuid.UUID  `json:"issue_id"`
	IssueVolumeID        uuid.UUID  `json:"issue_volume_id"`
	IssueNumber          int        `json:"issue_number"`
	IssueTitle           *string    `json:"issue_title,omitempty"`
	IssuePublicationDate *time.Time `json:"issue_publication_date,omitempty"`
	IssueCoverURL        *string    `json:"issue_cover_url,omitempty"`
	ArticleCount         int64      `json:"article_count"`
}

// =============================
// Request DTO
// =============================

type CreateVolumeRequest struct {
	VolumeNumber int     `json:"volume_number" validate:"required,gt=0"`
	VolumeYear   int     `json:"volume_year" validate:"required,gte=1900,lte=2200"`
	VolumeTheme  *string `json:"volume_theme" validate:"omitempty,max=255"`
}

type UpdateVolumeRequest struct {
	VolumeNumber *int    `json:"volume_number" validate:"omitempty,gt=0"`
	VolumeYear   *int    `json:"volume_year" validate:"omitempty,gte=1900,lte=2200"`
	VolumeTheme  *string `json:"volume_theme" validate:"omitempty,max=255"`
}

type CreateIssueRequest struct {
	IssueNumber          int        `json:"issue_number" validate:"required,gt=0"`
	IssueTitle           *string    `json:"issue_title" validate:"omitempty,max=255"`
	IssuePublicationDate *time.Time `json:"issue_publication_date"`
	IssueCoverURL        *string    `json:"issue_cover_url" validate:"omitempty,url"`
}

type UpdateIssueRequest struct {
	IssueNumber          *int       `json:"issue_number" validate:"omitempty,gt=0"`
	IssueTitle           *string    `json:"issue_title" validate:"omitempty,max=255"`
	IssuePublicationDate *time.Time `json:"issue_publication_date"`
	IssueCoverURL        *string    `json:"issue_cover_url" validate:"omitempty,url"`
}

type AssignArticleRequest struct {
	ArticleID uuid.UUID `json:"article_id" validate:"required"`
}

// =============================
// Converter
// =============================

func ToVolumeDTO(m model.VolumeModel, issueCount int64) VolumeDTO {
	return VolumeDTO{
		VolumeID:     m.VolumeID,
		VolumeNumber: m.VolumeNumber,
		VolumeYear:   m.VolumeYear,
		VolumeTheme:  m.VolumeTheme,
		IssueCount:   issueCount,
	}
}

func ToIssueDTO(m model.IssueModel, articleCount int64) IssueDTO {
	return IssueDTO{
		IssueID:              m.IssueID,
		IssueVolumeID:        m.IssueVolumeID,
		IssueNumber:          m.IssueNumber,
		IssueTitle:           m.IssueTitle,
		IssuePublicationDate: m.IssuePublicationDate,
		IssueCoverURL:        m.IssueCoverURL,
		ArticleCount:         articleCount,
	}
}
