package dto

import (
	"time"

	"github.com/google/uuid"

	"majalahku_backend/internals/features/editorial/articles/model"
)

// ============================
// Response DTO
// ============================

type ArticleDTO struct {
	ArticleID       uuid.UUID  `json:"article_id"`
	ArticleAuthorID uuid.UUID  `json:"article_author_id"`
	ArticleIssueID  *uuid.UUID `json:"article_issue_id,omitempty"`

	ArticleTitle    string   `json:"article_title"`
	ArticleSlug     string   `json:"article_slug"`
	ArticleSummary  *string  `json:"article_summary,omitempty"`
	ArticleBody     *string  `json:"article_body,omitempty"`
	ArticleKeywords []string `json:"article_keywords"`

	ArticleStatus string `json:"article_status"`
	ArticleTier   string `json:"article_tier"`

	ArticleWordCount int `json:"article_word_count"`

	ArticleBonusPhoto     bool `json:"article_bonus_photo"`
	ArticleBonusRush      bool `json:"article_bonus_rush"`
	ArticleBonusExclusive bool `json:"article_bonus_exclusive"`

	ArticlePaymentCents *int64     `json:"article_payment_cents,omitempty"`
	ArticlePaidAt       *time.Time `json:"article_paid_at,omitempty"`

	ArticleSubmittedAt *time.Time `json:"article_submitted_at,omitempty"`
	ArticlePublishedAt *time.Time `json:"article_published_at,omitempty"`

	ArticleCreatedAt time.Time `json:"article_created_at"`
	ArticleUpdatedAt time.Time `json:"article_updated_at"`
}

// ============================
// Create & Update Request DTO
// ============================

type CreateArticleRequest struct {
	ArticleAuthorID string   `json:"article_author_id" validate:"required,uuid"`
	ArticleTitle    string   `json:"article_title" validate:"required,min=3,max=255"`
	ArticleSummary  *string  `json:"article_summary"`
	ArticleBody     *string  `json:"article_body"`
	ArticleKeywords []string `json:"article_keywords" validate:"omitempty,dive,min=2,max=60"`
	ArticleTier     string   `json:"article_tier" validate:"omitempty,oneof=brief standard feature cover"`
}

type UpdateArticleRequest struct {
	ArticleTitle    string   `json:"article_title" validate:"required,min=3,max=255"`
	ArticleSummary  *string  `json:"article_summary"`
	ArticleBody     *string  `json:"article_body"`
	ArticleKeywords []string `json:"article_keywords" validate:"omitempty,dive,min=2,max=60"`
	ArticleTier     string   `json:"article_tier" validate:"omitempty,oneof=brief standard feature cover"`

	ArticleBonusPhoto     *bool `json:"article_bonus_photo"`
	ArticleBonusRush      *bool `json:"article_bonus_rush"`
	ArticleBonusExclusive *bool `json:"article_bonus_exclusive"`
}

type TransitionRequest struct {
	ToStatus string  `json:"to_status" validate:"required"`
	Note     *string `json:"note"`
}

// ============================
// Converter
// ============================

func ToArticleDTO(m model.ArticleModel) ArticleDTO {
	return ArticleDTO{
		ArticleID:             m.ArticleID,
		ArticleAuthorID:       m.ArticleAuthorID,
		ArticleIssueID:        m.ArticleIssueID,
		ArticleTitle:          m.ArticleTitle,
		ArticleSlug:           m.ArticleSlug,
		ArticleSummary:        m.ArticleSummary,
		ArticleBody:           m.ArticleBody,
		ArticleKeywords:       m.ArticleKeywords,
		ArticleStatus:         m.ArticleStatus,
		ArticleTier:           m.ArticleTier,
		ArticleWordCount:      m.ArticleWordCount,
		ArticleBonusPhoto:     m.ArticleBonusPhoto,
		ArticleBonusRush:      m.ArticleBonusRush,
		ArticleBonusExclusive: m.ArticleBonusExclusive,
		ArticlePaymentCents:   m.ArticlePaymentCents,
		ArticlePaidAt:         m.ArticlePaidAt,
		ArticleSubmittedAt:    m.ArticleSubmittedAt,
		ArticlePublishedAt:    m.ArticlePublishedAt,
		ArticleCreatedAt:      m.ArticleCreatedAt,
		ArticleUpdatedAt:      m.ArticleUpdatedAt,
	}
}
