package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Editorial workflow statuses
const (
	StatusDraft     = "draft"
	StatusSubmitted = "submitted"
	StatusInReview  = "in_review"
	StatusRevisions = "revisions"
	StatusAccepted  = "accepted"
	StatusRejected  = "rejected"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

// Payment tiers
const (
	TierBrief    = "brief"
	TierStandard = "standard"
	TierFeature  = "feature"
	TierCover    = "cover"
)

// Bonus flag codes (keys of the payment rate bonus map)
const (
	BonusPhoto     = "photo"
	BonusRush      = "rush"
	BonusExclusive = "exclusive"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusInReview, StatusRevisions,
		StatusAccepted, StatusRejected, StatusPublished, StatusArchived:
		return true
	}
	return false
}

func ValidTier(t string) bool {
	switch t {
	case TierBrief, TierStandard, TierFeature, TierCover:
		return true
	}
	return false
}

type ArticleModel struct {
	ArticleID uuid.UUID `gorm:"column:article_id;type:uuid;default:gen_random_uuid();primaryKey" json:"article_id"`

	// FK: author is mandatory (RESTRICT), issue optional (SET NULL)
	ArticleAuthorID uuid.UUID  `gorm:"column:article_author_id;type:uuid;not null;index" json:"article_author_id"`
	ArticleIssueID  *uuid.UUID `gorm:"column:article_issue_id;type:uuid;index" json:"article_issue_id,omitempty"`

	ArticleTitle    string         `gorm:"column:article_title;type:varchar(255);not null" json:"article_title"`
	ArticleSlug     string         `gorm:"column:article_slug;type:varchar(160);not null;uniqueIndex" json:"article_slug"`
	ArticleSummary  *string        `gorm:"column:article_summary;type:text" json:"article_summary,omitempty"`
	ArticleBody     *string        `gorm:"column:article_body;type:text" json:"article_body,omitempty"`
	ArticleKeywords pq.StringArray `gorm:"column:article_keywords;type:text[];not null;default:'{}'" json:"article_keywords"`

	ArticleStatus string `gorm:"column:article_status;type:varchar(20);not null;default:'draft';index" json:"article_status"`
	ArticleTier   string `gorm:"column:article_tier;type:varchar(20);not null;default:'standard'" json:"article_tier"`

	ArticleWordCount int `gorm:"column:article_word_count;not null;default:0" json:"article_word_count"`

	// bonus flags feeding the payment calculation
	ArticleBonusPhoto     bool `gorm:"column:article_bonus_photo;not null;default:false" json:"article_bonus_photo"`
	ArticleBonusRush      bool `gorm:"column:article_bonus_rush;not null;default:false" json:"article_bonus_rush"`
	ArticleBonusExclusive bool `gorm:"column:article_bonus_exclusive;not null;default:false" json:"article_bonus_exclusive"`

	// payment snapshot written by mark-paid
	ArticlePaymentCents *int64     `gorm:"column:article_payment_cents" json:"article_payment_cents,omitempty"`
	ArticlePaidAt       *time.Time `gorm:"column:article_paid_at" json:"article_paid_at,omitempty"`

	ArticleSubmittedAt *time.Time `gorm:"column:article_submitted_at" json:"article_submitted_at,omitempty"`
	ArticlePublishedAt *time.Time `gorm:"column:article_published_at" json:"article_published_at,omitempty"`

	ArticleCreatedAt time.Time      `gorm:"column:article_created_at;autoCreateTime" json:"article_created_at"`
	ArticleUpdatedAt time.Time      `gorm:"column:article_updated_at;autoUpdateTime" json:"article_updated_at"`
	ArticleDeletedAt gorm.DeletedAt `gorm:"column:article_deleted_at;index" json:"article_deleted_at,omitempty"`
}

func (ArticleModel) TableName() string { return "articles" }

// BonusFlags returns the set bonus codes of the article.
func (a ArticleModel) BonusFlags() []string {
	var flags []string
	if a.ArticleBonusPhoto {
		flags = append(flags, BonusPhoto)
	}
	if a.ArticleBonusRush {
		flags = append(flags, BonusRush)
	}
	if a.ArticleBonusExclusive {
		flags = append(flags, BonusExclusive)
	}
	return flags
}
