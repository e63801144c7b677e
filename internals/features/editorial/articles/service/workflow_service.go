package service

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"majalahku_backend/internals/features/editorial/articles/model"
)

// Editorial workflow graph. A transition is legal only when listed here.
var transitions = map[string][]string{
	model.StatusDraft:     {model.StatusSubmitted},
	model.StatusSubmitted: {model.StatusInReview, model.StatusRejected},
	model.StatusInReview:  {model.StatusRevisions, model.StatusAccepted, model.StatusRejected},
	model.StatusRevisions: {model.StatusInReview},
	model.StatusAccepted:  {model.StatusPublished, model.StatusRejected},
	model.StatusPublished: {model.StatusArchived},
	model.StatusRejected:  {model.StatusDraft},
	model.StatusArchived:  {},
}

// CanTransition reports whether from → to is a legal workflow step.
func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// NextStatuses lists the legal next statuses from a given status.
func NextStatuses(from string) []string {
	next := transitions[from]
	out := make([]string, len(next))
	copy(out, next)
	return out
}

// ApplyTransition moves the article to the new status and writes the audit
// row in one transaction. Publishing requires an assigned issue.
func ApplyTransition(db *gorm.DB, article *model.ArticleModel, toStatus string, changedBy uuid.UUID, note *string) error {
	if !model.ValidStatus(toStatus) {
		return fiber.NewError(fiber.StatusBadRequest, "Unknown status")
	}
	if !CanTransition(article.ArticleStatus, toStatus) {
		return fiber.NewError(fiber.StatusUnprocessableEntity,
			"Invalid transition "+article.ArticleStatus+" → "+toStatus)
	}
	if toStatus == model.StatusPublished && article.ArticleIssueID == nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity,
			"Article must be assigned to an issue before publishing")
	}

	fromStatus := article.ArticleStatus
	now := time.Now().UTC()

	return db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"article_status": toStatus,
		}
		switch toStatus {
		case model.StatusSubmitted:
			if article.ArticleSubmittedAt == nil {
				updates["article_submitted_at"] = now
			}
		case model.StatusPublished:
			updates["article_published_at"] = now
		}

		if err := tx.Model(article).Updates(updates).Error; err != nil {
			return err
		}

		history := model.StatusHistoryModel{
			StatusHistoryArticleID:  article.ArticleID,
			StatusHistoryFromStatus: fromStatus,
			StatusHistoryToStatus:   toStatus,
			StatusHistoryChangedBy:  changedBy,
			StatusHistoryNote:       note,
		}
		if err := tx.Create(&history).Error; err != nil {
			return err
		}

		article.ArticleStatus = toStatus
		switch toStatus {
		case model.StatusSubmitted:
			if article.ArticleSubmittedAt == nil {
				article.ArticleSubmittedAt = &now
			}
		case model.StatusPublished:
			article.ArticlePublishedAt = &now
		}
		return nil
	})
}
