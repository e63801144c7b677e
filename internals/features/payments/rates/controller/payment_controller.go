package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	articleModel "majalahku_backend/internals/features/editorial/articles/model"
	"majalahku_backend/internals/features/payments/rates/dto"
	"majalahku_backend/internals/features/payments/rates/service"
	helper "majalahku_backend/internals/helpers"
)

func (ctrl *RateController) loadArticle(id string) (*articleModel.ArticleModel, error) {
	articleID, err := uuid.Parse(id)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid article ID")
	}
	var article articleModel.ArticleModel
	if err := ctrl.DB.First(&article, "article_id = ?", articleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Article not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load article")
	}
	return &article, nil
}

// ============ 🧮 Payment Calculation ============
func (ctrl *RateController) GetArticleCalculation(c *fiber.Ctx) error {
	article, err := ctrl.loadArticle(c.Params("article_id"))
	if err != nil {
		return err
	}

	calc, err := service.CalculatePayment(ctrl.DB, article)
	if err != nil {
		if errors.Is(err, service.ErrNoActiveRate) {
			return helper.Error(c, fiber.StatusUnprocessableEntity, err.Error())
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to calculate payment")
	}

	return helper.Success(c, "Payment calculated", fiber.Map{
		"article_id":  article.ArticleID,
		"calculation": calc,
		"paid_at":     article.ArticlePaidAt,
	})
}

// ============ ✅ Mark Paid ============
//
// Snapshots the computed total onto the article. Re-marking a paid
// article is rejected unless force is set.
func (ctrl *RateController) MarkPaid(c *fiber.Ctx) error {
	article, err := ctrl.loadArticle(c.Params("article_id"))
	if err != nil {
		return err
	}

	var body dto.MarkPaidRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&body); err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
		}
	}

	if article.ArticlePaidAt != nil && !body.Force {
		return helper.Error(c, fiber.StatusConflict, "Article is already marked paid")
	}

	calc, err := service.CalculatePayment(ctrl.DB, article)
	if err != nil {
		if errors.Is(err, service.ErrNoActiveRate) {
			return helper.Error(c, fiber.StatusUnprocessableEntity, err.Error())
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to calculate payment")
	}

	now := time.Now()
	if err := ctrl.DB.Model(article).Updates(map[string]interface{}{
		"article_payment_cents": calc.TotalCents,
		"article_paid_at":       now,
	}).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to mark paid")
	}

	return helper.Success(c, "Article marked paid", fiber.Map{
		"article_id":            article.ArticleID,
		"article_payment_cents": calc.TotalCents,
		"article_paid_at":       now,
		"calculation":           calc,
	})
}

// ============ 📊 Issue Payment Report ============
//
// Per-author payment totals for every article assigned to the issue.
// Unpaid articles are priced on the fly against the active rate cards.
func (ctrl *RateController) GetIssueReport(c *fiber.Ctx) error {
	issueID, err := uuid.Parse(c.Params("issue_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid issue ID")
	}

	var articles []articleModel.ArticleModel
	if err := ctrl.DB.
		Where("article_issue_id = ?", issueID).
		Order("article_title ASC").
		Find(&articles).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load issue articles")
	}

	type authorName struct {
		AuthorID   uuid.UUID
		AuthorName string
	}

	rows := map[uuid.UUID]*dto.PaymentReportRow{}
	var order []uuid.UUID
	for i := range articles {
		a := &articles[i]
		row, ok := rows[a.ArticleAuthorID]
		if !ok {
			row = &dto.PaymentReportRow{AuthorID: a.ArticleAuthorID}
			rows[a.ArticleAuthorID] = row
			order = append(order, a.ArticleAuthorID)
		}
		row.ArticleCount++

		switch {
		case a.ArticlePaymentCents != nil:
			row.TotalCents += *a.ArticlePaymentCents
			if a.ArticlePaidAt != nil {
				row.PaidCents += *a.ArticlePaymentCents
			} else {
				row.UnpaidArticles++
			}
		default:
			calc, calcErr := service.CalculatePayment(ctrl.DB, a)
			if calcErr == nil {
				row.TotalCents += calc.TotalCents
			}
			row.UnpaidArticles++
		}
	}

	// resolve author names in one query
	if len(order) > 0 {
		var names []authorName
		if err := ctrl.DB.Table("authors").
			Select("author_id, author_name").
			Where("author_id IN ?", order).
			Scan(&names).Error; err == nil {
			for _, n := range names {
				if row, ok := rows[n.AuthorID]; ok {
					row.AuthorName = n.AuthorName
				}
			}
		}
	}

	report := make([]dto.PaymentReportRow, 0, len(order))
	for _, id := range order {
		report = append(report, *rows[id])
	}

	return helper.Success(c, "Issue payment report generated", fiber.Map{
		"issue_id": issueID,
		"authors":  report,
	})
}
