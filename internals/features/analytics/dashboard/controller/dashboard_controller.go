package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"majalahku_backend/internals/features/analytics/dashboard/dto"
	articleModel "majalahku_backend/internals/features/editorial/articles/model"
	attachmentModel "majalahku_backend/internals/features/editorial/attachments/model"
	helper "majalahku_backend/internals/helpers"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// ============ 📊 Editorial Dashboard ============
//
// One round of aggregates for the admin landing page. Each block is
// queried independently; a failing block logs and returns empty rather
// than failing the whole dashboard.
func (ctrl *DashboardController) GetDashboard(c *fiber.Ctx) error {
	out := dto.DashboardDTO{
		ArticlesByStatus:   ctrl.countArticles("article_status"),
		ArticlesByTier:     ctrl.countArticles("article_tier"),
		MonthlySubmissions: ctrl.monthlySubmissions(),
		TopAuthors:         ctrl.topAuthors(5),
	}
	ctrl.paymentTotals(&out.Payments)
	ctrl.storageFootprint(&out.Storage)

	return helper.Success(c, "Dashboard generated", out)
}

func (ctrl *DashboardController) countArticles(column string) []dto.CountBucket {
	buckets := []dto.CountBucket{}
	err := ctrl.DB.Model(&articleModel.ArticleModel{}).
		Select(column + " AS key, COUNT(*) AS count").
		Group(column).
		Order("count DESC").
		Scan(&buckets).Error
	if err != nil {
		log.Printf("[ERROR] dashboard %s counts: %v", column, err)
	}
	return buckets
}

func (ctrl *DashboardController) monthlySubmissions() []dto.MonthlySubmissions {
	rows := []dto.MonthlySubmissions{}
	err := ctrl.DB.Model(&articleModel.ArticleModel{}).
		Select("to_char(date_trunc('month', article_submitted_at), 'YYYY-MM') AS month, COUNT(*) AS count").
		Where("article_submitted_at >= date_trunc('month', NOW()) - INTERVAL '11 months'").
		Group("month").
		Order("month ASC").
		Scan(&rows).Error
	if err != nil {
		log.Printf("[ERROR] dashboard monthly submissions: %v", err)
	}
	return rows
}

func (ctrl *DashboardController) topAuthors(limit int) []dto.TopAuthor {
	rows := []dto.TopAuthor{}
	err := ctrl.DB.Table("articles").
		Select("authors.author_id, authors.author_name, COUNT(*) AS published_count").
		Joins("JOIN authors ON authors.author_id = articles.article_author_id").
		Where("articles.article_status = ? AND articles.article_deleted_at IS NULL", articleModel.StatusPublished).
		Group("authors.author_id, authors.author_name").
		Order("published_count DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		log.Printf("[ERROR] dashboard top authors: %v", err)
	}
	return rows
}

func (ctrl *DashboardController) paymentTotals(out *dto.PaymentTotals) {
	type row struct {
		PaidCents      int64
		PendingCents   int64
		PaidArticles   int64
		UnpaidArticles int64
	}
	var r row
	err := ctrl.DB.Model(&articleModel.ArticleModel{}).
		Select(`
			COALESCE(SUM(article_payment_cents) FILTER (WHERE article_paid_at IS NOT NULL), 0) AS paid_cents,
			COALESCE(SUM(article_payment_cents) FILTER (WHERE article_paid_at IS NULL), 0) AS pending_cents,
			COUNT(*) FILTER (WHERE article_paid_at IS NOT NULL) AS paid_articles,
			COUNT(*) FILTER (WHERE article_paid_at IS NULL) AS unpaid_articles`).
		Scan(&r).Error
	if err != nil {
		log.Printf("[ERROR] dashboard payment totals: %v", err)
		return
	}
	out.PaidCents = r.PaidCents
	out.PendingCents = r.PendingCents
	out.PaidArticles = r.PaidArticles
	out.UnpaidArticles = r.UnpaidArticles
}

func (ctrl *DashboardController) storageFootprint(out *dto.StorageFootprint) {
	type row struct {
		TotalBytes      int64
		AttachmentCount int64
		PhotoBytes      int64
		DocumentBytes   int64
	}
	var r row
	err := ctrl.DB.Model(&attachmentModel.AttachmentModel{}).
		Select(`
			COALESCE(SUM(attachment_byte_size), 0) AS total_bytes,
			COUNT(*) AS attachment_count,
			COALESCE(SUM(attachment_byte_size) FILTER (WHERE attachment_kind = 'photo'), 0) AS photo_bytes,
			COALESCE(SUM(attachment_byte_size) FILTER (WHERE attachment_kind = 'document'), 0) AS document_bytes`).
		Scan(&r).Error
	if err != nil {
		log.Printf("[ERROR] dashboard storage footprint: %v", err)
		return
	}
	out.TotalBytes = r.TotalBytes
	out.AttachmentCount = r.AttachmentCount
	out.PhotoBytes = r.PhotoBytes
	out.DocumentBytes = r.DocumentBytes
}
