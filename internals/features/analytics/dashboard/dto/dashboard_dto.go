package dto

import "github.com/google/uuid"

type CountBucket struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

type MonthlySubmissions struct {
	Month string `json:"month"` // YYYY-MM
	Count int64  `json:"count"`
}

type TopAuthor struct {
	AuthorID       uuid.UUID `json:"author_id"`
	AuthorName     string    `json:"author_name"`
	PublishedCount int64     `json:"published_count"`
}

type PaymentTotals struct {
	PaidCents      int64 `json:"paid_cents"`
	PendingCents   int64 `json:"pending_cents"`
	PaidArticles   int64 `json:"paid_articles"`
	UnpaidArticles int64 `json:"unpaid_articles"`
}

type StorageFootprint struct {
	TotalBytes      int64 `json:"total_bytes"`
	AttachmentCount int64 `json:"attachment_count"`
	PhotoBytes      int64 `json:"photo_bytes"`
	DocumentBytes   int64 `json:"document_bytes"`
}

type DashboardDTO struct {
	ArticlesByStatus   []CountBucket        `json:"articles_by_status"`
	ArticlesByTier     []CountBucket        `json:"articles_by_tier"`
	MonthlySubmissions []MonthlySubmissions `json:"monthly_submissions"`
	TopAuthors         []TopAuthor          `json:"top_authors"`
	Payments           PaymentTotals        `json:"payments"`
	Storage            StorageFootprint     `json:"storage"`
}
