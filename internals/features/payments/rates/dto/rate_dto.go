package dto

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	"majalahku_backend/internals/features/payments/rates/model"
)

// =============================
// Response DTO
// =============================

type PaymentRateDTO struct {
	PaymentRateID            uuid.UUID        `json:"payment_rate_id"`
	PaymentRateTier          string           `json:"payment_rate_tier"`
	PaymentRateCents         int64            `json:"payment_rate_cents"`
	PaymentRateBonuses       map[string]int64 `json:"payment_rate_bonuses"`
	PaymentRateEffectiveFrom time.Time        `json:"payment_rate_effective_from"`
	PaymentRateIsActive      bool             `json:"payment_rate_is_active"`
	PaymentRateUpdatedAt     time.Time        `json:"payment_rate_updated_at"`
}

type PaymentReportRow struct {
	AuthorID       uuid.UUID `json:"author_id"`
	AuthorName     string    `json:"author_name"`
	ArticleCount   int64     `json:"article_count"`
	TotalCents     int64     `json:"total_cents"`
	PaidCents      int64     `json:"paid_cents"`
	UnpaidArticles int64     `json:"unpaid_articles"`
}

// =============================
// Request DTO
// =============================

type UpsertRateRequest struct {
	PaymentRateTier    string           `json:"payment_rate_tier" validate:"required,oneof=brief standard feature cover"`
	PaymentRateCents   int64            `json:"payment_rate_cents" validate:"required,gt=0"`
	PaymentRateBonuses map[string]int64 `json:"payment_rate_bonuses" validate:"omitempty,dive,gte=0"`
}

type MarkPaidRequest struct {
	Force bool `json:"force"`
}

// =============================
// Converter
// =============================

func ToPaymentRateDTO(m model.PaymentRateModel) PaymentRateDTO {
	bonuses := map[string]int64{}
	if len(m.PaymentRateBonuses) > 0 {
		_ = sonic.Unmarshal(m.PaymentRateBonuses, &bonuses)
	}
	return PaymentRateDTO{
		PaymentRateID:            m.PaymentRateID,
		PaymentRateTier:          m.PaymentRateTier,
		PaymentRateCents:         m.PaymentRateCents,
		PaymentRateBonuses:       bonuses,
		PaymentRateEffectiveFrom: m.PaymentRateEffectiveFrom,
		PaymentRateIsActive:      m.PaymentRateIsActive,
		PaymentRateUpdatedAt:     m.PaymentRateUpdatedAt,
	}
}

func ToPaymentRateDTOs(list []model.PaymentRateModel) []PaymentRateDTO {
	out := make([]PaymentRateDTO, 0, len(list))
	for _, m := range list {
		out = append(out, ToPaymentRateDTO(m))
	}
	return out
}
