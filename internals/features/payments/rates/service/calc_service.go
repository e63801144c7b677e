package service

import (
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	articleModel "majalahku_backend/internals/features/editorial/articles/model"
	"majalahku_backend/internals/features/payments/rates/model"
)

var ErrNoActiveRate = errors.New("no active payment rate for tier")

// CalcLine is one itemized component of an article payment.
type CalcLine struct {
	Code        string `json:"code"` // "base" or a bonus code
	Label       string `json:"label"`
	AmountCents int64  `json:"amount_cents"`
}

type Calculation struct {
	Tier       string     `json:"tier"`
	Lines      []CalcLine `json:"lines"`
	TotalCents int64      `json:"total_cents"`
}

// CalculatePayment prices an article against the active rate card of its
// tier: base rate plus every bonus amount whose flag is set. Bonus codes
// present in the map but not flagged on the article are ignored.
func CalculatePayment(db *gorm.DB, article *articleModel.ArticleModel) (*Calculation, error) {
	var rate model.PaymentRateModel
	err := db.
		Where("payment_rate_tier = ? AND payment_rate_is_active = TRUE", article.ArticleTier).
		Order("payment_rate_effective_from DESC").
		First(&rate).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNoActiveRate, article.ArticleTier)
		}
		return nil, err
	}

	bonuses := map[string]int64{}
	if len(rate.PaymentRateBonuses) > 0 {
		if err := sonic.Unmarshal(rate.PaymentRateBonuses, &bonuses); err != nil {
			return nil, fmt.Errorf("decode bonus map: %w", err)
		}
	}

	calc := &Calculation{
		Tier: article.ArticleTier,
		Lines: []CalcLine{{
			Code:        "base",
			Label:       "Base rate (" + article.ArticleTier + ")",
			AmountCents: rate.PaymentRateCents,
		}},
		TotalCents: rate.PaymentRateCents,
	}

	for _, code := range article.BonusFlags() {
		amount, ok := bonuses[code]
		if !ok {
			continue // flagged but not priced on this card
		}
		calc.Lines = append(calc.Lines, CalcLine{
			Code:        code,
			Label:       "Bonus: " + code,
			AmountCents: amount,
		})
		calc.TotalCents += amount
	}

	return calc, nil
}
