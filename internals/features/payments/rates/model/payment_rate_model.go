package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PaymentRateModel is the active fee card for one article tier. The bonus
// map is jsonb: bonus code → amount in cents.
type PaymentRateModel struct {
	PaymentRateID   uuid.UUID `gorm:"column:payment_rate_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_rate_id"`
	PaymentRateTier string    `gorm:"column:payment_rate_tier;type:varchar(20);not null;index" json:"payment_rate_tier"`

	PaymentRateCents   int64          `gorm:"column:payment_rate_cents;not null" json:"payment_rate_cents"`
	PaymentRateBonuses datatypes.JSON `gorm:"column:payment_rate_bonuses;type:jsonb" json:"payment_rate_bonuses"`

	PaymentRateEffectiveFrom time.Time `gorm:"column:payment_rate_effective_from;not null" json:"payment_rate_effective_from"`
	PaymentRateIsActive      bool      `gorm:"column:payment_rate_is_active;not null;default:true" json:"payment_rate_is_active"`

	PaymentRateCreatedAt time.Time `gorm:"column:payment_rate_created_at;autoCreateTime" json:"payment_rate_created_at"`
	PaymentRateUpdatedAt time.Time `gorm:"column:payment_rate_updated_at;autoUpdateTime" json:"payment_rate_updated_at"`
}

func (PaymentRateModel) TableName() string { return "payment_rates" }
