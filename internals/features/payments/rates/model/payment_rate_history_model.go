package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PaymentRateHistoryModel is the audit row written whenever a rate card
// changes. Old values are null on first creation of a tier.
type PaymentRateHistoryModel struct {
	PaymentRateHistoryID     uuid.UUID `gorm:"column:payment_rate_history_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_rate_history_id"`
	PaymentRateHistoryRateID uuid.UUID `gorm:"column:payment_rate_history_rate_id;type:uuid;not null;index;constraint:OnDelete:CASCADE" json:"payment_rate_history_rate_id"`
	PaymentRateHistoryTier   string    `gorm:"column:payment_rate_history_tier;type:varchar(20);not null" json:"payment_rate_history_tier"`

	PaymentRateHistoryOldCents *int64 `gorm:"column:payment_rate_history_old_cents" json:"payment_rate_history_old_cents,omitempty"`
	PaymentRateHistoryNewCents int64  `gorm:"column:payment_rate_history_new_cents;not null" json:"payment_rate_history_new_cents"`

	PaymentRateHistoryOldBonuses datatypes.JSON `gorm:"column:payment_rate_history_old_bonuses;type:jsonb" json:"payment_rate_history_old_bonuses,omitempty"`
	PaymentRateHistoryNewBonuses datatypes.JSON `gorm:"column:payment_rate_history_new_bonuses;type:jsonb" json:"payment_rate_history_new_bonuses,omitempty"`

	PaymentRateHistoryChangedBy uuid.UUID `gorm:"column:payment_rate_history_changed_by;type:uuid;not null" json:"payment_rate_history_changed_by"`
	PaymentRateHistoryCreatedAt time.Time `gorm:"column:payment_rate_history_created_at;autoCreateTime" json:"payment_rate_history_created_at"`
}

func (PaymentRateHistoryModel) TableName() string { return "payment_rate_histories" }
