package rates

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"majalahku_backend/internals/features/payments/rates/model"
)

type PaymentRateSeed struct {
	Tier    string           `json:"tier"`
	Cents   int64            `json:"cents"`
	Bonuses map[string]int64 `json:"bonuses"`
}

func SeedPaymentRatesFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Reading payment rate seed file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Failed to read seed file: %v", err)
	}

	var inputs []PaymentRateSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Failed to decode seed file: %v", err)
	}

	for _, data := range inputs {
		var existing model.PaymentRateModel
		if err := db.Where("payment_rate_tier = ? AND payment_rate_is_active = TRUE", data.Tier).
			First(&existing).Error; err == nil {
			log.Printf("ℹ️ Active rate for tier '%s' already exists, skipped.", data.Tier)
			continue
		}

		bonuses, err := json.Marshal(data.Bonuses)
		if err != nil {
			log.Printf("❌ Failed to encode bonuses for tier '%s': %v", data.Tier, err)
			continue
		}

		row := model.PaymentRateModel{
			PaymentRateTier:          data.Tier,
			PaymentRateCents:         data.Cents,
			PaymentRateBonuses:       datatypes.JSON(bonuses),
			PaymentRateEffectiveFrom: time.Now(),
			PaymentRateIsActive:      true,
		}
		if err := db.Create(&row).Error; err != nil {
			log.Printf("❌ Failed to seed rate for tier '%s': %v", data.Tier, err)
			continue
		}
		log.Printf("✅ Payment rate for tier '%s' seeded.", data.Tier)
	}
}
