package lookups

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"majalahku_backend/internals/features/editorial/articles/model"
)

type MultimediaTypeSeed struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

func SeedMultimediaTypesFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Reading multimedia type seed file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Failed to read seed file: %v", err)
	}

	var inputs []MultimediaTypeSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Failed to decode seed file: %v", err)
	}

	for _, data := range inputs {
		var existing model.MultimediaTypeModel
		if err := db.Where("multimedia_type_code = ?", data.Code).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Multimedia type '%s' already exists, skipped.", data.Code)
			continue
		}

		row := model.MultimediaTypeModel{
			MultimediaTypeCode:     data.Code,
			MultimediaTypeLabel:    data.Label,
			MultimediaTypeIsActive: true,
		}
		if err := db.Create(&row).Error; err != nil {
			log.Printf("❌ Failed to seed multimedia type '%s': %v", data.Code, err)
			continue
		}
		log.Printf("✅ Multimedia type '%s' seeded.", data.Code)
	}
}
