package users

import (
	"encoding/json"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"majalahku_backend/internals/features/users/auth/model"
)

type UserSeed struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func SeedUsersFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Reading user seed file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Failed to read seed file: %v", err)
	}

	var inputs []UserSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Failed to decode seed file: %v", err)
	}

	for _, data := range inputs {
		var existing model.UserModel
		if err := db.Where("user_email = ?", data.Email).First(&existing).Error; err == nil {
			log.Printf("ℹ️ User '%s' already exists, skipped.", data.Email)
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("❌ Failed to hash password for '%s': %v", data.Email, err)
			continue
		}
		hash := string(hashed)

		user := model.UserModel{
			UserFullName: data.FullName,
			UserEmail:    data.Email,
			UserPassword: &hash,
			UserRole:     data.Role,
			UserIsActive: true,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("❌ Failed to seed user '%s': %v", data.Email, err)
			continue
		}
		log.Printf("✅ User '%s' seeded (%s).", data.Email, data.Role)
	}
}
