package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	"majalahku_backend/internals/features/users/auth/model"
)

// StartBlacklistCleanupScheduler drops blacklist rows whose token already
// expired past the TTL window. Runs every 24h.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		ttlDays := 7
		if val := os.Getenv("TOKEN_BLACKLIST_TTL_DAYS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil {
				ttlDays = parsed
			}
		}

		for {
			log.Println("[CLEANUP] Sweeping token_blacklist...")

			deleteBefore := time.Now().Add(-time.Duration(ttlDays) * 24 * time.Hour)

			var expiredTokens []model.TokenBlacklist
			if err := db.
				Where("expired_at < ? AND deleted_at IS NULL", deleteBefore).
				Limit(100).
				Find(&expiredTokens).Error; err != nil {
				log.Printf("[CLEANUP ERROR] Failed to fetch expired tokens: %v", err)
			} else if len(expiredTokens) > 0 {
				if err := db.Delete(&expiredTokens).Error; err != nil {
					log.Printf("[CLEANUP ERROR] Failed to delete tokens: %v", err)
				} else {
					log.Printf("[CLEANUP] %d expired tokens removed", len(expiredTokens))
				}
			} else {
				log.Println("[CLEANUP] Nothing to remove")
			}

			time.Sleep(24 * time.Hour)
		}
	}()
}
