package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	backupController "majalahku_backend/internals/features/archive/backup/controller"
)

// 🔐 Editor/Owner only (full-database bundles)
func BackupAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := backupController.NewBackupController(db)

	backup := router.Group("/backup")
	backup.Get("/export", ctrl.ExportBackup)
	backup.Post("/import", ctrl.ImportBackup)
}
