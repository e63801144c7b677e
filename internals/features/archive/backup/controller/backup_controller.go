package controller

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"majalahku_backend/internals/features/archive/backup/service"
	helper "majalahku_backend/internals/helpers"
)

type BackupController struct {
	DB *gorm.DB
}

func NewBackupController(db *gorm.DB) *BackupController {
	return &BackupController{DB: db}
}

// ============ 📦 Export Backup ============
func (ctrl *BackupController) ExportBackup(c *fiber.Ctx) error {
	var buf bytes.Buffer
	manifest, err := service.ExportBackup(ctrl.DB, &buf)
	if err != nil {
		log.Printf("[ERROR] backup export failed: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to export backup")
	}

	filename := fmt.Sprintf("majalahku-backup-%s.zip", time.Now().Format("20060102-150405"))
	c.Set(fiber.HeaderContentType, "application/zip")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	c.Set("X-Backup-Version", fmt.Sprintf("%d", manifest.Version))
	return c.Send(buf.Bytes())
}

// ============ 📥 Import Backup ============
func (ctrl *BackupController) ImportBackup(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("bundle")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Bundle is required (multipart field 'bundle')")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to read bundle")
	}
	bundle, err := io.ReadAll(src)
	src.Close()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to read bundle")
	}

	report, err := service.ImportBackup(ctrl.DB, bundle)
	if err != nil {
		if errors.Is(err, service.ErrNotBackupBundle) || errors.Is(err, service.ErrManifestVersion) {
			return helper.Error(c, fiber.StatusUnprocessableEntity, err.Error())
		}
		log.Printf("[ERROR] backup import failed: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to import backup")
	}

	return helper.Success(c, "Backup imported", report)
}
