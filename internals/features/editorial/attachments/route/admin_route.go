package route

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attachmentController "majalahku_backend/internals/features/editorial/attachments/controller"
	"majalahku_backend/internals/helpers/storage"
)

// 🔐 Editor/Owner only (file management)
func AttachmentAdminRoutes(router fiber.Router, db *gorm.DB) {
	blob, err := storage.NewBlobServiceFromEnv("")
	if err != nil {
		log.Fatalf("❌ Failed to init blob storage: %v", err)
	}
	ctrl := attachmentController.NewAttachmentController(db, blob)

	// === Per-article files
	articles := router.Group("/articles")
	articles.Post("/:article_id/attachments", ctrl.UploadAttachment)
	articles.Get("/:article_id/attachments", ctrl.GetArticleAttachments)
	articles.Get("/:article_id/attachments/export", ctrl.ExportArticleAttachments)

	// === Single attachment
	attachments := router.Group("/attachments")
	attachments.Get("/duplicates", ctrl.GetDuplicateReport)
	attachments.Get("/:id/download", ctrl.DownloadAttachment)
	attachments.Get("/:id/thumbnail", ctrl.GetThumbnail)
	attachments.Patch("/:id/caption", ctrl.UpdateCaption)
	attachments.Post("/:id/convert-markdown", ctrl.ConvertDocxToMarkdown)
	attachments.Delete("/:id", ctrl.DeleteAttachment)
}
