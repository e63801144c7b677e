package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	issueController "majalahku_backend/internals/features/publication/issues/controller"
)

// 🔐 Editor/Owner only (volume + issue management)
func PublicationAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := issueController.NewVolumeController(db)

	// === Volumes
	volumes := router.Group("/volumes")
	volumes.Post("/", ctrl.CreateVolume)
	volumes.Get("/", ctrl.GetAllVolumes)
	volumes.Put("/:id", ctrl.UpdateVolume)
	volumes.Delete("/:id", ctrl.DeleteVolume)

	// === Issues (nested)
	volumes.Post("/:volume_id/issues", ctrl.CreateIssue)
	volumes.Get("/:volume_id/issues", ctrl.GetVolumeIssues)

	issues := router.Group("/issues")
	issues.Get("/:id", ctrl.GetIssueByID)
	issues.Put("/:id", ctrl.UpdateIssue)
	issues.Delete("/:id", ctrl.DeleteIssue)
	issues.Post("/:id/articles", ctrl.AssignArticle)
	issues.Delete("/:id/articles/:article_id", ctrl.UnassignArticle)
}

// Read-only publication views.
func PublicationUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := issueController.NewVolumeController(db)

	router.Get("/volumes", ctrl.GetAllVolumes)
	router.Get("/volumes/:volume_id/issues", ctrl.GetVolumeIssues)
	router.Get("/issues/:id", ctrl.GetIssueByID)
}
