package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	articleController "majalahku_backend/internals/features/editorial/articles/controller"
)

// Read-only article views for authenticated contributors.
func ArticleUserRoutes(router fiber.Router, db *gorm.DB) {
	articleCtrl := articleController.NewArticleController(db)
	statusCtrl := articleController.NewStatusController(db)

	articles := router.Group("/articles")
	articles.Get("/", articleCtrl.GetAllArticles)
	articles.Get("/:id", articleCtrl.GetArticleByID)
	articles.Get("/:id/status-history", statusCtrl.GetHistory)
}
