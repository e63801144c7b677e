package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	articleController "majalahku_backend/internals/features/editorial/articles/controller"
)

// 🔐 Editor/Owner only (full article management)
func ArticleAdminRoutes(router fiber.Router, db *gorm.DB) {
	articleCtrl := articleController.NewArticleController(db)
	statusCtrl := articleController.NewStatusController(db)
	noteCtrl := articleController.NewNoteController(db)
	mediaCtrl := articleController.NewMultimediaController(db)

	// === Articles (CRUD)
	articles := router.Group("/articles")
	articles.Post("/", articleCtrl.CreateArticle)
	articles.Get("/", articleCtrl.GetAllArticles)
	articles.Get("/:id", articleCtrl.GetArticleByID)
	articles.Put("/:id", articleCtrl.UpdateArticle)
	articles.Delete("/:id", articleCtrl.DeleteArticle)

	// === Workflow
	articles.Patch("/:id/transition", statusCtrl.Transition)
	articles.Get("/:id/status-history", statusCtrl.GetHistory)
	articles.Get("/:id/next-statuses", statusCtrl.GetNextStatuses)

	// === Notes
	articles.Post("/:id/notes", noteCtrl.CreateNote)
	articles.Get("/:id/notes", noteCtrl.GetNotes)
	articles.Put("/:id/notes/:note_id", noteCtrl.UpdateNote)
	articles.Delete("/:id/notes/:note_id", noteCtrl.DeleteNote)

	// === Multimedia
	articles.Put("/:id/multimedia-types", mediaCtrl.SetArticleTypes)
	articles.Get("/:id/multimedia-types", mediaCtrl.GetArticleTypes)

	// === Multimedia type lookup
	types := router.Group("/multimedia-types")
	types.Post("/", mediaCtrl.CreateType)
	types.Get("/", mediaCtrl.GetAllTypes)
	types.Put("/:type_id", mediaCtrl.UpdateType)
}
