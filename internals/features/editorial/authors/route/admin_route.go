package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authorController "majalahku_backend/internals/features/editorial/authors/controller"
)

// 🔐 Editor/Owner only (author management)
func AuthorAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := authorController.NewAuthorController(db)

	authors := router.Group("/authors")
	authors.Post("/", ctrl.CreateAuthor)
	authors.Get("/", ctrl.GetAllAuthors)
	authors.Get("/:id", ctrl.GetAuthorByID)
	authors.Put("/:id", ctrl.UpdateAuthor)
	authors.Delete("/:id", ctrl.DeleteAuthor)
}
