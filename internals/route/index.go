package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"majalahku_backend/internals/constants"
	dashboardRoute "majalahku_backend/internals/features/analytics/dashboard/route"
	backupRoute "majalahku_backend/internals/features/archive/backup/route"
	articleRoute "majalahku_backend/internals/features/editorial/articles/route"
	attachmentRoute "majalahku_backend/internals/features/editorial/attachments/route"
	authorRoute "majalahku_backend/internals/features/editorial/authors/route"
	rateRoute "majalahku_backend/internals/features/payments/rates/route"
	publicationRoute "majalahku_backend/internals/features/publication/issues/route"
	authRoute "majalahku_backend/internals/features/users/auth/route"
	authMiddleware "majalahku_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	publicationRoute.PublicationUserRoutes(public, db)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u", authMiddleware.AuthMiddleware(db))
	articleRoute.ArticleUserRoutes(private, db)
	publicationRoute.PublicationUserRoutes(private, db)

	// ===================== ADMIN (editor/owner) =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorEditor("editorial administration"),
			constants.EditorAndAbove,
		),
	)
	authorRoute.AuthorAdminRoutes(admin, db)
	articleRoute.ArticleAdminRoutes(admin, db)
	attachmentRoute.AttachmentAdminRoutes(admin, db)
	rateRoute.PaymentAdminRoutes(admin, db)
	publicationRoute.PublicationAdminRoutes(admin, db)
	dashboardRoute.DashboardAdminRoutes(admin, db)
	backupRoute.BackupAdminRoutes(admin, db)
}
