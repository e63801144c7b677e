package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "majalahku_backend/internals/features/users/auth/controller"
	"majalahku_backend/internals/middlewares"
	authMiddleware "majalahku_backend/internals/middlewares/auth"
)

// AuthRoutes: public auth endpoints + logout behind auth.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/login-google", middlewares.LoginRateLimiter(), ctrl.LoginGoogle)
	auth.Post("/refresh-token", ctrl.Refresh)
	auth.Post("/logout", authMiddleware.AuthMiddleware(db), ctrl.Logout)
}
