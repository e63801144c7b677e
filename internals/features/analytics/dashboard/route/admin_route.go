package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dashboardController "majalahku_backend/internals/features/analytics/dashboard/controller"
)

// 🔐 Editor/Owner only
func DashboardAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := dashboardController.NewDashboardController(db)

	router.Get("/dashboard", ctrl.GetDashboard)
}
