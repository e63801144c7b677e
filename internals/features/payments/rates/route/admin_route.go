package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	rateController "majalahku_backend/internals/features/payments/rates/controller"
)

// 🔐 Editor/Owner only (rate cards + contributor payments)
func PaymentAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := rateController.NewRateController(db)

	// === Rate cards
	rates := router.Group("/payment-rates")
	rates.Get("/", ctrl.GetAllRates)
	rates.Put("/", ctrl.UpsertRate)
	rates.Get("/history", ctrl.GetRateHistory)
	rates.Delete("/:tier", ctrl.DeactivateRate)

	// === Article payments
	articles := router.Group("/articles")
	articles.Get("/:article_id/payment", ctrl.GetArticleCalculation)
	articles.Post("/:article_id/mark-paid", ctrl.MarkPaid)

	// === Reports
	router.Get("/issues/:issue_id/payment-report", ctrl.GetIssueReport)
}
