package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"majalahku_backend/internals/features/editorial/articles/dto"
	"majalahku_backend/internals/features/editorial/articles/model"
	"majalahku_backend/internals/features/editorial/articles/service"
	helper "majalahku_backend/internals/helpers"
	authMiddleware "majalahku_backend/internals/middlewares/auth"
)

type StatusController struct {
	DB *gorm.DB
}

func NewStatusController(db *gorm.DB) *StatusController {
	return &StatusController{DB: db}
}

// =============================
// 🔁 Transition article status
// =============================
func (ctrl *StatusController) Transition(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.TransitionRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateArticle.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	userID, err := authMiddleware.GetUserID(c)
	if err != nil {
		return err
	}

	var article model.ArticleModel
	if err := ctrl.DB.First(&article, "article_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Article not found")
	}

	if err := service.ApplyTransition(ctrl.DB, &article, body.ToStatus, userID, body.Note); err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return fe
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to apply transition")
	}

	return helper.Success(c, "Status updated", dto.ToArticleDTO(article))
}

// =============================
// 📄 Status history of an article
// =============================
func (ctrl *StatusController) GetHistory(c *fiber.Ctx) error {
	id := c.Params("id")

	var rows []model.StatusHistoryModel
	if err := ctrl.DB.
		Where("status_history_article_id = ?", id).
		Order("status_history_created_at DESC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve status history")
	}

	result := make([]dto.StatusHistoryDTO, 0, len(rows))
	for _, r := range rows {
		result = append(result, dto.ToStatusHistoryDTO(r))
	}

	return helper.Success(c, "OK", result)
}

// =============================
// ➡️ Legal next statuses (for the status dropdown)
// =============================
func (ctrl *StatusController) GetNextStatuses(c *fiber.Ctx) error {
	id := c.Params("id")

	var article model.ArticleModel
	if err := ctrl.DB.Select("article_id, article_status").
		First(&article, "article_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Article not found")
	}

	return helper.Success(c, "OK", fiber.Map{
		"current": article.ArticleStatus,
		"next":    service.NextStatuses(article.ArticleStatus),
	})
}
