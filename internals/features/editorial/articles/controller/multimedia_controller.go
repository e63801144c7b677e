package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"majalahku_backend/internals/features/editorial/articles/dto"
	"majalahku_backend/internals/features/editorial/articles/model"
	helper "majalahku_backend/internals/helpers"
)

type MultimediaController struct {
	DB *gorm.DB
}

func NewMultimediaController(db *gorm.DB) *MultimediaController {
	return &MultimediaController{DB: db}
}

// =============================
// ➕ Create multimedia type (lookup)
// =============================
func (ctrl *MultimediaController) CreateType(c *fiber.Ctx) error {
	var body dto.CreateMultimediaTypeRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateArticle.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	mt := model.MultimediaTypeModel{
		MultimediaTypeCode:     strings.ToLower(strings.TrimSpace(body.MultimediaTypeCode)),
		MultimediaTypeLabel:    strings.TrimSpace(body.MultimediaTypeLabel),
		MultimediaTypeIsActive: true,
	}
	if err := ctrl.DB.Create(&mt).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate") {
			return fiber.NewError(fiber.StatusConflict, "Multimedia type code already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create multimedia type")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Multimedia type created", dto.ToMultimediaTypeDTO(mt))
}

// =============================
// 🔄 Update multimedia type
// =============================
func (ctrl *MultimediaController) UpdateType(c *fiber.Ctx) error {
	id := c.Params("type_id")

	var body dto.UpdateMultimediaTypeRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateArticle.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var mt model.MultimediaTypeModel
	if err := ctrl.DB.First(&mt, "multimedia_type_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Multimedia type not found")
	}

	mt.MultimediaTypeLabel = strings.TrimSpace(body.MultimediaTypeLabel)
	if body.MultimediaTypeIsActive != nil {
		mt.MultimediaTypeIsActive = *body.MultimediaTypeIsActive
	}

	if err := ctrl.DB.Save(&mt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update multimedia type")
	}

	return helper.Success(c, "Multimedia type updated", dto.ToMultimediaTypeDTO(mt))
}

// =============================
// 📄 List multimedia types
// =============================
func (ctrl *MultimediaController) GetAllTypes(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.MultimediaTypeModel{})
	if c.Query("active") == "true" {
		q = q.Where("multimedia_type_is_active = TRUE")
	}

	var types []model.MultimediaTypeModel
	if err := q.Order("multimedia_type_code ASC").Find(&types).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve multimedia types")
	}

	result := make([]dto.MultimediaTypeDTO, 0, len(types))
	for _, t := range types {
		result = append(result, dto.ToMultimediaTypeDTO(t))
	}

	return helper.Success(c, "OK", result)
}

// =============================
// 🔁 Replace the multimedia type set of an article
// =============================
func (ctrl *MultimediaController) SetArticleTypes(c *fiber.Ctx) error {
	articleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid article id")
	}

	var body dto.SetArticleMultimediaRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateArticle.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	typeIDs := make([]uuid.UUID, 0, len(body.MultimediaTypeIDs))
	for _, raw := range body.MultimediaTypeIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid multimedia type id")
		}
		typeIDs = append(typeIDs, id)
	}

	var articleCount int64
	if err := ctrl.DB.Model(&model.ArticleModel{}).
		Where("article_id = ?", articleID).
		Count(&articleCount).Error; err != nil || articleCount == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Article not found")
	}

	if len(typeIDs) > 0 {
		var typeCount int64
		if err := ctrl.DB.Model(&model.MultimediaTypeModel{}).
			Where("multimedia_type_id IN ?", typeIDs).
			Count(&typeCount).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check multimedia types")
		}
		if typeCount != int64(len(typeIDs)) {
			return fiber.NewError(fiber.StatusBadRequest, "Unknown multimedia type id in the list")
		}
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("article_multimedia_type_article_id = ?", articleID).
			Delete(&model.ArticleMultimediaTypeModel{}).Error; err != nil {
			return err
		}
		for _, typeID := range typeIDs {
			row := model.ArticleMultimediaTypeModel{
				ArticleMultimediaTypeArticleID: articleID,
				ArticleMultimediaTypeTypeID:    typeID,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to set multimedia types")
	}

	return helper.Success(c, "Multimedia types set", fiber.Map{
		"article_id":          articleID,
		"multimedia_type_ids": body.MultimediaTypeIDs,
	})
}

// =============================
// 📄 Multimedia types of an article
// =============================
func (ctrl *MultimediaController) GetArticleTypes(c *fiber.Ctx) error {
	articleID := c.Params("id")

	var types []model.MultimediaTypeModel
	if err := ctrl.DB.
		Joins("JOIN article_multimedia_types amt ON amt.article_multimedia_type_type_id = multimedia_types.multimedia_type_id").
		Where("amt.article_multimedia_type_article_id = ?", articleID).
		Order("multimedia_types.multimedia_type_code ASC").
		Find(&types).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve article multimedia types")
	}

	result := make([]dto.MultimediaTypeDTO, 0, len(types))
	for _, t := range types {
		result = append(result, dto.ToMultimediaTypeDTO(t))
	}

	return helper.Success(c, "OK", result)
}
