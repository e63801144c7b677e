package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"majalahku_backend/internals/features/editorial/articles/dto"
	"majalahku_backend/internals/features/editorial/articles/model"
	helper "majalahku_backend/internals/helpers"
	authMiddleware "majalahku_backend/internals/middlewares/auth"
)

type NoteController struct {
	DB *gorm.DB
}

func NewNoteController(db *gorm.DB) *NoteController {
	return &NoteController{DB: db}
}

// =============================
// ➕ Add note to article
// =============================
func (ctrl *NoteController) CreateNote(c *fiber.Ctx) error {
	articleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid article id")
	}

	var body dto.CreateNoteRequest
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

	var count int64
	if err := ctrl.DB.Model(&model.ArticleModel{}).
		Where("article_id = ?", articleID).
		Count(&count).Error; err != nil || count == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Article not found")
	}

	note := model.ArticleNoteModel{
		ArticleNoteArticleID: articleID,
		ArticleNoteUserID:    userID,
		ArticleNoteBody:      body.ArticleNoteBody,
		ArticleNoteIsPinned:  body.ArticleNoteIsPinned,
	}
	if err := ctrl.DB.Create(&note).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create note")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Note added", dto.ToArticleNoteDTO(note))
}

// =============================
// 🔄 Update note
// =============================
func (ctrl *NoteController) UpdateNote(c *fiber.Ctx) error {
	noteID := c.Params("note_id")

	var body dto.UpdateNoteRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateArticle.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var note model.ArticleNoteModel
	if err := ctrl.DB.First(&note, "article_note_id = ?", noteID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Note not found")
	}

	note.ArticleNoteBody = body.ArticleNoteBody
	if body.ArticleNoteIsPinned != nil {
		note.ArticleNoteIsPinned = *body.ArticleNoteIsPinned
	}

	if err := ctrl.DB.Save(&note).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update note")
	}

	return helper.Success(c, "Note updated", dto.ToArticleNoteDTO(note))
}

// =============================
// 🗑️ Delete note
// =============================
func (ctrl *NoteController) DeleteNote(c *fiber.Ctx) error {
	noteID := c.Params("note_id")

	if err := ctrl.DB.Delete(&model.ArticleNoteModel{}, "article_note_id = ?", noteID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete note")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// =============================
// 📄 Notes of an article (pinned first)
// =============================
func (ctrl *NoteController) GetNotes(c *fiber.Ctx) error {
	articleID := c.Params("id")

	var notes []model.ArticleNoteModel
	if err := ctrl.DB.
		Where("article_note_article_id = ?", articleID).
		Order("article_note_is_pinned DESC, article_note_created_at DESC").
		Find(&notes).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve notes")
	}

	result := make([]dto.ArticleNoteDTO, 0, len(notes))
	for _, n := range notes {
		result = append(result, dto.ToArticleNoteDTO(n))
	}

	return helper.Success(c, "OK", result)
}
