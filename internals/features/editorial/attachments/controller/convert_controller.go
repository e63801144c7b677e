package controller

import (
	"errors"
	"io"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"majalahku_backend/internals/constants"
	articleModel "majalahku_backend/internals/features/editorial/articles/model"
	"majalahku_backend/internals/features/editorial/attachments/dto"
	"majalahku_backend/internals/features/editorial/attachments/service"
	helper "majalahku_backend/internals/helpers"
)

// ============ 📝 Convert DOCX → Markdown ============
//
// Word manuscripts arrive as attachments; this turns one into Markdown and
// optionally replaces the article body with the result.
func (ctrl *AttachmentController) ConvertDocxToMarkdown(c *fiber.Ctx) error {
	attachment, err := ctrl.loadAttachment(c.Params("id"))
	if err != nil {
		return err
	}
	if attachment.AttachmentKind != constants.AttachmentKindDocument ||
		!constants.IsWordDocument(attachment.AttachmentOriginalName) {
		return helper.Error(c, fiber.StatusUnprocessableEntity, "Attachment is not a Word document")
	}

	var body dto.ConvertDocxRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&body); err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
		}
	}

	rc, err := ctrl.Blob.Open(c.Context(), attachment.AttachmentObjectKey)
	if err != nil {
		log.Printf("[ERROR] docx open failed: %v", err)
		return helper.Error(c, fiber.StatusNotFound, "Stored file not found")
	}
	raw, err := io.ReadAll(rc)
	rc.Close()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to read stored file")
	}

	markdown, err := service.ConvertDocxToMarkdown(raw)
	if err != nil {
		if errors.Is(err, service.ErrNotDocx) || errors.Is(err, service.ErrDocxTooLarge) {
			return helper.Error(c, fiber.StatusUnprocessableEntity, err.Error())
		}
		log.Printf("[ERROR] docx conversion failed: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to convert document")
	}

	replaced := false
	if body.ReplaceBody {
		words := len(strings.Fields(markdown))
		if err := ctrl.DB.Model(&articleModel.ArticleModel{}).
			Where("article_id = ?", attachment.AttachmentArticleID).
			Updates(map[string]interface{}{
				"article_body":       markdown,
				"article_word_count": words,
			}).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to update article body")
		}
		replaced = true
	}

	return helper.Success(c, "Document converted", dto.ConvertDocxResponse{
		AttachmentID: attachment.AttachmentID,
		Markdown:     markdown,
		BodyReplaced: replaced,
	})
}
