package controller

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"majalahku_backend/internals/constants"
	articleModel "majalahku_backend/internals/features/editorial/articles/model"
	"majalahku_backend/internals/features/editorial/attachments/dto"
	"majalahku_backend/internals/features/editorial/attachments/model"
	"majalahku_backend/internals/features/editorial/attachments/service"
	helper "majalahku_backend/internals/helpers"
	"majalahku_backend/internals/helpers/storage"
)

type AttachmentController struct {
	DB   *gorm.DB
	Blob storage.BlobService
}

func NewAttachmentController(db *gorm.DB, blob storage.BlobService) *AttachmentController {
	return &AttachmentController{DB: db, Blob: blob}
}

var validateAttachment = validator.New()

func (ctrl *AttachmentController) loadArticle(id string) (*articleModel.ArticleModel, error) {
	articleID, err := uuid.Parse(id)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid article ID")
	}
	var article articleModel.ArticleModel
	if err := ctrl.DB.First(&article, "article_id = ?", articleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Article not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load article")
	}
	return &article, nil
}

// ============ 📤 Upload Attachment ============
func (ctrl *AttachmentController) UploadAttachment(c *fiber.Ctx) error {
	article, err := ctrl.loadArticle(c.Params("article_id"))
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "File is required (multipart field 'file')")
	}
	if fileHeader.Size > storage.MaxUploadSize() {
		return helper.Error(c, fiber.StatusRequestEntityTooLarge,
			fmt.Sprintf("File exceeds the %d MB upload limit", storage.MaxUploadSize()>>20))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to read upload")
	}
	raw, err := io.ReadAll(io.LimitReader(src, storage.MaxUploadSize()+1))
	src.Close()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to read upload")
	}
	if int64(len(raw)) > storage.MaxUploadSize() {
		return helper.Error(c, fiber.StatusRequestEntityTooLarge,
			fmt.Sprintf("File exceeds the %d MB upload limit", storage.MaxUploadSize()>>20))
	}
	if len(raw) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "File is empty")
	}

	kind := constants.DetectAttachmentKindContent(http.DetectContentType(raw), fileHeader.Filename)
	if kind == "" {
		return helper.Error(c, fiber.StatusUnsupportedMediaType, "Unsupported file type")
	}

	storedName := fileHeader.Filename
	contentType := storage.ContentTypeByName(fileHeader.Filename)
	var width, height *int

	// photos get re-encoded to webp before they hit storage
	if kind == constants.AttachmentKindPhoto {
		converted, w, h, convErr := storage.ConvertToWebP(raw, fileHeader.Filename)
		if convErr != nil {
			if errors.Is(convErr, storage.ErrUnsupportedImage) {
				return helper.Error(c, fiber.StatusUnsupportedMediaType, "Unsupported image format")
			}
			log.Printf("[ERROR] webp conversion failed: %v", convErr)
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to process image")
		}
		raw = converted
		width, height = &w, &h
		ext := filepath.Ext(storedName)
		storedName = strings.TrimSuffix(storedName, ext) + ".webp"
		contentType = "image/webp"
	}

	key := storage.BuildObjectKey("attachments/"+article.ArticleID.String(), storedName)
	publicURL, err := ctrl.Blob.Upload(c.Context(), key, bytes.NewReader(raw), contentType)
	if err != nil {
		log.Printf("[ERROR] attachment upload failed: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to store file")
	}

	attachment := model.AttachmentModel{
		AttachmentArticleID:    article.ArticleID,
		AttachmentKind:         kind,
		AttachmentOriginalName: fileHeader.Filename,
		AttachmentObjectKey:    key,
		AttachmentPublicURL:    publicURL,
		AttachmentContentType:  contentType,
		AttachmentByteSize:     int64(len(raw)),
		AttachmentWidth:        width,
		AttachmentHeight:       height,
	}
	if caption := strings.TrimSpace(c.FormValue("caption")); caption != "" {
		attachment.AttachmentCaption = &caption
	}

	if err := ctrl.DB.Create(&attachment).Error; err != nil {
		// storage already has the object, keep things tidy
		_ = ctrl.Blob.Delete(c.Context(), key)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save attachment")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Attachment uploaded", dto.ToAttachmentDTO(attachment))
}

// ============ 📄 List Attachments ============
func (ctrl *AttachmentController) GetArticleAttachments(c *fiber.Ctx) error {
	article, err := ctrl.loadArticle(c.Params("article_id"))
	if err != nil {
		return err
	}

	query := ctrl.DB.Where("attachment_article_id = ?", article.ArticleID)
	if kind := strings.TrimSpace(c.Query("kind")); kind != "" {
		query = query.Where("attachment_kind = ?", kind)
	}

	var list []model.AttachmentModel
	if err := query.Order("attachment_created_at DESC").Find(&list).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list attachments")
	}

	return helper.Success(c, "Attachments fetched", dto.ToAttachmentDTOs(list))
}

// ============ ⬇️ Download Attachment ============
func (ctrl *AttachmentController) DownloadAttachment(c *fiber.Ctx) error {
	attachment, err := ctrl.loadAttachment(c.Params("id"))
	if err != nil {
		return err
	}

	rc, err := ctrl.Blob.Open(c.Context(), attachment.AttachmentObjectKey)
	if err != nil {
		log.Printf("[ERROR] attachment download failed: %v", err)
		return helper.Error(c, fiber.StatusNotFound, "Stored file not found")
	}

	c.Set(fiber.HeaderContentType, attachment.AttachmentContentType)
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", attachment.AttachmentOriginalName))
	return c.SendStream(rc)
}

// ============ 🖼️ Photo Thumbnail ============
func (ctrl *AttachmentController) GetThumbnail(c *fiber.Ctx) error {
	attachment, err := ctrl.loadAttachment(c.Params("id"))
	if err != nil {
		return err
	}
	if attachment.AttachmentKind != constants.AttachmentKindPhoto {
		return helper.Error(c, fiber.StatusUnprocessableEntity, "Attachment is not a photo")
	}

	w := clampThumbDim(c.QueryInt("w", 320))
	h := clampThumbDim(c.QueryInt("h", 320))

	rc, err := ctrl.Blob.Open(c.Context(), attachment.AttachmentObjectKey)
	if err != nil {
		log.Printf("[ERROR] thumbnail open failed: %v", err)
		return helper.Error(c, fiber.StatusNotFound, "Stored file not found")
	}
	raw, err := io.ReadAll(rc)
	rc.Close()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to read stored file")
	}

	thumb, err := storage.Thumbnail(raw, attachment.AttachmentOriginalName, w, h)
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedImage) {
			return helper.Error(c, fiber.StatusUnsupportedMediaType, "Unsupported image format")
		}
		log.Printf("[ERROR] thumbnail generation failed: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to generate thumbnail")
	}

	c.Set(fiber.HeaderContentType, "image/webp")
	c.Set(fiber.HeaderCacheControl, "public, max-age=86400")
	return c.Send(thumb)
}

func clampThumbDim(n int) int {
	if n < 16 {
		return 16
	}
	if n > 1024 {
		return 1024
	}
	return n
}

// ============ ✏️ Update Caption ============
func (ctrl *AttachmentController) UpdateCaption(c *fiber.Ctx) error {
	attachment, err := ctrl.loadAttachment(c.Params("id"))
	if err != nil {
		return err
	}

	var body dto.UpdateCaptionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAttachment.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ctrl.DB.Model(attachment).
		Update("attachment_caption", body.AttachmentCaption).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update caption")
	}
	attachment.AttachmentCaption = body.AttachmentCaption

	return helper.Success(c, "Caption updated", dto.ToAttachmentDTO(*attachment))
}

// ============ 🗑️ Delete Attachment ============
func (ctrl *AttachmentController) DeleteAttachment(c *fiber.Ctx) error {
	attachment, err := ctrl.loadAttachment(c.Params("id"))
	if err != nil {
		return err
	}

	if err := ctrl.DB.Delete(attachment).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete attachment")
	}

	// stored object goes to trash, the reaper drops it after retention
	if _, err := ctrl.Blob.MoveToTrash(c.Context(), attachment.AttachmentObjectKey); err != nil {
		log.Printf("[ERROR] move to trash failed for %s: %v", attachment.AttachmentObjectKey, err)
	}

	return helper.Success(c, "Attachment deleted", fiber.Map{
		"attachment_id": attachment.AttachmentID,
	})
}

// ============ 📦 Export Article Attachments (ZIP) ============
func (ctrl *AttachmentController) ExportArticleAttachments(c *fiber.Ctx) error {
	article, err := ctrl.loadArticle(c.Params("article_id"))
	if err != nil {
		return err
	}

	var list []model.AttachmentModel
	if err := ctrl.DB.
		Where("attachment_article_id = ?", article.ArticleID).
		Order("attachment_created_at ASC").
		Find(&list).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list attachments")
	}
	if len(list) == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Article has no attachments")
	}

	c.Set(fiber.HeaderContentType, "application/zip")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", article.ArticleSlug+"-attachments.zip"))

	zw := zip.NewWriter(c.Response().BodyWriter())
	used := map[string]int{}
	for _, a := range list {
		rc, openErr := ctrl.Blob.Open(c.Context(), a.AttachmentObjectKey)
		if openErr != nil {
			log.Printf("[ERROR] export skipped %s: %v", a.AttachmentObjectKey, openErr)
			continue
		}

		name := a.AttachmentOriginalName
		if a.AttachmentKind == constants.AttachmentKindPhoto {
			// stored copy is webp regardless of the original extension
			name = strings.TrimSuffix(name, filepath.Ext(name)) + ".webp"
		}
		used[name]++
		if n := used[name]; n > 1 {
			ext := filepath.Ext(name)
			name = fmt.Sprintf("%s-%d%s", strings.TrimSuffix(name, ext), n, ext)
		}

		w, zerr := zw.Create(name)
		if zerr == nil {
			_, zerr = io.Copy(w, rc)
		}
		rc.Close()
		if zerr != nil {
			zw.Close()
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to build ZIP")
		}
	}
	if err := zw.Close(); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to build ZIP")
	}
	return nil
}

// ============ 🔎 Duplicate Report ============
func (ctrl *AttachmentController) GetDuplicateReport(c *fiber.Ctx) error {
	var files []service.DuplicateFile
	if err := ctrl.DB.Model(&model.AttachmentModel{}).
		Select("attachment_id AS id, attachment_article_id AS article_id, attachment_original_name AS name, attachment_byte_size AS byte_size").
		Scan(&files).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load attachments")
	}

	groups := service.FindDuplicates(files)
	return helper.Success(c, "Duplicate report generated", fiber.Map{
		"group_count": len(groups),
		"groups":      groups,
	})
}

func (ctrl *AttachmentController) loadAttachment(id string) (*model.AttachmentModel, error) {
	attachmentID, err := uuid.Parse(id)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid attachment ID")
	}
	var attachment model.AttachmentModel
	if err := ctrl.DB.First(&attachment, "attachment_id = ?", attachmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Attachment not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load attachment")
	}
	return &attachment, nil
}
