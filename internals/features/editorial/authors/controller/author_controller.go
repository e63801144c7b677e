package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"majalahku_backend/internals/features/editorial/authors/dto"
	"majalahku_backend/internals/features/editorial/authors/model"
	helper "majalahku_backend/internals/helpers"
)

var validateAuthor = validator.New()

type AuthorController struct {
	DB *gorm.DB
}

func NewAuthorController(db *gorm.DB) *AuthorController {
	return &AuthorController{DB: db}
}

var authorSortWhitelist = map[string]string{
	"name":       "author_name",
	"email":      "author_email",
	"created_at": "author_created_at",
	"updated_at": "author_updated_at",
}

// =============================
// ➕ Create Author
// =============================
func (ctrl *AuthorController) CreateAuthor(c *fiber.Ctx) error {
	var body dto.CreateAuthorRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuthor.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	author := model.AuthorModel{
		AuthorName:        strings.TrimSpace(body.AuthorName),
		AuthorEmail:       strings.ToLower(strings.TrimSpace(body.AuthorEmail)),
		AuthorPhone:       body.AuthorPhone,
		AuthorBio:         body.AuthorBio,
		AuthorSpecialties: pq.StringArray(body.AuthorSpecialties),
		AuthorIsActive:    true,
	}
	if author.AuthorSpecialties == nil {
		author.AuthorSpecialties = pq.StringArray{}
	}

	if err := ctrl.DB.Create(&author).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate") {
			return fiber.NewError(fiber.StatusConflict, "Author email already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create author")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Author created", dto.ToAuthorDTO(author))
}

// =============================
// 🔄 Update Author
// =============================
func (ctrl *AuthorController) UpdateAuthor(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateAuthorRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuthor.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var author model.AuthorModel
	if err := ctrl.DB.First(&author, "author_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Author not found")
	}

	author.AuthorName = strings.TrimSpace(body.AuthorName)
	author.AuthorEmail = strings.ToLower(strings.TrimSpace(body.AuthorEmail))
	author.AuthorPhone = body.AuthorPhone
	author.AuthorBio = body.AuthorBio
	if body.AuthorSpecialties != nil {
		author.AuthorSpecialties = pq.StringArray(body.AuthorSpecialties)
	}
	if body.AuthorIsActive != nil {
		author.AuthorIsActive = *body.AuthorIsActive
	}

	if err := ctrl.DB.Save(&author).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate") {
			return fiber.NewError(fiber.StatusConflict, "Author email already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update author")
	}

	return helper.Success(c, "Author updated", dto.ToAuthorDTO(author))
}

// =============================
// 🗑️ Delete Author (blocked while articles exist)
// =============================
func (ctrl *AuthorController) DeleteAuthor(c *fiber.Ctx) error {
	id := c.Params("id")

	var articleCount int64
	if err := ctrl.DB.Table("articles").
		Where("article_author_id = ? AND article_deleted_at IS NULL", id).
		Count(&articleCount).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check author articles")
	}
	if articleCount > 0 {
		return fiber.NewError(fiber.StatusConflict, "Author still has articles and cannot be deleted")
	}

	if err := ctrl.DB.Delete(&model.AuthorModel{}, "author_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete author")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// =============================
// 📄 Get All Authors (paginated)
// =============================
func (ctrl *AuthorController) GetAllAuthors(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	q := ctrl.DB.Model(&model.AuthorModel{})

	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + search + "%"
		q = q.Where("author_name ILIKE ? OR author_email ILIKE ?", like, like)
	}
	if active := c.Query("active"); active != "" {
		q = q.Where("author_is_active = ?", active == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count authors")
	}

	order, err := p.SafeOrderClause(authorSortWhitelist, "created_at")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid sort key")
	}

	var authors []model.AuthorModel
	if err := q.
		Order(strings.TrimPrefix(order, "ORDER BY ")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&authors).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve authors")
	}

	result := make([]dto.AuthorDTO, 0, len(authors))
	for _, a := range authors {
		result = append(result, dto.ToAuthorDTO(a))
	}

	return c.JSON(fiber.Map{
		"data": result,
		"meta": helper.BuildMeta(total, p),
	})
}

// =============================
// 🔍 Get Author By ID (+ per-status article counts)
// =============================
func (ctrl *AuthorController) GetAuthorByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var author model.AuthorModel
	if err := ctrl.DB.First(&author, "author_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Author not found")
	}

	var counts []dto.AuthorStatusCount
	if err := ctrl.DB.Table("articles").
		Select("article_status AS status, COUNT(*) AS count").
		Where("article_author_id = ? AND article_deleted_at IS NULL", id).
		Group("article_status").
		Scan(&counts).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count articles")
	}
	if counts == nil {
		counts = []dto.AuthorStatusCount{}
	}

	return helper.Success(c, "OK", dto.AuthorDetailDTO{
		AuthorDTO:     dto.ToAuthorDTO(author),
		ArticleCounts: counts,
	})
}
