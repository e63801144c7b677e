package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"majalahku_backend/internals/features/editorial/articles/dto"
	"majalahku_backend/internals/features/editorial/articles/model"
	helper "majalahku_backend/internals/helpers"
)

var validateArticle = validator.New()

type ArticleController struct {
	DB *gorm.DB
}

func NewArticleController(db *gorm.DB) *ArticleController {
	return &ArticleController{DB: db}
}

var articleSortWhitelist = map[string]string{
	"title":        "article_title",
	"status":       "article_status",
	"tier":         "article_tier",
	"submitted_at": "article_submitted_at",
	"published_at": "article_published_at",
	"created_at":   "article_created_at",
	"updated_at":   "article_updated_at",
}

func countWords(s *string) int {
	if s == nil {
		return 0
	}
	return len(strings.Fields(*s))
}

// =============================
// ➕ Create Article (status starts at draft)
// =============================
func (ctrl *ArticleController) CreateArticle(c *fiber.Ctx) error {
	var body dto.CreateArticleRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateArticle.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	authorID, err := uuid.Parse(body.ArticleAuthorID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid author id")
	}

	var authorCount int64
	if err := ctrl.DB.Table("authors").
		Where("author_id = ? AND author_deleted_at IS NULL", authorID).
		Count(&authorCount).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check author")
	}
	if authorCount == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Author not found")
	}

	slug, err := helper.GenerateUniqueSlug(ctrl.DB, helper.SlugOptions{
		Table:            "articles",
		SlugColumn:       "article_slug",
		SoftDeleteColumn: "article_deleted_at",
		DefaultBase:      "article",
	}, body.ArticleTitle)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate slug")
	}

	tier := body.ArticleTier
	if tier == "" {
		tier = model.TierStandard
	}

	article := model.ArticleModel{
		ArticleAuthorID:  authorID,
		ArticleTitle:     strings.TrimSpace(body.ArticleTitle),
		ArticleSlug:      slug,
		ArticleSummary:   body.ArticleSummary,
		ArticleBody:      body.ArticleBody,
		ArticleKeywords:  pq.StringArray(body.ArticleKeywords),
		ArticleStatus:    model.StatusDraft,
		ArticleTier:      tier,
		ArticleWordCount: countWords(body.ArticleBody),
	}
	if article.ArticleKeywords == nil {
		article.ArticleKeywords = pq.StringArray{}
	}

	if err := ctrl.DB.Create(&article).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create article")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Article created", dto.ToArticleDTO(article))
}

// =============================
// 🔄 Update Article (content fields; status goes through /transition)
// =============================
func (ctrl *ArticleController) UpdateArticle(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateArticleRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateArticle.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var article model.ArticleModel
	if err := ctrl.DB.First(&article, "article_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Article not found")
	}

	if article.ArticleTitle != strings.TrimSpace(body.ArticleTitle) {
		slug, err := helper.GenerateUniqueSlug(ctrl.DB, helper.SlugOptions{
			Table:            "articles",
			SlugColumn:       "article_slug",
			SoftDeleteColumn: "article_deleted_at",
			DefaultBase:      "article",
		}, body.ArticleTitle)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate slug")
		}
		article.ArticleSlug = slug
	}

	article.ArticleTitle = strings.TrimSpace(body.ArticleTitle)
	article.ArticleSummary = body.ArticleSummary
	article.ArticleBody = body.ArticleBody
	article.ArticleWordCount = countWords(body.ArticleBody)
	if body.ArticleKeywords != nil {
		article.ArticleKeywords = pq.StringArray(body.ArticleKeywords)
	}
	if body.ArticleTier != "" {
		article.ArticleTier = body.ArticleTier
	}
	if body.ArticleBonusPhoto != nil {
		article.ArticleBonusPhoto = *body.ArticleBonusPhoto
	}
	if body.ArticleBonusRush != nil {
		article.ArticleBonusRush = *body.ArticleBonusRush
	}
	if body.ArticleBonusExclusive != nil {
		article.ArticleBonusExclusive = *body.ArticleBonusExclusive
	}

	if err := ctrl.DB.Save(&article).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update article")
	}

	return helper.Success(c, "Article updated", dto.ToArticleDTO(article))
}

// =============================
// 🗑️ Delete Article (soft; dependents cascade in DB)
// =============================
func (ctrl *ArticleController) DeleteArticle(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := ctrl.DB.Delete(&model.ArticleModel{}, "article_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete article")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// =============================
// 📄 Get All Articles (filters + pagination)
// =============================
func (ctrl *ArticleController) GetAllArticles(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	q := ctrl.DB.Model(&model.ArticleModel{})

	if status := c.Query("status"); status != "" {
		q = q.Where("article_status = ?", status)
	}
	if tier := c.Query("tier"); tier != "" {
		q = q.Where("article_tier = ?", tier)
	}
	if authorID := c.Query("author_id"); authorID != "" {
		q = q.Where("article_author_id = ?", authorID)
	}
	if issueID := c.Query("issue_id"); issueID != "" {
		q = q.Where("article_issue_id = ?", issueID)
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("article_title ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count articles")
	}

	order, err := p.SafeOrderClause(articleSortWhitelist, "created_at")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid sort key")
	}

	var articles []model.ArticleModel
	if err := q.
		Order(strings.TrimPrefix(order, "ORDER BY ")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&articles).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve articles")
	}

	result := make([]dto.ArticleDTO, 0, len(articles))
	for _, a := range articles {
		result = append(result, dto.ToArticleDTO(a))
	}

	return c.JSON(fiber.Map{
		"data": result,
		"meta": helper.BuildMeta(total, p),
	})
}

// =============================
// 🔍 Get Article By ID or slug
// =============================
func (ctrl *ArticleController) GetArticleByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var article model.ArticleModel
	q := ctrl.DB
	if _, err := uuid.Parse(id); err == nil {
		q = q.Where("article_id = ?", id)
	} else {
		q = q.Where("article_slug = ?", id)
	}
	if err := q.First(&article).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Article not found")
	}

	return helper.Success(c, "OK", dto.ToArticleDTO(article))
}
