package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	articleModel "majalahku_backend/internals/features/editorial/articles/model"
	"majalahku_backend/internals/features/publication/issues/dto"
	"majalahku_backend/internals/features/publication/issues/model"
	helper "majalahku_backend/internals/helpers"
)

// ============ ➕ Create Issue (nested under volume) ============
func (ctrl *VolumeController) CreateIssue(c *fiber.Ctx) error {
	volume, err := ctrl.loadVolume(c.Params("volume_id"))
	if err != nil {
		return err
	}

	var body dto.CreateIssueRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateVolume.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	issue := model.IssueModel{
		IssueVolumeID:        volume.VolumeID,
		IssueNumber:          body.IssueNumber,
		IssueTitle:           body.IssueTitle,
		IssuePublicationDate: body.IssuePublicationDate,
		IssueCoverURL:        body.IssueCoverURL,
	}
	if err := ctrl.DB.Create(&issue).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return helper.Error(c, fiber.StatusConflict, "Issue number already exists in this volume")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create issue")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Issue created", dto.ToIssueDTO(issue, 0))
}

// ============ 📋 List Issues of a Volume ============
func (ctrl *VolumeController) GetVolumeIssues(c *fiber.Ctx) error {
	volume, err := ctrl.loadVolume(c.Params("volume_id"))
	if err != nil {
		return err
	}

	var issues []model.IssueModel
	if err := ctrl.DB.
		Where("issue_volume_id = ?", volume.VolumeID).
		Order("issue_number ASC").
		Find(&issues).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list issues")
	}

	out := make([]dto.IssueDTO, 0, len(issues))
	for _, issue := range issues {
		out = append(out, dto.ToIssueDTO(issue, ctrl.countIssueArticles(issue.IssueID)))
	}
	return helper.Success(c, "Issues fetched", out)
}

// ============ 🔍 Issue Detail (with articles) ============
func (ctrl *VolumeController) GetIssueByID(c *fiber.Ctx) error {
	issue, err := ctrl.loadIssue(c.Params("id"))
	if err != nil {
		return err
	}

	var articles []articleModel.ArticleModel
	if err := ctrl.DB.
		Where("article_issue_id = ?", issue.IssueID).
		Order("article_title ASC").
		Find(&articles).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load issue articles")
	}

	return helper.Success(c, "Issue fetched", fiber.Map{
		"issue":    dto.ToIssueDTO(*issue, int64(len(articles))),
		"articles": articles,
	})
}

// ============ ✏️ Update Issue ============
func (ctrl *VolumeController) UpdateIssue(c *fiber.Ctx) error {
	issue, err := ctrl.loadIssue(c.Params("id"))
	if err != nil {
		return err
	}

	var body dto.UpdateIssueRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateVolume.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	if body.IssueNumber != nil {
		issue.IssueNumber = *body.IssueNumber
	}
	if body.IssueTitle != nil {
		issue.IssueTitle = body.IssueTitle
	}
	if body.IssuePublicationDate != nil {
		issue.IssuePublicationDate = body.IssuePublicationDate
	}
	if body.IssueCoverURL != nil {
		issue.IssueCoverURL = body.IssueCoverURL
	}

	if err := ctrl.DB.Save(issue).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return helper.Error(c, fiber.StatusConflict, "Issue number already exists in this volume")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update issue")
	}

	return helper.Success(c, "Issue updated", dto.ToIssueDTO(*issue, ctrl.countIssueArticles(issue.IssueID)))
}

// ============ 🗑️ Delete Issue ============
func (ctrl *VolumeController) DeleteIssue(c *fiber.Ctx) error {
	issue, err := ctrl.loadIssue(c.Params("id"))
	if err != nil {
		return err
	}

	if n := ctrl.countIssueArticles(issue.IssueID); n > 0 {
		return helper.Error(c, fiber.StatusConflict, "Issue still has assigned articles")
	}

	if err := ctrl.DB.Delete(issue).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete issue")
	}
	return helper.Success(c, "Issue deleted", fiber.Map{"issue_id": issue.IssueID})
}

// ============ 🔗 Assign / Unassign Article ============
func (ctrl *VolumeController) AssignArticle(c *fiber.Ctx) error {
	issue, err := ctrl.loadIssue(c.Params("id"))
	if err != nil {
		return err
	}

	var body dto.AssignArticleRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateVolume.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	result := ctrl.DB.Model(&articleModel.ArticleModel{}).
		Where("article_id = ?", body.ArticleID).
		Update("article_issue_id", issue.IssueID)
	if result.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to assign article")
	}
	if result.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Article not found")
	}

	return helper.Success(c, "Article assigned to issue", fiber.Map{
		"issue_id":   issue.IssueID,
		"article_id": body.ArticleID,
	})
}

func (ctrl *VolumeController) UnassignArticle(c *fiber.Ctx) error {
	issue, err := ctrl.loadIssue(c.Params("id"))
	if err != nil {
		return err
	}
	articleID, err := uuid.Parse(c.Params("article_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid article ID")
	}

	result := ctrl.DB.Model(&articleModel.ArticleModel{}).
		Where("article_id = ? AND article_issue_id = ?", articleID, issue.IssueID).
		Update("article_issue_id", nil)
	if result.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to unassign article")
	}
	if result.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Article is not assigned to this issue")
	}

	return helper.Success(c, "Article unassigned from issue", fiber.Map{
		"issue_id":   issue.IssueID,
		"article_id": articleID,
	})
}

func (ctrl *VolumeController) countIssueArticles(issueID uuid.UUID) int64 {
	var n int64
	ctrl.DB.Model(&articleModel.ArticleModel{}).
		Where("article_issue_id = ?", issueID).
		Count(&n)
	return n
}

func (ctrl *VolumeController) loadIssue(id string) (*model.IssueModel, error) {
	issueID, err := uuid.Parse(id)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid issue ID")
	}
	var issue model.IssueModel
	if err := ctrl.DB.First(&issue, "issue_id = ?", issueID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Issue not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load issue")
	}
	return &issue, nil
}
