package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"majalahku_backend/internals/features/publication/issues/dto"
	"majalahku_backend/internals/features/publication/issues/model"
	helper "majalahku_backend/internals/helpers"
)

type VolumeController struct {
	DB *gorm.DB
}

func NewVolumeController(db *gorm.DB) *VolumeController {
	return &VolumeController{DB: db}
}

var validateVolume = validator.New()

// ============ ➕ Create Volume ============
func (ctrl *VolumeController) CreateVolume(c *fiber.Ctx) error {
	var body dto.CreateVolumeRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateVolume.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	volume := model.VolumeModel{
		VolumeNumber: body.VolumeNumber,
		VolumeYear:   body.VolumeYear,
		VolumeTheme:  body.VolumeTheme,
	}
	if err := ctrl.DB.Create(&volume).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return helper.Error(c, fiber.StatusConflict, "Volume number already exists")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create volume")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Volume created", dto.ToVolumeDTO(volume, 0))
}

// ============ 📋 List Volumes ============
func (ctrl *VolumeController) GetAllVolumes(c *fiber.Ctx) error {
	var volumes []model.VolumeModel
	if err := ctrl.DB.Order("volume_number DESC").Find(&volumes).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list volumes")
	}

	type countRow struct {
		IssueVolumeID uuid.UUID
		N             int64
	}
	counts := map[uuid.UUID]int64{}
	var rows []countRow
	if err := ctrl.DB.Model(&model.IssueModel{}).
		Select("issue_volume_id, COUNT(*) AS n").
		Group("issue_volume_id").
		Scan(&rows).Error; err == nil {
		for _, r := range rows {
			counts[r.IssueVolumeID] = r.N
		}
	}

	out := make([]dto.VolumeDTO, 0, len(volumes))
	for _, v := range volumes {
		out = append(out, dto.ToVolumeDTO(v, counts[v.VolumeID]))
	}
	return helper.Success(c, "Volumes fetched", out)
}

// ============ ✏️ Update Volume ============
func (ctrl *VolumeController) UpdateVolume(c *fiber.Ctx) error {
	volume, err := ctrl.loadVolume(c.Params("id"))
	if err != nil {
		return err
	}

	var body dto.UpdateVolumeRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateVolume.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	if body.VolumeNumber != nil {
		volume.VolumeNumber = *body.VolumeNumber
	}
	if body.VolumeYear != nil {
		volume.VolumeYear = *body.VolumeYear
	}
	if body.VolumeTheme != nil {
		volume.VolumeTheme = body.VolumeTheme
	}

	if err := ctrl.DB.Save(volume).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return helper.Error(c, fiber.StatusConflict, "Volume number already exists")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update volume")
	}

	var issueCount int64
	ctrl.DB.Model(&model.IssueModel{}).Where("issue_volume_id = ?", volume.VolumeID).Count(&issueCount)

	return helper.Success(c, "Volume updated", dto.ToVolumeDTO(*volume, issueCount))
}

// ============ 🗑️ Delete Volume ============
//
// Cascades to its issues only when none of them hold articles.
func (ctrl *VolumeController) DeleteVolume(c *fiber.Ctx) error {
	volume, err := ctrl.loadVolume(c.Params("id"))
	if err != nil {
		return err
	}

	var assigned int64
	if err := ctrl.DB.Table("articles").
		Joins("JOIN issues ON issues.issue_id = articles.article_issue_id").
		Where("issues.issue_volume_id = ? AND articles.article_deleted_at IS NULL", volume.VolumeID).
		Count(&assigned).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to check volume usage")
	}
	if assigned > 0 {
		return helper.Error(c, fiber.StatusConflict, "Volume has issues with assigned articles")
	}

	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("issue_volume_id = ?", volume.VolumeID).
			Delete(&model.IssueModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(volume).Error
	})
	if txErr != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete volume")
	}

	return helper.Success(c, "Volume deleted", fiber.Map{"volume_id": volume.VolumeID})
}

func (ctrl *VolumeController) loadVolume(id string) (*model.VolumeModel, error) {
	volumeID, err := uuid.Parse(id)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid volume ID")
	}
	var volume model.VolumeModel
	if err := ctrl.DB.First(&volume, "volume_id = ?", volumeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Volume not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load volume")
	}
	return &volume, nil
}
