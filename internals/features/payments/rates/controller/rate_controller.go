package controller

import (
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"majalahku_backend/internals/features/payments/rates/dto"
	"majalahku_backend/internals/features/payments/rates/model"
	helper "majalahku_backend/internals/helpers"
	authMiddleware "majalahku_backend/internals/middlewares/auth"
)

type RateController struct {
	DB *gorm.DB
}

func NewRateController(db *gorm.DB) *RateController {
	return &RateController{DB: db}
}

var validateRate = validator.New()

// ============ 📋 List Rates ============
func (ctrl *RateController) GetAllRates(c *fiber.Ctx) error {
	query := ctrl.DB.Order("payment_rate_tier ASC, payment_rate_effective_from DESC")
	if c.Query("active") == "true" {
		query = query.Where("payment_rate_is_active = TRUE")
	}

	var rates []model.PaymentRateModel
	if err := query.Find(&rates).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list payment rates")
	}
	return helper.Success(c, "Payment rates fetched", dto.ToPaymentRateDTOs(rates))
}

// ============ 💾 Upsert Rate (per tier) ============
//
// One active card per tier. Upserting writes the card and an audit history
// row in the same transaction.
func (ctrl *RateController) UpsertRate(c *fiber.Ctx) error {
	userID, err := authMiddleware.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var body dto.UpsertRateRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateRate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	newBonuses, err := sonic.Marshal(body.PaymentRateBonuses)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid bonus map")
	}

	var saved model.PaymentRateModel
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var existing model.PaymentRateModel
		findErr := tx.
			Where("payment_rate_tier = ? AND payment_rate_is_active = TRUE", body.PaymentRateTier).
			First(&existing).Error

		history := model.PaymentRateHistoryModel{
			PaymentRateHistoryTier:       body.PaymentRateTier,
			PaymentRateHistoryNewCents:   body.PaymentRateCents,
			PaymentRateHistoryNewBonuses: datatypes.JSON(newBonuses),
			PaymentRateHistoryChangedBy:  userID,
		}

		switch {
		case findErr == nil:
			oldCents := existing.PaymentRateCents
			history.PaymentRateHistoryOldCents = &oldCents
			history.PaymentRateHistoryOldBonuses = existing.PaymentRateBonuses

			existing.PaymentRateCents = body.PaymentRateCents
			existing.PaymentRateBonuses = datatypes.JSON(newBonuses)
			existing.PaymentRateEffectiveFrom = time.Now()
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
			saved = existing

		case errors.Is(findErr, gorm.ErrRecordNotFound):
			saved = model.PaymentRateModel{
				PaymentRateTier:          body.PaymentRateTier,
				PaymentRateCents:         body.PaymentRateCents,
				PaymentRateBonuses:       datatypes.JSON(newBonuses),
				PaymentRateEffectiveFrom: time.Now(),
				PaymentRateIsActive:      true,
			}
			if err := tx.Create(&saved).Error; err != nil {
				return err
			}

		default:
			return findErr
		}

		history.PaymentRateHistoryRateID = saved.PaymentRateID
		return tx.Create(&history).Error
	})
	if txErr != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save payment rate")
	}

	return helper.Success(c, "Payment rate saved", dto.ToPaymentRateDTO(saved))
}

// ============ 🚫 Deactivate Rate ============
func (ctrl *RateController) DeactivateRate(c *fiber.Ctx) error {
	tier := c.Params("tier")

	result := ctrl.DB.Model(&model.PaymentRateModel{}).
		Where("payment_rate_tier = ? AND payment_rate_is_active = TRUE", tier).
		Update("payment_rate_is_active", false)
	if result.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to deactivate payment rate")
	}
	if result.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "No active rate for tier")
	}

	return helper.Success(c, "Payment rate deactivated", fiber.Map{
		"payment_rate_tier": tier,
	})
}

// ============ 📜 Rate History ============
func (ctrl *RateController) GetRateHistory(c *fiber.Ctx) error {
	query := ctrl.DB.Order("payment_rate_history_created_at DESC")
	if tier := c.Query("tier"); tier != "" {
		query = query.Where("payment_rate_history_tier = ?", tier)
	}

	var rows []model.PaymentRateHistoryModel
	if err := query.Limit(200).Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list rate history")
	}
	return helper.Success(c, "Rate history fetched", rows)
}
