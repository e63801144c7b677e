package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"majalahku_backend/internals/features/users/auth/dto"
	"majalahku_backend/internals/features/users/auth/service"
	helper "majalahku_backend/internals/helpers"
)

var validateAuth = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// =============================
// ➕ Register
// =============================
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var body dto.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}
	return service.Register(ctrl.DB, c, body)
}

// =============================
// 🔑 Login
// =============================
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}
	return service.Login(ctrl.DB, c, body)
}

// =============================
// 🔑 Login with Google
// =============================
func (ctrl *AuthController) LoginGoogle(c *fiber.Ctx) error {
	var body dto.GoogleLoginRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}
	return service.LoginGoogle(ctrl.DB, c, body)
}

// =============================
// 🔄 Refresh token
// =============================
func (ctrl *AuthController) Refresh(c *fiber.Ctx) error {
	var body dto.RefreshRequest
	if err := c.BodyParser(&body); err != nil {
		// cookie fallback
		if tok := c.Cookies("refresh_token"); tok != "" {
			body.RefreshToken = tok
		} else {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
	}
	if body.RefreshToken == "" {
		if tok := c.Cookies("refresh_token"); tok != "" {
			body.RefreshToken = tok
		}
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}
	return service.Refresh(ctrl.DB, c, body)
}

// =============================
// 🚪 Logout
// =============================
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	return service.Logout(ctrl.DB, c)
}
