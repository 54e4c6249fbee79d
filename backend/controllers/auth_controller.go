package controllers

import (
	"academy/backend/config"
	"academy/backend/middleware"
	"academy/backend/models"
	"academy/backend/utils"
	"academy/schema"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	DB  *gorm.DB
	Cfg *config.Config
	Log zerolog.Logger
}

func NewAuthController(db *gorm.DB, cfg *config.Config, log zerolog.Logger) *AuthController {
	return &AuthController{DB: db, Cfg: cfg, Log: log}
}

// Login godoc
// @Summary Admin login
// @Description Checks the credentials and sets the session cookie
// @Tags admin
// @Accept json
// @Produce json
// @Param request body schema.LoginInput true "Login credentials"
// @Success 200 {object} utils.SuccessResponse{data=models.AdminUser}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /admin/login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var input schema.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if fields := utils.Validate(input); fields != nil {
		return utils.ValidationError(c, fields)
	}

	var admin models.AdminUser
	if err := ac.DB.Where("username = ?", input.Username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Unauthorized(c, "Invalid credentials")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(input.Password)); err != nil {
		ac.Log.Warn().Str("username", input.Username).Msg("failed admin login")
		return utils.Unauthorized(c, "Invalid credentials")
	}

	token, expires, err := utils.GenerateSessionToken(admin.ID, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate session")
	}
	utils.SetSessionCookie(c, ac.Cfg, token, expires)

	now := time.Now().UTC()
	admin.LastLoginAt = &now
	if err := ac.DB.Model(&admin).Update("last_login_at", now).Error; err != nil {
		ac.Log.Warn().Err(err).Uint("admin_id", admin.ID).Msg("record last login")
	}

	return utils.Success(c, fiber.StatusOK, admin)
}

// Logout godoc
// @Summary Admin logout
// @Description Clears the session cookie
// @Tags admin
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /admin/logout [post]
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	utils.ClearSessionCookie(c, ac.Cfg)
	return utils.Message(c, "Logged out")
}

// Me godoc
// @Summary Current admin
// @Tags admin
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=models.AdminUser}
// @Failure 401 {object} utils.ErrorResponse
// @Security SessionCookie
// @Router /admin/me [get]
func (ac *AuthController) Me(c *fiber.Ctx) error {
	admin := middleware.CurrentAdmin(c)
	if admin == nil {
		return utils.Unauthorized(c, "Unauthorized")
	}
	return utils.Success(c, fiber.StatusOK, admin)
}
