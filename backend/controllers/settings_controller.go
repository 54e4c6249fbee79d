package controllers

import (
	"academy/backend/config"
	"academy/backend/models"
	"academy/backend/utils"
	"academy/schema"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type SettingsController struct {
	DB  *gorm.DB
	Cfg *config.Config
	Log zerolog.Logger
}

func NewSettingsController(db *gorm.DB, cfg *config.Config, log zerolog.Logger) *SettingsController {
	return &SettingsController{DB: db, Cfg: cfg, Log: log}
}

// ListSettings godoc
// @Summary List website settings
// @Tags settings
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]models.WebsiteSetting}
// @Router /website-settings [get]
func (sc *SettingsController) ListSettings(c *fiber.Ctx) error {
	settings := []models.WebsiteSetting{}
	if err := sc.DB.Order("key ASC").Find(&settings).Error; err != nil {
		sc.Log.Error().Err(err).Msg("list settings")
		return utils.InternalServerError(c, "Could not fetch settings")
	}
	return utils.Success(c, fiber.StatusOK, settings)
}

// CreateSetting godoc
// @Summary Create website setting
// @Description Keys are unique. The value must parse as the declared type.
// @Tags settings
// @Accept json
// @Produce json
// @Param input body schema.SettingInput true "Setting"
// @Success 201 {object} utils.SuccessResponse{data=models.WebsiteSetting}
// @Failure 409 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Security SessionCookie
// @Router /website-settings [post]
func (sc *SettingsController) CreateSetting(c *fiber.Ctx) error {
	input := schema.NewSettingInput()
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	input.Key = strings.TrimSpace(input.Key)
	if fields := utils.Validate(input); fields != nil {
		return utils.ValidationError(c, fields)
	}
	if msg := schema.SettingValue(input.Type, input.Value); msg != "" {
		return utils.ValidationError(c, map[string]string{"value": msg})
	}

	setting := models.WebsiteSetting{
		Key:         input.Key,
		Value:       input.Value,
		Type:        input.Type,
		Description: input.Description,
	}
	err := sc.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.WebsiteSetting{}).Where("key = ?", setting.Key).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return gorm.ErrDuplicatedKey
		}
		return tx.Create(&setting).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return utils.Conflict(c, "A setting with this key already exists")
	}
	if err != nil {
		sc.Log.Error().Err(err).Str("key", setting.Key).Msg("create setting")
		return utils.InternalServerError(c, "Could not create setting")
	}
	return utils.Created(c, setting)
}

// UpdateSetting godoc
// @Summary Update a setting value
// @Description Only the value can change; key and type are fixed at creation.
// @Tags settings
// @Accept json
// @Produce json
// @Param key path string true "Setting key"
// @Param input body schema.SettingValueInput true "New value"
// @Success 200 {object} utils.SuccessResponse{data=models.WebsiteSetting}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Security SessionCookie
// @Router /website-settings/{key} [patch]
func (sc *SettingsController) UpdateSetting(c *fiber.Ctx) error {
	var setting models.WebsiteSetting
	if err := sc.DB.Where("key = ?", c.Params("key")).First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Setting not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	var input schema.SettingValueInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if fields := utils.Validate(input); fields != nil {
		return utils.ValidationError(c, fields)
	}
	if msg := schema.SettingValue(setting.Type, input.Value); msg != "" {
		return utils.ValidationError(c, map[string]string{"value": msg})
	}

	setting.Value = input.Value
	if err := sc.DB.Save(&setting).Error; err != nil {
		sc.Log.Error().Err(err).Str("key", setting.Key).Msg("update setting")
		return utils.InternalServerError(c, "Could not update setting")
	}
	return utils.Success(c, fiber.StatusOK, setting)
}
