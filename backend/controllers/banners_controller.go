package controllers

import (
	"academy/backend/config"
	"academy/backend/models"
	"academy/backend/utils"
	"academy/schema"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type BannersController struct {
	DB  *gorm.DB
	Cfg *config.Config
	Log zerolog.Logger
}

func NewBannersController(db *gorm.DB, cfg *config.Config, log zerolog.Logger) *BannersController {
	return &BannersController{DB: db, Cfg: cfg, Log: log}
}

// ListBanners godoc
// @Summary List banners
// @Description Ordered by displayOrder. active=true restricts the list to active banners.
// @Tags banners
// @Produce json
// @Param active query bool false "Only active banners"
// @Success 200 {object} utils.SuccessResponse{data=[]models.Banner}
// @Router /banners [get]
func (bc *BannersController) ListBanners(c *fiber.Ctx) error {
	query := bc.DB.Model(&models.Banner{})
	if c.QueryBool("active") {
		query = query.Where("is_active = ?", true)
	}

	banners := []models.Banner{}
	if err := query.Order("display_order ASC, id ASC").Find(&banners).Error; err != nil {
		bc.Log.Error().Err(err).Msg("list banners")
		return utils.InternalServerError(c, "Could not fetch banners")
	}
	return utils.Success(c, fiber.StatusOK, banners)
}

// CreateBanner godoc
// @Summary Create banner
// @Tags banners
// @Accept json
// @Produce json
// @Param input body schema.BannerInput true "Banner data"
// @Success 201 {object} utils.SuccessResponse{data=models.Banner}
// @Failure 422 {object} utils.ErrorResponse
// @Security SessionCookie
// @Router /banners [post]
func (bc *BannersController) CreateBanner(c *fiber.Ctx) error {
	input := schema.NewBannerInput()
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	input.Normalize()
	if fields := utils.Validate(input); fields != nil {
		return utils.ValidationError(c, fields)
	}

	var banner models.Banner
	input.Apply(&banner)
	if err := bc.DB.Create(&banner).Error; err != nil {
		bc.Log.Error().Err(err).Msg("create banner")
		return utils.InternalServerError(c, "Could not create banner")
	}
	return utils.Created(c, banner)
}

// UpdateBanner godoc
// @Summary Update banner
// @Tags banners
// @Accept json
// @Produce json
// @Param id path int true "Banner ID"
// @Param input body schema.BannerInput true "Fields to change"
// @Success 200 {object} utils.SuccessResponse{data=models.Banner}
// @Failure 404 {object} utils.ErrorResponse
// @Security SessionCookie
// @Router /banners/{id} [patch]
func (bc *BannersController) UpdateBanner(c *fiber.Ctx) error {
	banner, err := bc.find(c)
	if err != nil {
		return err
	}

	input := schema.BannerInputFrom(banner)
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	input.Normalize()
	if fields := utils.Validate(input); fields != nil {
		return utils.ValidationError(c, fields)
	}

	input.Apply(&banner)
	if err := bc.DB.Save(&banner).Error; err != nil {
		bc.Log.Error().Err(err).Uint("banner_id", banner.ID).Msg("update banner")
		return utils.InternalServerError(c, "Could not update banner")
	}
	return utils.Success(c, fiber.StatusOK, banner)
}

// DeleteBanner godoc
// @Summary Delete banner
// @Tags banners
// @Param id path int true "Banner ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Security SessionCookie
// @Router /banners/{id} [delete]
func (bc *BannersController) DeleteBanner(c *fiber.Ctx) error {
	banner, err := bc.find(c)
	if err != nil {
		return err
	}
	if err := bc.DB.Delete(&banner).Error; err != nil {
		bc.Log.Error().Err(err).Uint("banner_id", banner.ID).Msg("delete banner")
		return utils.InternalServerError(c, "Could not delete banner")
	}
	return utils.NoContent(c)
}

// find loads the banner named by the :id param. Its errors are *fiber.Error
// values rendered by utils.ErrorHandler.
func (bc *BannersController) find(c *fiber.Ctx) (models.Banner, error) {
	var banner models.Banner
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return banner, fiber.NewError(fiber.StatusBadRequest, "Invalid banner ID")
	}
	if err := bc.DB.First(&banner, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return banner, fiber.NewError(fiber.StatusNotFound, "Banner not found")
		}
		bc.Log.Error().Err(err).Int("banner_id", id).Msg("find banner")
		return banner, fiber.NewError(fiber.StatusInternalServerError, "Could not query database")
	}
	return banner, nil
}
