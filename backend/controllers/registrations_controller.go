package controllers

import (
	"academy/backend/config"
	"academy/backend/models"
	"academy/backend/utils"
	"academy/schema"
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type RegistrationsController struct {
	DB  *gorm.DB
	Cfg *config.Config
	Log zerolog.Logger
}

func NewRegistrationsController(db *gorm.DB, cfg *config.Config, log zerolog.Logger) *RegistrationsController {
	return &RegistrationsController{DB: db, Cfg: cfg, Log: log}
}

// CreateRegistration godoc
// @Summary Register for a course
// @Description Public registration form. agreeTerms must be true; status always starts as pending.
// @Tags registrations
// @Accept json
// @Produce json
// @Param input body schema.RegistrationInput true "Applicant data"
// @Success 201 {object} utils.SuccessResponse{data=models.Registration}
// @Failure 422 {object} utils.ErrorResponse
// @Router /registrations [post]
func (rc *RegistrationsController) CreateRegistration(c *fiber.Ctx) error {
	var input schema.RegistrationInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if !input.AgreeTerms {
		return utils.ValidationError(c, map[string]string{"agreeTerms": schema.TermsMessage})
	}
	if fields := utils.Validate(input); fields != nil {
		return utils.ValidationError(c, fields)
	}

	var count int64
	if err := rc.DB.Model(&models.Course{}).Where("id = ?", input.CourseID).Count(&count).Error; err != nil {
		rc.Log.Error().Err(err).Msg("check course for registration")
		return utils.InternalServerError(c, "Could not query database")
	}
	if count == 0 {
		return utils.ValidationError(c, map[string]string{"courseId": "unknown course"})
	}

	registration := models.Registration{
		FirstName:        input.FirstName,
		LastName:         input.LastName,
		Email:            input.Email,
		Phone:            input.Phone,
		Country:          input.Country,
		CourseID:         input.CourseID,
		ExperienceLevel:  input.ExperienceLevel,
		Goals:            input.Goals,
		Newsletter:       input.Newsletter,
		AgreeTerms:       input.AgreeTerms,
		Status:           models.StatusPending,
		RegistrationDate: time.Now().UTC(),
	}
	if err := rc.DB.Create(&registration).Error; err != nil {
		rc.Log.Error().Err(err).Msg("create registration")
		return utils.InternalServerError(c, "Could not create registration")
	}

	rc.Log.Info().Uint("registration_id", registration.ID).Str("course_id", registration.CourseID).Msg("new registration")
	return utils.Created(c, registration)
}

// ListRegistrations godoc
// @Summary List registrations
// @Description Newest first
// @Tags registrations
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]models.Registration}
// @Failure 401 {object} utils.ErrorResponse
// @Security SessionCookie
// @Router /registrations [get]
func (rc *RegistrationsController) ListRegistrations(c *fiber.Ctx) error {
	registrations := []models.Registration{}
	if err := rc.DB.Order("registration_date DESC, id DESC").Find(&registrations).Error; err != nil {
		rc.Log.Error().Err(err).Msg("list registrations")
		return utils.InternalServerError(c, "Could not fetch registrations")
	}
	return utils.Success(c, fiber.StatusOK, registrations)
}

// UpdateRegistrationStatus godoc
// @Summary Change registration status
// @Tags registrations
// @Accept json
// @Produce json
// @Param id path int true "Registration ID"
// @Param input body schema.StatusInput true "New status"
// @Success 200 {object} utils.SuccessResponse{data=models.Registration}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Security SessionCookie
// @Router /registrations/{id}/status [patch]
func (rc *RegistrationsController) UpdateRegistrationStatus(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return utils.BadRequest(c, "Invalid registration ID")
	}

	var input schema.StatusInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if fields := utils.Validate(input); fields != nil {
		return utils.ValidationError(c, fields)
	}

	var registration models.Registration
	if err := rc.DB.First(&registration, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Registration not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	registration.Status = input.Status
	if err := rc.DB.Model(&registration).Update("status", input.Status).Error; err != nil {
		rc.Log.Error().Err(err).Int("registration_id", id).Msg("update registration status")
		return utils.InternalServerError(c, "Could not update registration")
	}
	return utils.Success(c, fiber.StatusOK, registration)
}
