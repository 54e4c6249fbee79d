package controllers

import (
	"academy/backend/config"
	"academy/backend/models"
	"academy/backend/utils"
	"academy/schema"
	"academy/slug"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type CoursesController struct {
	DB  *gorm.DB
	Cfg *config.Config
	Log zerolog.Logger
}

func NewCoursesController(db *gorm.DB, cfg *config.Config, log zerolog.Logger) *CoursesController {
	return &CoursesController{DB: db, Cfg: cfg, Log: log}
}

// ListCourses godoc
// @Summary List courses
// @Description Returns the full course catalog, oldest first
// @Tags courses
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]models.Course}
// @Failure 500 {object} utils.ErrorResponse
// @Router /courses [get]
func (cc *CoursesController) ListCourses(c *fiber.Ctx) error {
	courses := []models.Course{}
	if err := cc.DB.Order("created_at ASC, id ASC").Find(&courses).Error; err != nil {
		cc.Log.Error().Err(err).Msg("list courses")
		return utils.InternalServerError(c, "Could not fetch courses")
	}
	return utils.Success(c, fiber.StatusOK, courses)
}

// GetCourse godoc
// @Summary Get course
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} utils.SuccessResponse{data=models.Course}
// @Failure 404 {object} utils.ErrorResponse
// @Router /courses/{id} [get]
func (cc *CoursesController) GetCourse(c *fiber.Ctx) error {
	course, err := cc.find(c.Params("id"))
	if err != nil {
		return cc.lookupError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, course)
}

// CreateCourse godoc
// @Summary Create course
// @Description Creates a course. A blank id is derived from the title plus a time suffix.
// @Tags courses
// @Accept json
// @Produce json
// @Param input body schema.CourseInput true "Course data"
// @Success 201 {object} utils.SuccessResponse{data=models.Course}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Security SessionCookie
// @Router /courses [post]
func (cc *CoursesController) CreateCourse(c *fiber.Ctx) error {
	var input schema.CourseInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	input.ID = strings.TrimSpace(input.ID)
	if fields := utils.Validate(input); fields != nil {
		return utils.ValidationError(c, fields)
	}
	if input.ID == "" {
		input.ID = slug.CourseID(input.Title, time.Now())
	}

	course := models.Course{ID: input.ID}
	input.Apply(&course)

	err := cc.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Course{}).Where("id = ?", course.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return gorm.ErrDuplicatedKey
		}
		return tx.Create(&course).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return utils.Conflict(c, "A course with this id already exists")
	}
	if err != nil {
		cc.Log.Error().Err(err).Str("course_id", course.ID).Msg("create course")
		return utils.InternalServerError(c, "Could not create course")
	}

	return utils.Created(c, course)
}

// UpdateCourse godoc
// @Summary Update course
// @Description Partially updates a course. The id cannot be changed.
// @Tags courses
// @Accept json
// @Produce json
// @Param id path string true "Course ID"
// @Param input body schema.CourseInput true "Fields to change"
// @Success 200 {object} utils.SuccessResponse{data=models.Course}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Security SessionCookie
// @Router /courses/{id} [patch]
func (cc *CoursesController) UpdateCourse(c *fiber.Ctx) error {
	course, err := cc.find(c.Params("id"))
	if err != nil {
		return cc.lookupError(c, err)
	}

	// absent fields keep their stored values
	input := schema.CourseInputFrom(course)
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	input.ID = course.ID
	if fields := utils.Validate(input); fields != nil {
		return utils.ValidationError(c, fields)
	}

	input.Apply(&course)
	if err := cc.DB.Save(&course).Error; err != nil {
		cc.Log.Error().Err(err).Str("course_id", course.ID).Msg("update course")
		return utils.InternalServerError(c, "Could not update course")
	}
	return utils.Success(c, fiber.StatusOK, course)
}

// DeleteCourse godoc
// @Summary Delete course
// @Tags courses
// @Param id path string true "Course ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Security SessionCookie
// @Router /courses/{id} [delete]
func (cc *CoursesController) DeleteCourse(c *fiber.Ctx) error {
	result := cc.DB.Where("id = ?", c.Params("id")).Delete(&models.Course{})
	if result.Error != nil {
		cc.Log.Error().Err(result.Error).Str("course_id", c.Params("id")).Msg("delete course")
		return utils.InternalServerError(c, "Could not delete course")
	}
	if result.RowsAffected == 0 {
		return utils.NotFound(c, "Course not found")
	}
	return utils.NoContent(c)
}

func (cc *CoursesController) find(id string) (models.Course, error) {
	var course models.Course
	err := cc.DB.Where("id = ?", id).First(&course).Error
	return course, err
}

func (cc *CoursesController) lookupError(c *fiber.Ctx, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.NotFound(c, "Course not found")
	}
	cc.Log.Error().Err(err).Msg("find course")
	return utils.InternalServerError(c, "Could not query database")
}
