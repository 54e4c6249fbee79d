package controllers

import (
	"academy/backend/config"
	"academy/backend/models"
	"academy/backend/utils"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type AnalyticsController struct {
	DB  *gorm.DB
	Cfg *config.Config
	Log zerolog.Logger
	// Now is replaced in tests.
	Now func() time.Time
}

func NewAnalyticsController(db *gorm.DB, cfg *config.Config, log zerolog.Logger) *AnalyticsController {
	return &AnalyticsController{DB: db, Cfg: cfg, Log: log, Now: time.Now}
}

// GetDashboardStats godoc
// @Summary Dashboard statistics
// @Description Aggregates registrations within an optional inclusive date range
// @Tags dashboard
// @Produce json
// @Param startDate query string false "YYYY-MM-DD"
// @Param endDate query string false "YYYY-MM-DD"
// @Success 200 {object} utils.SuccessResponse{data=models.DashboardStats}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security SessionCookie
// @Router /dashboard/stats [get]
func (ac *AnalyticsController) GetDashboardStats(c *fiber.Ctx) error {
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")

	query := ac.DB.Model(&models.Registration{})
	var start, end time.Time
	var err error
	if startDate != "" {
		start, err = time.Parse(dateLayout, startDate)
		if err != nil {
			return utils.BadRequest(c, "Invalid startDate format. Use YYYY-MM-DD")
		}
		query = query.Where("registration_date >= ?", start)
	}
	if endDate != "" {
		end, err = time.Parse(dateLayout, endDate)
		if err != nil {
			return utils.BadRequest(c, "Invalid endDate format. Use YYYY-MM-DD")
		}
		// endDate is inclusive
		query = query.Where("registration_date < ?", end.AddDate(0, 0, 1))
	}
	if startDate != "" && endDate != "" && start.After(end) {
		return utils.BadRequest(c, "startDate must not be after endDate")
	}

	var registrations []models.Registration
	if err := query.Find(&registrations).Error; err != nil {
		ac.Log.Error().Err(err).Msg("dashboard registrations")
		return utils.InternalServerError(c, "Failed to fetch registrations")
	}

	var courses []models.Course
	if err := ac.DB.Find(&courses).Error; err != nil {
		ac.Log.Error().Err(err).Msg("dashboard courses")
		return utils.InternalServerError(c, "Failed to fetch courses")
	}

	now := ac.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	var thisMonth int64
	if err := ac.DB.Model(&models.Registration{}).
		Where("registration_date >= ? AND registration_date < ?", monthStart, monthStart.AddDate(0, 1, 0)).
		Count(&thisMonth).Error; err != nil {
		ac.Log.Error().Err(err).Msg("dashboard monthly count")
		return utils.InternalServerError(c, "Failed to count registrations")
	}

	stats := ComputeDashboardStats(registrations, courses)
	stats.ThisMonthRegistrations = int(thisMonth)
	stats.StartDate = startDate
	stats.EndDate = endDate
	return utils.Success(c, fiber.StatusOK, stats)
}

// ComputeDashboardStats aggregates registrations already restricted to the
// requested range. ThisMonthRegistrations is left to the caller.
func ComputeDashboardStats(registrations []models.Registration, courses []models.Course) models.DashboardStats {
	byID := make(map[string]models.Course, len(courses))
	for _, course := range courses {
		byID[course.ID] = course
	}

	stats := models.DashboardStats{
		TotalRegistrations: len(registrations),
		ActiveCourses:      len(courses),
		RegistrationTrends: make([]int, 12),
		CoursePopularity:   []models.CoursePopularity{},
	}

	confirmed := 0
	counts := map[string]int{}
	for _, r := range registrations {
		stats.RegistrationTrends[r.RegistrationDate.Month()-1]++

		name := r.CourseID
		course, known := byID[r.CourseID]
		if known {
			name = course.Title
		}
		counts[name]++

		if r.Status == models.StatusConfirmed {
			confirmed++
			if known {
				stats.Revenue += parsePrice(course.Price)
			}
		}
	}

	if len(registrations) > 0 {
		stats.CompletionRate = int(math.Round(float64(confirmed) * 100 / float64(len(registrations))))
	}
	stats.Revenue = math.Round(stats.Revenue*100) / 100

	for name, count := range counts {
		stats.CoursePopularity = append(stats.CoursePopularity, models.CoursePopularity{Course: name, Count: count})
	}
	sort.Slice(stats.CoursePopularity, func(i, j int) bool {
		a, b := stats.CoursePopularity[i], stats.CoursePopularity[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Course < b.Course
	})
	return stats
}

func parsePrice(price string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(price), 64)
	if err != nil {
		return 0
	}
	return v
}
