package routes

import (
	"academy/backend/models"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedRegistration(t *testing.T, s *testServer, courseID, status string, at time.Time) {
	t.Helper()
	require.NoError(t, s.db.Create(&models.Registration{
		FirstName:        "A",
		LastName:         "B",
		Email:            "a@example.com",
		CourseID:         courseID,
		ExperienceLevel:  "beginner",
		AgreeTerms:       true,
		Status:           status,
		RegistrationDate: at,
	}).Error)
}

func TestDashboardStatsRange(t *testing.T) {
	s := newTestServer(t)
	s.login(t)
	seedCourse(t, s, "gis", "GIS Fundamentals", "299.00")
	seedCourse(t, s, "lidar", "LiDAR", "150.50")

	day := func(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 10, 0, 0, 0, time.UTC) }
	seedRegistration(t, s, "gis", models.StatusConfirmed, day(2024, time.January, 1))
	seedRegistration(t, s, "gis", models.StatusPending, day(2024, time.January, 31))
	seedRegistration(t, s, "lidar", models.StatusConfirmed, day(2024, time.January, 15))
	seedRegistration(t, s, "lidar", models.StatusConfirmed, day(2024, time.February, 1))

	resp, env := s.do(t, http.MethodGet, "/api/dashboard/stats?startDate=2024-01-01&endDate=2024-01-31", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	stats := decode[models.DashboardStats](t, env)
	assert.Equal(t, 3, stats.TotalRegistrations)
	assert.Equal(t, 2, stats.ActiveCourses)
	assert.InDelta(t, 449.50, stats.Revenue, 0.001)
	assert.Equal(t, 67, stats.CompletionRate)
	assert.Equal(t, 3, stats.RegistrationTrends[0])
	assert.Equal(t, 0, stats.RegistrationTrends[1])
	require.Len(t, stats.CoursePopularity, 2)
	assert.Equal(t, models.CoursePopularity{Course: "GIS Fundamentals", Count: 2}, stats.CoursePopularity[0])
	assert.Equal(t, "2024-01-01", stats.StartDate)
	assert.Equal(t, "2024-01-31", stats.EndDate)
}

func TestDashboardStatsRejectsBadDates(t *testing.T) {
	s := newTestServer(t)
	s.login(t)

	resp, _ := s.do(t, http.MethodGet, "/api/dashboard/stats?startDate=01/02/2024", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = s.do(t, http.MethodGet, "/api/dashboard/stats?startDate=2024-02-01&endDate=2024-01-01", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDashboardStatsRequiresSession(t *testing.T) {
	s := newTestServer(t)

	resp, _ := s.do(t, http.MethodGet, "/api/dashboard/stats", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
