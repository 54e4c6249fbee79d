package routes

import (
	"academy/backend/models"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getLanding(t *testing.T, s *testServer) string {
	t.Helper()
	resp, err := s.app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestLandingHidesCarouselWithoutActiveBanners(t *testing.T) {
	s := newTestServer(t)
	require.NoError(t, s.db.Create(&models.Banner{Title: "Old", ImageURL: "https://cdn/old.jpg", IsActive: false}).Error)

	page := getLanding(t, s)
	assert.NotContains(t, page, `id="carousel"`)
	assert.Contains(t, page, "No courses are open for registration yet.")
}

func TestLandingRendersCoursesAndBanners(t *testing.T) {
	s := newTestServer(t)
	require.NoError(t, s.db.Create(&models.WebsiteSetting{Key: "site_title", Value: "GIS Academy", Type: models.SettingText}).Error)
	require.NoError(t, s.db.Create(&models.Banner{Title: "Spring intake", ImageURL: "https://cdn/spring.jpg", IsActive: true}).Error)
	require.NoError(t, s.db.Create(&models.Course{
		ID:          "gis",
		Title:       "GIS Fundamentals",
		Description: "Learn **projections**.\n<script>alert(1)</script>",
		Level:       models.LevelBeginner,
		Price:       "299.00",
	}).Error)

	page := getLanding(t, s)
	assert.Contains(t, page, "<title>GIS Academy</title>")
	assert.Contains(t, page, `id="carousel"`)
	assert.Contains(t, page, "Spring intake")
	assert.Contains(t, page, "<strong>projections</strong>")
	assert.NotContains(t, page, "<script>alert(1)</script>")
}
