package routes

import (
	"academy/backend/models"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsLifecycle(t *testing.T) {
	s := newTestServer(t)
	s.login(t)

	resp, env := s.do(t, http.MethodPost, "/api/website-settings", map[string]interface{}{
		"key":   "primary_color",
		"value": "#1e40af",
		"type":  "color",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "color", decode[models.WebsiteSetting](t, env).Type)

	resp, _ = s.do(t, http.MethodPost, "/api/website-settings", map[string]interface{}{
		"key":   "primary_color",
		"value": "#000000",
		"type":  "color",
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	resp, env = s.do(t, http.MethodPatch, "/api/website-settings/primary_color", map[string]interface{}{
		"value": "blue",
	})
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, env.Details, "value")

	resp, env = s.do(t, http.MethodPatch, "/api/website-settings/primary_color", map[string]interface{}{
		"key":   "renamed",
		"type":  "text",
		"value": "#ffffff",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	setting := decode[models.WebsiteSetting](t, env)
	assert.Equal(t, "primary_color", setting.Key)
	assert.Equal(t, "color", setting.Type)
	assert.Equal(t, "#ffffff", setting.Value)

	resp, _ = s.do(t, http.MethodPatch, "/api/website-settings/missing", map[string]interface{}{"value": "x"})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	s.cookie = nil
	resp, env = s.do(t, http.MethodGet, "/api/website-settings", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]models.WebsiteSetting](t, env), 1)
}

func TestCreateSettingTypeMismatch(t *testing.T) {
	s := newTestServer(t)
	s.login(t)

	resp, env := s.do(t, http.MethodPost, "/api/website-settings", map[string]interface{}{
		"key":   "max_seats",
		"value": "many",
		"type":  "number",
	})
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "must be a number", env.Details["value"])
}
