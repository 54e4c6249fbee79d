package routes

import (
	"academy/backend/models"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginMeLogout(t *testing.T) {
	s := newTestServer(t)

	resp, _ := s.do(t, http.MethodGet, "/api/admin/me", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	s.login(t)
	assert.True(t, s.cookie.HttpOnly)

	resp, env := s.do(t, http.MethodGet, "/api/admin/me", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	admin := decode[models.AdminUser](t, env)
	assert.Equal(t, testAdmin, admin.Username)
	assert.Equal(t, "admin", admin.Role)
	assert.NotContains(t, string(env.Data), "password")

	resp, _ = s.do(t, http.MethodPost, "/api/admin/logout", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var cleared *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == s.cfg.SessionCookie {
			cleared = c
		}
	}
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	s := newTestServer(t)

	resp, env := s.do(t, http.MethodPost, "/api/admin/login", map[string]string{
		"username": testAdmin,
		"password": "wrong",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid credentials", env.Message)

	resp, env = s.do(t, http.MethodPost, "/api/admin/login", map[string]string{"username": testAdmin})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, env.Details, "password")
}

func TestTamperedSessionIsRejected(t *testing.T) {
	s := newTestServer(t)
	s.cookie = &http.Cookie{Name: s.cfg.SessionCookie, Value: "not-a-jwt"}

	resp, _ := s.do(t, http.MethodGet, "/api/admin/me", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequestIDIsEchoed(t *testing.T) {
	s := newTestServer(t)

	resp, _ := s.do(t, http.MethodGet, "/api/courses", nil)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}
