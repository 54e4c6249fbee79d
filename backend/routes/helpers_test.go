package routes

import (
	"academy/backend/config"
	"academy/backend/mailer"
	"academy/backend/utils"
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const (
	testAdmin    = "admin"
	testPassword = "s3cret-pass"
)

type testServer struct {
	app    *fiber.App
	db     *gorm.DB
	cfg    *config.Config
	sender *mailer.NoopSender
	cookie *http.Cookie
}

type envelope struct {
	Success bool              `json:"success"`
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Details map[string]string `json:"details"`
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db, err := utils.OpenDB(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), zerolog.Nop())
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	cfg := &config.Config{
		DBDriver:      config.DriverSQLite,
		JWTSecret:     "testsecret",
		SessionCookie: "academy_session",
		SessionTTL:    time.Hour,
		CORSOrigins:   "http://localhost:5173",
		ContactInbox:  "inbox@academy.test",
	}
	logger := zerolog.Nop()
	require.NoError(t, utils.SeedAdmin(db, testAdmin, testPassword, logger))

	sender := mailer.NewNoopSender(logger)
	app := NewApp(cfg, logger)
	SetupRoutes(app, db, cfg, logger, sender)

	return &testServer{app: app, db: db, cfg: cfg, sender: sender}
}

// login stores the session cookie used by subsequent admin requests.
func (s *testServer) login(t *testing.T) {
	t.Helper()
	resp, _ := s.do(t, http.MethodPost, "/api/admin/login", map[string]string{
		"username": testAdmin,
		"password": testPassword,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	for _, c := range resp.Cookies() {
		if c.Name == s.cfg.SessionCookie {
			s.cookie = c
		}
	}
	require.NotNil(t, s.cookie, "session cookie not set")
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}) (*http.Response, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if s.cookie != nil {
		req.AddCookie(&http.Cookie{Name: s.cookie.Name, Value: s.cookie.Value})
	}

	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && strings.HasPrefix(resp.Header.Get("Content-Type"), fiber.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	}
	return resp, env
}

func decode[T any](t *testing.T, env envelope) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(env.Data, &v))
	return v
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
