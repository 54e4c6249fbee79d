package panels

import (
	"academy/backend/config"
	"academy/backend/mailer"
	"academy/backend/routes"
	"academy/backend/utils"
	"academy/client/api"
	"academy/client/cache"
	"academy/client/notify"
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const (
	adminUser = "admin"
	adminPass = "s3cret-pass"
)

// fixedNow is 2024-06-10T06:15:23.456Z; its millisecond suffix is 123456.
var fixedNow = time.UnixMilli(1718000123456).UTC()

type recordedRequest struct {
	Method string
	Path   string
	Query  url.Values
}

type testEnv struct {
	db       *gorm.DB
	deps     Deps
	cache    *cache.Cache
	notes    *notify.Recorder
	approve  bool
	prompts  []string
	mu       sync.Mutex
	requests []recordedRequest
}

func newTestEnv(t *testing.T) *testEnv {
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
	}
	logger := zerolog.Nop()
	require.NoError(t, utils.SeedAdmin(db, adminUser, adminPass, logger))

	app := routes.NewApp(cfg, logger)
	routes.SetupRoutes(app, db, cfg, logger, mailer.NewNoopSender(logger))

	env := &testEnv{db: db, notes: &notify.Recorder{}, approve: true}
	handler := adaptor.FiberApp(app)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		env.mu.Lock()
		env.requests = append(env.requests, recordedRequest{Method: r.Method, Path: r.URL.Path, Query: r.URL.Query()})
		env.mu.Unlock()
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	client, err := api.New(srv.URL)
	require.NoError(t, err)

	env.cache = cache.New()
	t.Cleanup(env.cache.Wait)
	env.deps = Deps{
		API:      client,
		Cache:    env.cache,
		Notifier: env.notes,
		Confirmer: ConfirmFunc(func(prompt string) bool {
			env.prompts = append(env.prompts, prompt)
			return env.approve
		}),
		Log: logger,
		Now: func() time.Time { return fixedNow },
	}
	return env
}

func (e *testEnv) login(t *testing.T) {
	t.Helper()
	_, err := e.deps.API.Login(context.Background(), adminUser, adminPass)
	require.NoError(t, err)
}

func (e *testEnv) requestCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.requests)
}

func (e *testEnv) lastRequest(path string) (recordedRequest, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := len(e.requests) - 1; i >= 0; i-- {
		if e.requests[i].Path == path {
			return e.requests[i], true
		}
	}
	return recordedRequest{}, false
}

func (e *testEnv) lastNote(t *testing.T) notify.Notification {
	t.Helper()
	n, ok := e.notes.Last()
	require.True(t, ok, "no notification")
	return n
}
