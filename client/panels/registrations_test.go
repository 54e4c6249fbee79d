package panels

import (
	"academy/backend/models"
	"academy/client/notify"
	"academy/schema"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registrationValues(courseID string) schema.RegistrationInput {
	return schema.RegistrationInput{
		FirstName:       "Ada",
		LastName:        "Lovelace",
		Email:           "ada@example.com",
		Country:         "UK",
		CourseID:        courseID,
		ExperienceLevel: "beginner",
		AgreeTerms:      true,
	}
}

func TestRegistrationFormTermsGate(t *testing.T) {
	env := newTestEnv(t)
	form := NewRegistrationForm(env.deps)

	OpenRegistration(form, "gis")
	values := registrationValues("gis")
	values.AgreeTerms = false
	form.SetValues(values)

	before := env.requestCount()
	err := form.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, before, env.requestCount())
	assert.Equal(t, map[string]string{"agreeTerms": schema.TermsMessage}, form.FieldErrors())
	assert.True(t, form.IsOpen())
	assert.Empty(t, env.notes.All())
}

func TestRegistrationSubmitThenToggleStatus(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	require.NoError(t, env.db.Create(&models.Course{ID: "gis", Title: "GIS Fundamentals", Price: "100.00"}).Error)

	form := NewRegistrationForm(env.deps)
	OpenRegistration(form, "gis")
	assert.Equal(t, "gis", form.Values().CourseID)
	form.SetValues(registrationValues("gis"))
	require.NoError(t, form.Submit(ctx))
	assert.Equal(t, "Registration submitted! We will contact you shortly.", env.lastNote(t).Message)
	assert.False(t, form.IsOpen())

	env.login(t)
	p := NewRegistrationsPanel(env.deps, 5)
	p.Open()
	defer p.Close()
	env.cache.Wait()

	rows := p.Table().Rows
	require.Len(t, rows, 1)
	assert.Equal(t, models.StatusPending, rows[0].Status)

	require.NoError(t, p.ToggleStatus(ctx, rows[0]))
	env.cache.Wait()
	assert.Equal(t, models.StatusConfirmed, p.Table().Rows[0].Status)

	require.NoError(t, p.ToggleStatus(ctx, p.Table().Rows[0]))
	env.cache.Wait()
	assert.Equal(t, models.StatusPending, p.Table().Rows[0].Status)
}

func TestNextStatus(t *testing.T) {
	assert.Equal(t, models.StatusConfirmed, NextStatus(models.StatusPending))
	assert.Equal(t, models.StatusPending, NextStatus(models.StatusConfirmed))
	assert.Equal(t, models.StatusPending, NextStatus(models.StatusCancelled))
}

func TestExportWithoutRegistrations(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)
	p := NewRegistrationsPanel(env.deps, 5)
	p.Open()
	defer p.Close()
	env.cache.Wait()
	path := filepath.Join(t.TempDir(), "out.xlsx")

	before := env.requestCount()
	ok, err := p.ExportFile(path)
	require.NoError(t, err)
	assert.False(t, ok)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))

	var buf bytes.Buffer
	ok, err = p.Export(&buf)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, buf.Len())
	assert.Equal(t, before, env.requestCount())

	note := env.lastNote(t)
	assert.Equal(t, notify.Info, note.Kind)
	assert.Equal(t, "No registrations to export", note.Message)
}

func seedRegistration(t *testing.T, env *testEnv, courseID string) {
	t.Helper()
	require.NoError(t, env.db.Create(&models.Registration{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", CourseID: courseID,
		Status: models.StatusPending, AgreeTerms: true, RegistrationDate: time.Now().UTC(),
	}).Error)
}

func TestExportWritesLoadedListWithoutRequests(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)
	require.NoError(t, env.db.Create(&models.Course{ID: "gis", Title: "GIS Fundamentals"}).Error)
	seedRegistration(t, env, "gis")

	p := NewRegistrationsPanel(env.deps, 5)
	p.Open()
	defer p.Close()
	env.cache.Wait()

	before := env.requestCount()
	path := filepath.Join(t.TempDir(), "out.xlsx")
	ok, err := p.ExportFile(path)
	require.NoError(t, err)
	assert.True(t, ok)

	var buf bytes.Buffer
	ok, err = p.Export(&buf)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NotZero(t, buf.Len())
	assert.Equal(t, before, env.requestCount())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
	assert.Equal(t, "Exported 1 registrations", env.lastNote(t).Message)
}

func TestExportUsesCachedCourseTitlesOnly(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)
	require.NoError(t, env.db.Create(&models.Course{ID: "gis", Title: "GIS Fundamentals"}).Error)
	seedRegistration(t, env, "gis")

	p := NewRegistrationsPanel(env.deps, 5)
	p.Open()
	defer p.Close()
	env.cache.Wait()

	regs, titles, err := p.exportData()
	require.NoError(t, err)
	require.Len(t, regs, 1)
	assert.Empty(t, titles)
	_, fetched := env.lastRequest("/api/courses")
	assert.False(t, fetched)

	catalog := NewCatalog(env.deps)
	catalog.Open()
	defer catalog.Close()
	env.cache.Wait()

	_, titles, err = p.exportData()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"gis": "GIS Fundamentals"}, titles)
}
