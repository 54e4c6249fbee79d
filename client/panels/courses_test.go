package panels

import (
	"academy/backend/models"
	"academy/client/notify"
	"academy/schema"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func courseValues(title string) schema.CourseInput {
	in := schema.NewCourseInput()
	in.Title = title
	in.Description = "Spatial thinking"
	in.Duration = "6 weeks"
	in.Price = "299.00"
	return in
}

func TestCourseFormGeneratesIDFromTitle(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)
	ctx := context.Background()
	p := NewCoursesPanel(env.deps, 5)

	p.Form.OpenCreate()
	p.Form.SetValues(courseValues("GIS Fundamentals!!"))
	require.NoError(t, p.Form.Submit(ctx))

	courses, err := p.Resource.List(ctx)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "gis-fundamentals-123456", courses[0].ID)
	assert.Equal(t, "Course created successfully", env.lastNote(t).Message)
}

func TestCourseEditKeepsIDAndRefreshesTable(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)
	ctx := context.Background()
	p := NewCoursesPanel(env.deps, 5)
	p.Open()
	defer p.Close()

	p.Form.OpenCreate()
	values := courseValues("Remote Sensing")
	values.ID = "remote-sensing"
	p.Form.SetValues(values)
	require.NoError(t, p.Form.Submit(ctx))
	env.cache.Wait()

	table := p.Table()
	require.Len(t, table.Rows, 1)

	p.Edit(table.Rows[0])
	p.Form.Update(func(v *schema.CourseInput) { v.Enrolled = 14 })
	require.NoError(t, p.Form.Submit(ctx))
	env.cache.Wait()

	table = p.Table()
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "remote-sensing", table.Rows[0].ID)
	assert.Equal(t, 14, table.Rows[0].Enrolled)
}

func TestCourseCreateFailureKeepsForm(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)
	ctx := context.Background()
	p := NewCoursesPanel(env.deps, 5)

	values := courseValues("Cartography")
	values.ID = "cartography"
	for i := 0; i < 2; i++ {
		p.Form.OpenCreate()
		p.Form.SetValues(values)
		_ = p.Form.Submit(ctx)
	}

	assert.True(t, p.Form.IsOpen())
	assert.Equal(t, "Cartography", p.Form.Values().Title)
	note := env.lastNote(t)
	assert.Equal(t, notify.Error, note.Kind)
	assert.Equal(t, "Failed to create course", note.Message)
}

func TestCourseDeleteNeedsConfirmation(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)
	ctx := context.Background()
	p := NewCoursesPanel(env.deps, 5)
	require.NoError(t, env.db.Create(&models.Course{ID: "gis", Title: "GIS"}).Error)

	env.approve = false
	before := env.requestCount()
	deleted, err := p.Delete(ctx, models.Course{ID: "gis", Title: "GIS"})
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Equal(t, before, env.requestCount())
	assert.Equal(t, []string{`Delete course "GIS"?`}, env.prompts)

	env.approve = true
	deleted, err = p.Delete(ctx, models.Course{ID: "gis", Title: "GIS"})
	require.NoError(t, err)
	assert.True(t, deleted)

	courses, err := p.Resource.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, courses)
}

func TestCoursesTableEmptyPlaceholder(t *testing.T) {
	env := newTestEnv(t)
	p := NewCoursesPanel(env.deps, 5)
	p.Open()
	defer p.Close()
	env.cache.Wait()

	table := p.Table()
	assert.True(t, table.Empty)
	assert.Equal(t, "No courses found. Add your first course.", table.Placeholder)
	assert.Empty(t, table.Error)
}
