package forms

import (
	"academy/client/api"
	"academy/client/notify"
	"academy/schema"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	action string
	id     string
	values schema.CourseInput
}

type fakeSubmitter struct {
	calls []call
	err   error
}

func (s *fakeSubmitter) Create(_ context.Context, v schema.CourseInput) error {
	s.calls = append(s.calls, call{action: "create", values: v})
	return s.err
}

func (s *fakeSubmitter) Update(_ context.Context, id string, v schema.CourseInput) error {
	s.calls = append(s.calls, call{action: "update", id: id, values: v})
	return s.err
}

func filledCourse() schema.CourseInput {
	in := schema.NewCourseInput()
	in.Title = "GIS Fundamentals"
	in.Description = "Intro"
	in.Duration = "6 weeks"
	in.Price = "299.00"
	return in
}

func TestSubmitCreatesWhenNoIDBound(t *testing.T) {
	sub := &fakeSubmitter{}
	rec := &notify.Recorder{}
	succeeded := false
	f := New("course", schema.NewCourseInput(), sub, rec, WithSuccess[schema.CourseInput](func() { succeeded = true }))

	f.OpenCreate()
	f.SetValues(filledCourse())
	require.NoError(t, f.Submit(context.Background()))

	require.Len(t, sub.calls, 1)
	assert.Equal(t, "create", sub.calls[0].action)
	assert.True(t, succeeded)
	assert.False(t, f.IsOpen())
	assert.Equal(t, schema.NewCourseInput(), f.Values())
	last, _ := rec.Last()
	assert.Equal(t, notify.Success, last.Kind)
	assert.Equal(t, "Course created successfully", last.Message)
}

func TestSubmitUpdatesBoundEntity(t *testing.T) {
	sub := &fakeSubmitter{}
	f := New("course", schema.NewCourseInput(), sub, nil)

	f.OpenEdit("gis-101", filledCourse())
	assert.Equal(t, "update", f.Action())
	require.NoError(t, f.Submit(context.Background()))

	require.Len(t, sub.calls, 1)
	assert.Equal(t, "update", sub.calls[0].action)
	assert.Equal(t, "gis-101", sub.calls[0].id)
	assert.False(t, f.Editing())
}

func TestValidationBlocksRequest(t *testing.T) {
	sub := &fakeSubmitter{}
	rec := &notify.Recorder{}
	f := New("course", schema.NewCourseInput(), sub, rec)

	f.OpenCreate()
	err := f.Submit(context.Background())

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "title")
	assert.Contains(t, f.FieldErrors(), "price")
	assert.Empty(t, sub.calls)
	assert.Empty(t, rec.All())
	assert.True(t, f.IsOpen())
}

func TestCheckRunsBeforeSchema(t *testing.T) {
	sub := &fakeSubmitter{}
	f := New("course", schema.NewCourseInput(), sub, nil,
		WithCheck(func(v schema.CourseInput) map[string]string {
			return map[string]string{"enrolled": "closed"}
		}))

	f.OpenCreate()
	f.SetValues(filledCourse())
	err := f.Submit(context.Background())

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, map[string]string{"enrolled": "closed"}, verr.Fields)
	assert.Empty(t, sub.calls)
}

func TestPrepareSeesCreateFlag(t *testing.T) {
	sub := &fakeSubmitter{}
	f := New("course", schema.NewCourseInput(), sub, nil,
		WithPrepare(func(v *schema.CourseInput, creating bool) {
			if creating && v.ID == "" {
				v.ID = "generated"
			}
		}))

	f.OpenCreate()
	f.SetValues(filledCourse())
	require.NoError(t, f.Submit(context.Background()))
	assert.Equal(t, "generated", sub.calls[0].values.ID)
}

func TestFailureKeepsValuesAndNamesAction(t *testing.T) {
	sub := &fakeSubmitter{err: &api.FetchError{Status: 422, Details: map[string]string{"price": "must be a decimal amount, e.g. 299.00"}}}
	rec := &notify.Recorder{}
	f := New("course", schema.NewCourseInput(), sub, rec)

	f.OpenEdit("gis-101", filledCourse())
	err := f.Submit(context.Background())

	var fe *api.FetchError
	require.True(t, errors.As(err, &fe))
	assert.True(t, f.IsOpen())
	assert.Equal(t, "gis-101", f.ID())
	assert.Equal(t, "GIS Fundamentals", f.Values().Title)
	assert.Equal(t, "must be a decimal amount, e.g. 299.00", f.FieldErrors()["price"])

	last, _ := rec.Last()
	assert.Equal(t, notify.Error, last.Kind)
	assert.Equal(t, "Failed to update course", last.Message)
}
