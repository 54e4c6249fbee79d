package notify

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestConsoleWritesTitleAndMessage(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	c := NewConsole(&buf)

	Errorf(c, "Error", "Failed to %s %s", "create", "course")
	Successf(c, "Course created", "")

	assert.Equal(t, "Error: Failed to create course\nCourse created\n", buf.String())
}

func TestRecorder(t *testing.T) {
	var r Recorder
	_, ok := r.Last()
	assert.False(t, ok)

	Infof(&r, "Export", "No registrations to export")
	last, ok := r.Last()
	assert.True(t, ok)
	assert.Equal(t, Info, last.Kind)
	assert.Equal(t, "No registrations to export", last.Message)
	assert.Len(t, r.All(), 1)
}
