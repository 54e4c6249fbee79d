package routes

import (
	"academy/backend/models"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactStoresAndNotifies(t *testing.T) {
	s := newTestServer(t)

	resp, env := s.do(t, http.MethodPost, "/api/contact", map[string]string{
		"name":    "Grace",
		"email":   "grace@example.com",
		"subject": "enrollment",
		"message": "Is there a weekend cohort?",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.NotZero(t, decode[models.ContactMessage](t, env).ID)

	sent := s.sender.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, []string{"inbox@academy.test"}, sent[0].To)
	assert.Equal(t, "grace@example.com", sent[0].ReplyTo)
	assert.Contains(t, sent[0].Subject, "enrollment")
}

func TestContactValidation(t *testing.T) {
	s := newTestServer(t)

	resp, env := s.do(t, http.MethodPost, "/api/contact", map[string]string{
		"name":    "",
		"email":   "not-an-email",
		"subject": "spam",
	})
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, env.Details, "name")
	assert.Contains(t, env.Details, "email")
	assert.Contains(t, env.Details, "subject")
	assert.Contains(t, env.Details, "message")
	assert.Empty(t, s.sender.Sent())
}
