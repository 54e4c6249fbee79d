package utils

import (
	"academy/backend/models"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSeedAdminIsIdempotent(t *testing.T) {
	db, err := OpenDB(sqlite.Open("file:seed_admin?mode=memory&cache=shared"), zerolog.Nop())
	require.NoError(t, err)

	require.NoError(t, SeedAdmin(db, "root", "pw", zerolog.Nop()))
	require.NoError(t, SeedAdmin(db, "root", "other", zerolog.Nop()))

	var admins []models.AdminUser
	require.NoError(t, db.Find(&admins).Error)
	require.Len(t, admins, 1)
	assert.Equal(t, "admin", admins[0].Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admins[0].PasswordHash), []byte("pw")))
}

func TestSeedAdminSkipsWithoutPassword(t *testing.T) {
	db, err := OpenDB(sqlite.Open("file:seed_skip?mode=memory&cache=shared"), zerolog.Nop())
	require.NoError(t, err)

	require.NoError(t, SeedAdmin(db, "root", "", zerolog.Nop()))

	var count int64
	db.Model(&models.AdminUser{}).Count(&count)
	assert.Zero(t, count)
}
