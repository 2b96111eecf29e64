package database_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"sport-predict/internal/auth"
	"sport-predict/internal/database"
	"sport-predict/internal/models"
	"sport-predict/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func count(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestSeedMockData(t *testing.T) {
	db := testutils.NewSeededDB(t)

	assert.Equal(t, int64(5), count(t, db, &models.Sport{}))
	assert.Equal(t, int64(12), count(t, db, &models.Team{}))
	assert.Equal(t, int64(12), count(t, db, &models.Match{}))
	assert.Equal(t, int64(10), count(t, db, &models.User{}))

	var admin models.User
	require.NoError(t, db.Where("username = ?", "admin").First(&admin).Error)
	hasher := auth.NewPasswordHasher(false)
	assert.True(t, hasher.Compare("admin", admin.PasswordHash))

	var users []models.User
	require.NoError(t, db.Where("id > ?", 1).Find(&users).Error)
	for _, u := range users {
		assert.True(t, hasher.Compare("password", u.PasswordHash), u.Username)
		assert.Equal(t, strings.ToLower(u.Username)+"@example.com", u.Email)
	}
}

func TestSeedMockDataIsIdempotent(t *testing.T) {
	db := testutils.NewSeededDB(t)

	require.NoError(t, database.SeedMockData(context.Background(), db, auth.NewPasswordHasher(false)))
	assert.Equal(t, int64(5), count(t, db, &models.Sport{}))
	assert.Equal(t, int64(12), count(t, db, &models.Match{}))
}

type failingHasher struct{}

func (failingHasher) Hash(string) (string, error) { return "", errors.New("hasher down") }

func TestSeedMockDataFailureWritesNothing(t *testing.T) {
	db := testutils.NewTestDB(t)

	err := database.SeedMockData(context.Background(), db, failingHasher{})
	require.Error(t, err)
	assert.Equal(t, int64(0), count(t, db, &models.Sport{}))
	assert.Equal(t, int64(0), count(t, db, &models.User{}))
}

func TestSeedMockDataRollsBackPartialWrites(t *testing.T) {
	db := testutils.NewTestDB(t)
	ctx := context.Background()

	// takes the admin username under another id so the users insert fails
	// after sports, teams and matches were written
	squatter := models.User{ID: 50, Username: "admin", Email: "squatter@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&squatter).Error)

	err := database.SeedMockData(ctx, db, auth.NewPasswordHasher(false))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seeding users")

	assert.Equal(t, int64(0), count(t, db, &models.Sport{}))
	assert.Equal(t, int64(0), count(t, db, &models.Team{}))
	assert.Equal(t, int64(0), count(t, db, &models.Match{}))
	assert.Equal(t, int64(1), count(t, db, &models.User{}))
}

func TestResetMockData(t *testing.T) {
	db := testutils.NewSeededDB(t)
	ctx := context.Background()

	require.NoError(t, db.Model(&models.Match{}).Where("id = ?", 1).Update("status", models.MatchStatusCompleted).Error)

	require.NoError(t, database.ClearMockData(ctx, db))
	assert.Equal(t, int64(0), count(t, db, &models.Sport{}))
	assert.Equal(t, int64(0), count(t, db, &models.Match{}))

	require.NoError(t, database.ResetMockData(ctx, db, auth.NewPasswordHasher(false)))
	var m models.Match
	require.NoError(t, db.First(&m, 1).Error)
	assert.Equal(t, models.MatchStatusScheduled, m.Status)
}

func TestMigrationsEmbedded(t *testing.T) {
	migrations, err := database.Migrations()
	require.NoError(t, err)
	require.NotEmpty(t, migrations)
	assert.Equal(t, "migrations/001_init.sql", migrations[0].Name)
	assert.Contains(t, migrations[0].SQL, "CREATE TABLE IF NOT EXISTS matches")
}
