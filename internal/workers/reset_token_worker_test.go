package workers

import (
	"context"
	"testing"
	"time"

	"jits_backend/internal/models"
	"jits_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.User{}))
	return db
}

func TestResetTokenWorker_RunOnce(t *testing.T) {
	// Arrange
	db := setupDB(t)
	repo := repositories.NewUserRepository()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	pendingHash, expiredHash := "pending", "expired"
	future, past := now.Add(5*time.Minute), now.Add(-5*time.Minute)
	pending := &models.User{Name: "P", Email: "p@example.com", PasswordHash: "x", Role: models.UserRoleUser,
		ResetTokenHash: &pendingHash, ResetTokenExpiresAt: &future}
	expired := &models.User{Name: "E", Email: "e@example.com", PasswordHash: "x", Role: models.UserRoleUser,
		ResetTokenHash: &expiredHash, ResetTokenExpiresAt: &past}
	require.NoError(t, repo.Create(db, pending))
	require.NoError(t, repo.Create(db, expired))

	w := NewResetTokenWorker(db, repo, "")
	w.now = func() time.Time { return now }

	// Act
	purged, err := w.RunOnce(context.Background())

	// Assert
	require.NoError(t, err)
	assert.EqualValues(t, 1, purged)

	reloaded, err := repo.FindByID(db, expired.ID)
	require.NoError(t, err)
	assert.Nil(t, reloaded.ResetTokenHash)

	still, err := repo.FindByID(db, pending.ID)
	require.NoError(t, err)
	require.NotNil(t, still.ResetTokenHash)
	assert.Equal(t, pendingHash, *still.ResetTokenHash)

	purged, err = w.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Zero(t, purged, "повторный проход ничего не меняет")
}

func TestResetTokenWorker_Start(t *testing.T) {
	db := setupDB(t)

	bad := NewResetTokenWorker(db, repositories.NewUserRepository(), "not a schedule")
	assert.Error(t, bad.Start(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w := NewResetTokenWorker(db, repositories.NewUserRepository(), "@every 1h")
	require.NoError(t, w.Start(ctx))
	assert.Len(t, w.cron.Entries(), 1)
}
