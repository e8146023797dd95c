package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 8080
  env: development
database:
  driver: sqlite
  url: "file::memory:"
storage:
  type: memory
auth:
  reset_token_ttl: 15m
`)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ORIGINS", "https://jits.example,https://admin.jits.example")

	cfg, err := Load()
	require.NoError(t, err)

	// env перекрывает файл
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 15*time.Minute, cfg.Auth.ResetTokenTTL)
	// значения по умолчанию сохраняются
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.TTL)
	assert.Equal(t, int64(20<<20), cfg.Upload.ImageMaxSize)
	assert.Equal(t, []string{"https://jits.example", "https://admin.jits.example"}, cfg.Server.AllowedOrigins)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("DATABASE_URL", "postgres://localhost/jits")
	t.Setenv("STORAGE_TYPE", "local")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "local", cfg.Storage.Type)
	assert.Equal(t, "@every 10m", cfg.Auth.ResetCleanupSchedule)
}

func TestValidate(t *testing.T) {
	t.Run("database url required", func(t *testing.T) {
		cfg := Default()
		assert.ErrorContains(t, cfg.Validate(), "DATABASE_URL")
	})

	t.Run("production rejects dev secret", func(t *testing.T) {
		cfg := Default()
		cfg.Database.DSN = "postgres://db"
		cfg.Storage.Type = "memory"
		cfg.Server.Env = "production"
		assert.ErrorContains(t, cfg.Validate(), "JWT_SECRET")

		cfg.JWT.Secret = "a-real-production-secret-value-0123456789"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("s3 needs bucket", func(t *testing.T) {
		cfg := Default()
		cfg.Database.DSN = "postgres://db"
		assert.ErrorContains(t, cfg.Validate(), "AWS_BUCKET_NAME")
	})
}

func TestCORSOrigins_Deduplicates(t *testing.T) {
	cfg := Default()
	cfg.Server.FrontendURL = "https://jits.example"
	cfg.Server.AllowedOrigins = []string{"https://jits.example", "", "https://admin.jits.example"}

	assert.Equal(t, []string{
		"http://localhost:3000",
		"https://jits.example",
		"https://admin.jits.example",
	}, cfg.CORSOrigins())
}
