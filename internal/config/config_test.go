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
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0644))
	return dir
}

func TestLoadConfig(t *testing.T) {
	uploads := filepath.Join(t.TempDir(), "uploads")
	dir := writeConfig(t, `
server:
  port: "9090"
  mode: debug
database:
  driver: sqlite
  path: data/test.db
jwt:
  secret: abc
  expire_hours: 12
storage:
  type: local
  local_path: `+uploads+`
cors:
  allowed_origins:
    - http://localhost:5173
quiz:
  session_ttl_minutes: 30
`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "data/test.db", cfg.Database.Path)
	assert.True(t, cfg.Database.SeedQuiz)
	assert.Equal(t, 12*time.Hour, cfg.JWT.ExpireTime)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 30*time.Minute, cfg.Quiz.SessionTTL())
	assert.Equal(t, 5*time.Second, cfg.Quiz.PersistTimeout())
	assert.Equal(t, 600, cfg.RateLimit.MaxRequests)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window())
	assert.Equal(t, dir, cfg.Path)

	_, err = os.Stat(uploads)
	assert.NoError(t, err)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	dir := writeConfig(t, `
server:
  mode: debug
storage:
  type: minio
`)
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("DATABASE_DRIVER", "postgres")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.JWT.Secret)
	assert.Equal(t, "postgres", cfg.Database.Driver)
}

func TestLoadConfigRejectsWeakSecretInRelease(t *testing.T) {
	dir := writeConfig(t, `
server:
  mode: release
jwt:
  secret: short
storage:
  type: minio
`)
	_, err := LoadConfig(dir)
	assert.Error(t, err)
}

func TestDurationDefaults(t *testing.T) {
	assert.Equal(t, 2*time.Hour, QuizConfig{}.SessionTTL())
	assert.Equal(t, 5*time.Second, QuizConfig{}.PersistTimeout())
	assert.Equal(t, 3*time.Second, QuizConfig{PersistTimeoutSeconds: 3}.PersistTimeout())
	assert.Equal(t, 5*time.Minute, RateLimitConfig{WindowMinutes: 5}.Window())
}
