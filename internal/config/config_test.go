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
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_FileAndDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  http_port: ":9000"
database:
  master:
    user: app
    name: notify_db
retry:
  attempts: 3
  delay: 2s
  backoff: 1.5
dispatch:
  workers: 2
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.HTTPPort)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "localhost", cfg.Database.Master.Host)
	assert.Equal(t, "postgres://app:@localhost:5432/notify_db?sslmode=disable", cfg.Database.Master.DSN())
	assert.Equal(t, 3, cfg.Retry.Attempts)
	assert.Equal(t, 2*time.Second, cfg.Retry.Delay)
	assert.Equal(t, 1.5, cfg.Retry.Backoff)
	assert.Equal(t, DispatchLocal, cfg.Dispatch.Mode)
	assert.Equal(t, 2, cfg.Dispatch.Workers)
	assert.Equal(t, 587, cfg.Email.SMTPPort)
	assert.False(t, cfg.Sweeper.Enabled)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
email:
  username: file-user
`)

	t.Setenv("SMTP_USER", "env-user")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DISPATCH_MODE", "rabbitmq")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-user", cfg.Email.Username)
	assert.Equal(t, "db.internal", cfg.Database.Master.Host)
	assert.Equal(t, DispatchRabbitMQ, cfg.Dispatch.Mode)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.HTTPPort)
	assert.Equal(t, 1, cfg.Retry.Attempts)
}

func TestLoad_InvalidDispatchMode(t *testing.T) {
	path := writeConfig(t, `
dispatch:
  mode: kafka
`)

	_, err := Load(path)
	assert.ErrorContains(t, err, "unknown dispatch mode")
}

func TestRabbitMQ_URL(t *testing.T) {
	r := RabbitMQ{User: "guest", Password: "secret", Host: "mq", Port: 5672}
	assert.Equal(t, "amqp://guest:secret@mq:5672", r.URL())
}
