package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "0123456789abcdef0123456789abcdef"

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SESSION_SECRET", secret)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.Equal(t, slog.LevelInfo, cfg.Logger.LogLevel())
	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, "portal.db", cfg.Storage.DSN)
	assert.Equal(t, 300*time.Millisecond, cfg.Mock.Latency)
	assert.False(t, cfg.Mock.LegacyNotFound)
	assert.Equal(t, "open", cfg.Admin.Mode)
	assert.Equal(t, 30*time.Minute, cfg.Tabs.IdleTTL)
	assert.Empty(t, cfg.Telegram.BotToken)
}

func TestLoad_FileWithEnvOverride(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: ":9090"
logger:
  level: debug
  format: text
storage:
  driver: memory
  audit_log: registrations.sql
mock:
  latency: 50ms
  legacy_not_found: true
session:
  secret: "`+secret+`"
telegram:
  chat_id: 42
`)
	t.Setenv("SERVER_ADDR", ":7070")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, slog.LevelDebug, cfg.Logger.LogLevel())
	assert.Equal(t, "text", cfg.Logger.Format)
	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.Equal(t, "registrations.sql", cfg.Storage.AuditLog)
	assert.Equal(t, 50*time.Millisecond, cfg.Mock.Latency)
	assert.True(t, cfg.Mock.LegacyNotFound)
	assert.Equal(t, int64(42), cfg.Telegram.ChatID)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing secret", body: "server:\n  addr: \":8080\"\n"},
		{name: "short secret", body: "session:\n  secret: short\n"},
		{name: "bad driver", body: "session:\n  secret: \"" + secret + "\"\nstorage:\n  driver: postgres\n"},
		{name: "credentials without hash", body: "session:\n  secret: \"" + secret + "\"\nadmin:\n  mode: credentials\n"},
		{name: "bad log format", body: "session:\n  secret: \"" + secret + "\"\nlogger:\n  format: xml\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoad_CredentialsMode(t *testing.T) {
	path := writeConfig(t, `
session:
  secret: "`+secret+`"
admin:
  mode: credentials
  username: root
  password_hash: "$2a$10$abcdefghijklmnopqrstuuJ0n9m3Q8K0Lw0sQ6yK3Y1P9b2mF7n1y"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "credentials", cfg.Admin.Mode)
	assert.Equal(t, "root", cfg.Admin.Username)
}

func TestMustLoad_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustLoad(filepath.Join(t.TempDir(), "missing.yaml"))
	})
}
