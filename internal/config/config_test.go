package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv makes sure the host environment does not leak into a test
func clearEnv(t *testing.T) {
	for _, key := range []string{
		"POSTING_OUTPUT_PATH", "POSTING_CACHE_PATH", "LOG_LEVEL",
		"TELEGRAM_BOT_TOKEN", "TELEGRAM_CHAT_ID", "PORT",
	} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultOutputPath, cfg.OutputPath)
	assert.Equal(t, DefaultCachePath, cfg.CachePath)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, zerolog.InfoLevel, cfg.Level())
	assert.False(t, cfg.TelegramEnabled())
}

func TestLoad_YAMLAndEnvOverride(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
output_path: out/posting.txt
cache_path: /tmp/cache
log_level: debug
port: 9000
telegram_token: from-yaml
telegram_chat_id: 42
`)
	t.Setenv("POSTING_OUTPUT_PATH", "env/posting.txt")
	t.Setenv("TELEGRAM_CHAT_ID", "-100123")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env/posting.txt", cfg.OutputPath)
	assert.Equal(t, "/tmp/cache", cfg.CachePath)
	assert.Equal(t, zerolog.DebugLevel, cfg.Level())
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "from-yaml", cfg.TelegramToken)
	assert.Equal(t, int64(-100123), cfg.TelegramChatID)
	assert.True(t, cfg.TelegramEnabled())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "Malformed YAML",
			yaml:    "port: [not a number",
			wantErr: "error parsing",
		},
		{
			name:    "Bad chat id",
			env:     map[string]string{"TELEGRAM_CHAT_ID": "abc"},
			wantErr: "invalid TELEGRAM_CHAT_ID",
		},
		{
			name:    "Bad port",
			env:     map[string]string{"PORT": "http"},
			wantErr: "invalid PORT",
		},
		{
			name:    "Port out of range",
			yaml:    "port: 70000",
			wantErr: "port must be 1..65535",
		},
		{
			name:    "Token without chat id",
			yaml:    "telegram_token: abc",
			wantErr: "telegram_chat_id is required",
		},
		{
			name:    "Unknown log level",
			yaml:    "log_level: loud",
			wantErr: "log_level \"loud\" is not a valid level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load(writeConfig(t, tt.yaml))
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
