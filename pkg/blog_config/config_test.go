package blogconfig

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

	path := filepath.Join(t.TempDir(), "aiblog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 15*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "anthropic", cfg.AI.Provider)
	assert.Equal(t, 2048, cfg.AI.MaxTokens)
	assert.Equal(t, time.Minute, cfg.AI.Timeout)
	assert.Equal(t, SourceDir, cfg.Content.Source)
	assert.Equal(t, 5*time.Minute, cfg.Content.CacheTTL)
	assert.Equal(t, "data/aiblog.db", cfg.Database.Path)
	assert.Equal(t, LogTypeConsole, cfg.Logger.LogType)
	assert.Equal(t, 10, cfg.Chat.HistoryLimit)
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9000
ai:
  provider: gemini
  model: gemini-2.5-flash
content:
  source: github
  owner: frank
  repo: blog
  webhook_secret: hook
  cache_ttl: 30s
chat:
  persona: Be brief.
`)

	t.Setenv("AIBLOG_SERVER_PORT", "9100")
	t.Setenv("AIBLOG_CHAT_HISTORY_LIMIT", "4")
	t.Setenv("GEMINI_API_KEY", "gemini-key")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, "gemini", cfg.AI.Provider)
	assert.Equal(t, "gemini-key", cfg.AI.APIKey)
	assert.Equal(t, "gemini-2.5-flash", cfg.AI.Model)
	assert.Equal(t, SourceGithub, cfg.Content.Source)
	assert.Equal(t, 30*time.Second, cfg.Content.CacheTTL)
	assert.Equal(t, 4, cfg.Chat.HistoryLimit)
	assert.Equal(t, "Be brief.", cfg.Chat.Persona)
}

func TestLoad_LegacyEnv(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("AI_API_KEY", "shared-key")
	t.Setenv("ANTHROPIC_API_KEY", "ignored")
	t.Setenv("GITHUB_TOKEN", "gh-token")
	t.Setenv("GITHUB_OWNER", "frank")
	t.Setenv("GITHUB_REPO", "blog")
	t.Setenv("GITHUB_WEBHOOK_SECRET", "hook")
	t.Setenv("AIBLOG_CONTENT_SOURCE", "github")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "shared-key", cfg.AI.APIKey)
	assert.Equal(t, "gh-token", cfg.Content.Token)
	assert.Equal(t, "frank", cfg.Content.Owner)
	assert.Equal(t, "blog", cfg.Content.Repo)
	assert.Equal(t, "hook", cfg.Content.WebhookSecret)
}

func TestLoad_ConfigPathFromEnv(t *testing.T) {
	t.Setenv(ConfigPathEnv, writeConfig(t, "database:\n  path: /tmp/blog.db\n"))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/blog.db", cfg.Database.Path)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "unknown provider", body: "ai:\n  provider: openai\n", want: "validation failed"},
		{name: "github without repo", body: "content:\n  source: github\n  owner: frank\n  webhook_secret: hook\n", want: "Repo"},
		{name: "github without webhook secret", body: "content:\n  source: github\n  owner: frank\n  repo: blog\n", want: "WebhookSecret"},
		{name: "file logger without rotation", body: "logger:\n  log_type: file\n  max_size: 0\n", want: "max size"},
		{name: "bad log level", body: "logger:\n  log_level: verbose\n", want: "LogLevel"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, test.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.want)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "reading config")
}
