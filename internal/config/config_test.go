package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "json", cfg.Wordbook.Backend)
	assert.Equal(t, "wordbook.json", cfg.Wordbook.Path)
	assert.True(t, cfg.Wordbook.CreateIfMissing)
	assert.Equal(t, "$", cfg.Bot.Prefix)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	require.NoError(t, cfg.Validate())
}

func TestLoadCreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "wordrighter.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = os.Stat(path)
	require.NoError(t, err, "default config should be written")

	again, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordrighter.yaml")
	content := `
wordbook:
  backend: sqlite
  path: words.db
bot:
  name: righter
  prefix: "!"
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Wordbook.Backend)
	assert.Equal(t, "words.db", cfg.Wordbook.Path)
	assert.Equal(t, "righter", cfg.Bot.Name)
	assert.Equal(t, "!", cfg.Bot.Prefix)
	assert.Equal(t, "debug", cfg.Log.Level)

	// untouched sections keep their defaults
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoadEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordrighter.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  addr: \":9000\"\n"), 0o644))

	t.Setenv("WORDRIGHTER_SERVER_ADDR", ":7000")
	t.Setenv("WORDRIGHTER_WORDBOOK_BACKEND", "memory")
	t.Setenv("WORDRIGHTER_WORDBOOK_CREATE_IF_MISSING", "false")
	t.Setenv("WORDRIGHTER_SERVER_TOKEN_FILE", "/run/token.txt")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Server.Addr, "environment wins over the file")
	assert.Equal(t, "memory", cfg.Wordbook.Backend)
	assert.False(t, cfg.Wordbook.CreateIfMissing)
	assert.Equal(t, "/run/token.txt", cfg.Server.TokenFile)
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordrighter.yaml")
	require.NoError(t, os.WriteFile(path, []byte("wordbook: [not, a, map"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"unknown backend", func(c *Config) { c.Wordbook.Backend = "redis" }},
		{"json without path", func(c *Config) { c.Wordbook.Path = "" }},
		{"empty prefix", func(c *Config) { c.Bot.Prefix = "  " }},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }},
		{"bad gin mode", func(c *Config) { c.Server.GinMode = "turbo" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid))
		})
	}

	cfg := Default()
	cfg.Wordbook.Backend = "memory"
	cfg.Wordbook.Path = ""
	assert.NoError(t, cfg.Validate(), "memory backend needs no path")
}

func TestToken(t *testing.T) {
	token, err := ServerConfig{}.Token()
	require.NoError(t, err)
	assert.Empty(t, token)

	path := filepath.Join(t.TempDir(), "token.txt")
	require.NoError(t, os.WriteFile(path, []byte("  s3cret\n"), 0o600))

	token, err = ServerConfig{TokenFile: path}.Token()
	require.NoError(t, err)
	assert.Equal(t, "s3cret", token)

	_, err = ServerConfig{TokenFile: path + ".missing"}.Token()
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(LogConfig{Level: "warn", Format: "json"}, &buf)
	require.NoError(t, err)
	assert.Equal(t, log.WarnLevel, logger.GetLevel())

	logger.Info("dropped")
	logger.WithField("phrase", "bad weather").Warn("kept")
	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), `"phrase":"bad weather"`)

	_, err = NewLogger(LogConfig{Level: "loud"}, &buf)
	assert.True(t, errors.Is(err, ErrInvalid))
}
