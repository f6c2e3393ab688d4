// Package config loads wordrighter settings with priority:
// environment > .env > YAML file > defaults.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g.
// WORDRIGHTER_WORDBOOK_PATH or WORDRIGHTER_SERVER_TOKEN_FILE.
const EnvPrefix = "WORDRIGHTER"

// DefaultPath is where the config file lives when no path is given.
const DefaultPath = "wordrighter.yaml"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config is the full application configuration.
type Config struct {
	Wordbook WordbookConfig `yaml:"wordbook" split_words:"true"`
	Bot      BotConfig      `yaml:"bot" split_words:"true"`
	Server   ServerConfig   `yaml:"server" split_words:"true"`
	Log      LogConfig      `yaml:"log" split_words:"true"`
}

// WordbookConfig selects the persistence backend.
type WordbookConfig struct {
	Backend         string `yaml:"backend" split_words:"true"` // json | sqlite | memory
	Path            string `yaml:"path" split_words:"true"`
	CreateIfMissing bool   `yaml:"create_if_missing" split_words:"true"`
}

// BotConfig configures the chat bot.
type BotConfig struct {
	Name   string `yaml:"name" split_words:"true"`   // author name of bot messages
	Prefix string `yaml:"prefix" split_words:"true"` // command prefix
}

// ServerConfig configures the HTTP and websocket server.
type ServerConfig struct {
	Addr      string `yaml:"addr" split_words:"true"`
	TokenFile string `yaml:"token_file" split_words:"true"`
	GinMode   string `yaml:"gin_mode" split_words:"true"`
}

// LogConfig configures logrus.
type LogConfig struct {
	Level  string `yaml:"level" split_words:"true"`
	Format string `yaml:"format" split_words:"true"` // text | json
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Wordbook: WordbookConfig{
			Backend:         "json",
			Path:            "wordbook.json",
			CreateIfMissing: true,
		},
		Bot: BotConfig{
			Name:   "wordrighter",
			Prefix: "$",
		},
		Server: ServerConfig{
			Addr:    ":8080",
			GinMode: "release",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load builds the configuration. A missing file at path is created with the
// defaults; an empty path skips the file. A .env file in the working
// directory is loaded into the environment if present.
func Load(path string) (*Config, error) {
	cfg := Default()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, errors.Wrap(err, "load .env")
	}

	if path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, errors.Wrap(err, "read environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return createDefault(path, cfg)
	}
	if err != nil {
		return errors.Wrapf(err, "read %s", path)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.Wrapf(err, "parse %s", path)
	}
	return nil
}

// createDefault writes cfg to path so a first run leaves an editable file.
func createDefault(path string, cfg *Config) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "create %s", dir)
		}
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "encode default config")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}

// Validate checks values that can't be defaulted.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Wordbook.Backend) {
	case "json", "sqlite":
		if c.Wordbook.Path == "" {
			return errors.Wrapf(ErrInvalid, "wordbook.path is required for the %s backend", c.Wordbook.Backend)
		}
	case "memory":
	default:
		return errors.Wrapf(ErrInvalid, "wordbook.backend %q", c.Wordbook.Backend)
	}
	if strings.TrimSpace(c.Bot.Prefix) == "" {
		return errors.Wrap(ErrInvalid, "bot.prefix is empty")
	}
	switch c.Server.GinMode {
	case "", "debug", "release", "test":
	default:
		return errors.Wrapf(ErrInvalid, "server.gin_mode %q", c.Server.GinMode)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return errors.Wrapf(ErrInvalid, "log.format %q", c.Log.Format)
	}
	return nil
}

// Token reads the shared chat token from TokenFile. No file configured
// means no token.
func (s ServerConfig) Token() (string, error) {
	if s.TokenFile == "" {
		return "", nil
	}
	data, err := os.ReadFile(s.TokenFile)
	if err != nil {
		return "", errors.Wrapf(err, "read token file %s", s.TokenFile)
	}
	return strings.TrimSpace(string(data)), nil
}
