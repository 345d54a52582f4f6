// Load envs from .env
// Load YAML config
// Apply env overrides
// Provide default values

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

const (
	DefaultOutputPath = "job_posting_clean.txt"
	DefaultCachePath  = ".cache"
	DefaultPort       = 8080
	DefaultLogLevel   = "info"
)

type Config struct {
	//Where the clean posting is written
	OutputPath string `yaml:"output_path" env:"POSTING_OUTPUT_PATH"`
	CachePath  string `yaml:"cache_path" env:"POSTING_CACHE_PATH"`
	LogLevel   string `yaml:"log_level" env:"LOG_LEVEL"`
	//HTTP server
	Port int `yaml:"port" env:"PORT"`
	//Optional telegram notifications
	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`
}

// Load reads .env, then the YAML file at path, then environment overrides.
// A missing YAML file is not an error, the defaults are used instead.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		log.Warn().Str("path", path).Msg("⚠️ Could not find config file, using defaults")
	case err != nil:
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("error parsing %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("POSTING_OUTPUT_PATH"); v != "" {
		c.OutputPath = v
	}
	if v := os.Getenv("POSTING_CACHE_PATH"); v != "" {
		c.CachePath = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		c.TelegramToken = v
	}

	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
		}
		c.TelegramChatID = id
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT: %w", err)
		}
		c.Port = port
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.OutputPath == "" {
		c.OutputPath = DefaultOutputPath
	}
	if c.CachePath == "" {
		c.CachePath = DefaultCachePath
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.Port == 0 {
		c.Port = DefaultPort
	}
}

// Validate collects every problem in the config instead of stopping at the first one
func (c *Config) Validate() error {
	var errs []string

	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, "port must be 1..65535")
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Sprintf("log_level %q is not a valid level", c.LogLevel))
	}
	if c.TelegramToken != "" && c.TelegramChatID == 0 {
		errs = append(errs, "telegram_chat_id is required when telegram_token is set")
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n- " + strings.Join(errs, "\n- "))
	}
	return nil
}

// TelegramEnabled reports whether notifications can be sent
func (c *Config) TelegramEnabled() bool {
	return c.TelegramToken != "" && c.TelegramChatID != 0
}

// Level returns the parsed log level, falling back to info
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
