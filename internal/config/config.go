// internal/config/config.go
//
// Runtime configuration for the CLI hosts.
//
// Precedence (later wins):
//   1. Built-in defaults.
//   2. Optional YAML file (path passed to Load, usually --config or WORDLE_CONFIG).
//   3. Environment variables (a .env file is loaded into the environment by main).
//
// Environment:
//   PORT, LOG_LEVEL, STATS_BACKEND (file|sqlite), STATS_FILE, DB_PATH,
//   JWT_SECRET, JWT_EXPIRES_HOURS, CLIENT_ORIGIN,
//   WORDS_ANSWERS_FILE, WORDS_ALLOWED_FILE.

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config is the merged configuration.
type Config struct {
	Port     string `yaml:"port"`
	LogLevel string `yaml:"log_level"`

	Stats struct {
		Backend string `yaml:"backend"`
		File    string `yaml:"file"`
		DBPath  string `yaml:"db_path"`
	} `yaml:"stats"`

	Words struct {
		Answers string `yaml:"answers"`
		Allowed string `yaml:"allowed"`
	} `yaml:"words"`

	HTTP struct {
		JWTSecret       string `yaml:"jwt_secret"`
		JWTExpiresHours int    `yaml:"jwt_expires_hours"`
		ClientOrigin    string `yaml:"client_origin"`
	} `yaml:"http"`
}

// Default returns the built-in configuration.
func Default() Config {
	var c Config
	c.Port = "5175"
	c.LogLevel = "info"
	c.Stats.Backend = BackendFile
	c.Stats.File = "stats"
	c.Stats.DBPath = "./data/app.db"
	c.HTTP.JWTSecret = "dev_secret_change_me"
	c.HTTP.JWTExpiresHours = 24
	c.HTTP.ClientOrigin = "http://localhost:5173"
	return c
}

// Load merges defaults, the YAML file at path (if non-empty) and the environment.
func Load(path string) (Config, error) {
	c := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return c, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, &c); err != nil {
			return c, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := c.applyEnv(); err != nil {
		return c, err
	}
	return c, c.Validate()
}

func (c *Config) applyEnv() error {
	setStr(&c.Port, "PORT")
	setStr(&c.LogLevel, "LOG_LEVEL")
	setStr(&c.Stats.Backend, "STATS_BACKEND")
	setStr(&c.Stats.File, "STATS_FILE")
	setStr(&c.Stats.DBPath, "DB_PATH")
	setStr(&c.Words.Answers, "WORDS_ANSWERS_FILE")
	setStr(&c.Words.Allowed, "WORDS_ALLOWED_FILE")
	setStr(&c.HTTP.JWTSecret, "JWT_SECRET")
	setStr(&c.HTTP.ClientOrigin, "CLIENT_ORIGIN")
	if v := os.Getenv("JWT_EXPIRES_HOURS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("JWT_EXPIRES_HOURS: %w", err)
		}
		c.HTTP.JWTExpiresHours = n
	}
	return nil
}

// Validate rejects settings the hosts cannot run with.
func (c Config) Validate() error {
	switch c.Stats.Backend {
	case BackendFile:
		if c.Stats.File == "" {
			return errors.New("config: stats file path is empty")
		}
	case BackendSQLite:
		if c.Stats.DBPath == "" {
			return errors.New("config: db path is empty")
		}
	default:
		return fmt.Errorf("config: unknown stats backend %q", c.Stats.Backend)
	}
	if c.HTTP.JWTExpiresHours <= 0 {
		return errors.New("config: jwt_expires_hours must be positive")
	}
	return nil
}

// TokenTTL is the lifetime of HTTP game handles.
func (c Config) TokenTTL() time.Duration {
	return time.Duration(c.HTTP.JWTExpiresHours) * time.Hour
}

func setStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
