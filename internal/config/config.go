package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vaughan-dsouza/BeGoForms/internal/validation"
)

// DefaultPath is read when no config file is named and silently skipped if absent.
const DefaultPath = "config.yaml"

// Database drivers understood by db.Connect.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
	DriverMySQL    = "mysql"
)

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	API        APIConfig        `yaml:"api"`
	Validation ValidationConfig `yaml:"validation"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type ServerConfig struct {
	Port            string        `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Driver      string        `yaml:"driver"`
	URL         string        `yaml:"url"`
	MaxOpen     int           `yaml:"max_open"`
	MaxIdle     int           `yaml:"max_idle"`
	MaxLifetime time.Duration `yaml:"max_lifetime"`
	AutoMigrate bool          `yaml:"auto_migrate"`
}

// APIConfig guards the JSON API. An empty secret leaves it open.
type APIConfig struct {
	Secret   string `yaml:"secret"`
	TokenTTL string `yaml:"token_ttl"` // "15m", "1h", or bare minutes
}

type ValidationConfig struct {
	Policy string `yaml:"policy"` // manual | schema
}

type LoggingConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            "4000",
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    10 * time.Second,
			IdleTimeout:     time.Minute,
			ShutdownTimeout: 5 * time.Second,
		},
		Database: DatabaseConfig{
			Driver:      DriverSQLite,
			URL:         "file:dev.db?cache=shared",
			MaxOpen:     25,
			MaxIdle:     25,
			MaxLifetime: 300 * time.Second,
			AutoMigrate: true,
		},
		API: APIConfig{
			TokenTTL: "24h",
		},
		Validation: ValidationConfig{
			Policy: validation.PolicySchema,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the YAML file at path over the defaults, then applies
// environment overrides. A missing DefaultPath is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	setString(&c.Server.Port, "PORT")
	setString(&c.Database.URL, "DATABASE_URL")
	setString(&c.Database.Driver, "DB_DRIVER")
	setString(&c.API.Secret, "ACCESS_SECRET")
	setString(&c.API.TokenTTL, "ACCESS_TTL")
	setString(&c.Validation.Policy, "VALIDATION_POLICY")
	setString(&c.Logging.Level, "LOG_LEVEL")

	if err := setInt(&c.Database.MaxOpen, "DB_MAX_OPEN"); err != nil {
		return err
	}
	if err := setInt(&c.Database.MaxIdle, "DB_MAX_IDLE"); err != nil {
		return err
	}

	// seconds, as before the config file existed
	var lifetime int
	if err := setInt(&lifetime, "DB_MAX_LIFETIME"); err != nil {
		return err
	}
	if lifetime > 0 {
		c.Database.MaxLifetime = time.Duration(lifetime) * time.Second
	}

	if v := os.Getenv("AUTO_MIGRATE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: AUTO_MIGRATE: %w", err)
		}
		c.Database.AutoMigrate = b
	}
	return nil
}

// Validate normalizes driver aliases and rejects settings the service cannot run with.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("config: server.port is required")
	}

	switch c.Database.Driver {
	case "postgres", "postgresql", DriverPostgres:
		c.Database.Driver = DriverPostgres
	case "sqlite", DriverSQLite:
		c.Database.Driver = DriverSQLite
	case DriverMySQL:
	default:
		return fmt.Errorf("config: unsupported database driver %q", c.Database.Driver)
	}
	if c.Database.URL == "" {
		return errors.New("config: database url is required")
	}

	if _, err := validation.New(c.Validation.Policy); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Server.Port
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("config: %s: %w", key, err)
	}
	*dst = n
	return nil
}
