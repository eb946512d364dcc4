package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/claude/healthfuture/internal/models"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Tailscale TailscaleConfig `yaml:"tailscale"`
	Storage   StorageConfig   `yaml:"storage"`
	Auth      AuthConfig      `yaml:"auth"`
	Dashboard DashboardConfig `yaml:"dashboard"`
	Log       LogConfig       `yaml:"log"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type TailscaleConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Hostname string `yaml:"hostname"`
	StateDir string `yaml:"state_dir"`
}

type StorageConfig struct {
	Driver   string `yaml:"driver"`
	Path     string `yaml:"path"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
}

type AuthConfig struct {
	LoginDelay time.Duration `yaml:"login_delay"`
}

type DashboardConfig struct {
	Seed      uint64 `yaml:"seed"`
	TimeRange string `yaml:"time_range"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// DSN returns the connection string for the configured driver: the file
// path for sqlite, a PostgreSQL URL for postgres.
func (s StorageConfig) DSN() string {
	if s.Driver != "postgres" {
		return s.Path
	}
	sslmode := s.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		s.User, s.Password, s.Host, s.Port, s.Name, sslmode)
}

// SlogLevel maps the configured level name to a slog.Level. Unknown names
// fall back to info.
func (l LogConfig) SlogLevel() slog.Level {
	switch l.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Load reads config from a YAML file, then applies environment variable overrides.
// Env vars use the prefix HEALTHFUTURE_ and underscore-separated paths:
//
//	HEALTHFUTURE_SERVER_HOST, HEALTHFUTURE_SERVER_PORT,
//	HEALTHFUTURE_TAILSCALE_ENABLED, HEALTHFUTURE_TAILSCALE_HOSTNAME,
//	HEALTHFUTURE_STORAGE_DRIVER, HEALTHFUTURE_STORAGE_PATH,
//	HEALTHFUTURE_DB_HOST, HEALTHFUTURE_DB_PORT, HEALTHFUTURE_DB_NAME,
//	HEALTHFUTURE_DB_USER, HEALTHFUTURE_DB_PASSWORD, HEALTHFUTURE_DB_SSLMODE,
//	HEALTHFUTURE_AUTH_LOGIN_DELAY, HEALTHFUTURE_DASHBOARD_SEED,
//	HEALTHFUTURE_LOG_LEVEL
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server:    ServerConfig{Host: "127.0.0.1"},
		Tailscale: TailscaleConfig{Hostname: "healthfuture", StateDir: "tsnet-state"},
		Storage:   StorageConfig{Driver: "sqlite", Path: "healthfuture.db"},
		Auth:      AuthConfig{LoginDelay: 800 * time.Millisecond},
		Dashboard: DashboardConfig{TimeRange: string(models.RangeDay)},
		Log:       LogConfig{Level: "info"},
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HEALTHFUTURE_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("HEALTHFUTURE_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("HEALTHFUTURE_TAILSCALE_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Tailscale.Enabled = b
		}
	}
	if v := os.Getenv("HEALTHFUTURE_TAILSCALE_HOSTNAME"); v != "" {
		cfg.Tailscale.Hostname = v
	}
	if v := os.Getenv("HEALTHFUTURE_STORAGE_DRIVER"); v != "" {
		cfg.Storage.Driver = v
	}
	if v := os.Getenv("HEALTHFUTURE_STORAGE_PATH"); v != "" {
		cfg.Storage.Path = v
	}
	if v := os.Getenv("HEALTHFUTURE_DB_HOST"); v != "" {
		cfg.Storage.Host = v
	}
	if v := os.Getenv("HEALTHFUTURE_DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Storage.Port = port
		}
	}
	if v := os.Getenv("HEALTHFUTURE_DB_NAME"); v != "" {
		cfg.Storage.Name = v
	}
	if v := os.Getenv("HEALTHFUTURE_DB_USER"); v != "" {
		cfg.Storage.User = v
	}
	if v := os.Getenv("HEALTHFUTURE_DB_PASSWORD"); v != "" {
		cfg.Storage.Password = v
	}
	if v := os.Getenv("HEALTHFUTURE_DB_SSLMODE"); v != "" {
		cfg.Storage.SSLMode = v
	}
	if v := os.Getenv("HEALTHFUTURE_AUTH_LOGIN_DELAY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Auth.LoginDelay = d
		}
	}
	if v := os.Getenv("HEALTHFUTURE_DASHBOARD_SEED"); v != "" {
		if seed, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Dashboard.Seed = seed
		}
	}
	if v := os.Getenv("HEALTHFUTURE_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

func (c *Config) validate() error {
	if c.Server.Port == 0 && !c.Tailscale.Enabled {
		return fmt.Errorf("server.port is required")
	}
	if c.Tailscale.Enabled && c.Tailscale.Hostname == "" {
		return fmt.Errorf("tailscale.hostname is required when tailscale is enabled")
	}
	switch c.Storage.Driver {
	case "sqlite":
		if c.Storage.Path == "" {
			return fmt.Errorf("storage.path is required for sqlite")
		}
	case "postgres":
		if c.Storage.Host == "" {
			return fmt.Errorf("storage.host is required for postgres")
		}
		if c.Storage.Port == 0 {
			return fmt.Errorf("storage.port is required for postgres")
		}
		if c.Storage.Name == "" {
			return fmt.Errorf("storage.name is required for postgres")
		}
		if c.Storage.User == "" {
			return fmt.Errorf("storage.user is required for postgres")
		}
	default:
		return fmt.Errorf("storage.driver must be sqlite or postgres, got %q", c.Storage.Driver)
	}
	if c.Auth.LoginDelay < 0 {
		return fmt.Errorf("auth.login_delay must not be negative")
	}
	if _, err := models.ParseTimeRange(c.Dashboard.TimeRange); err != nil {
		return fmt.Errorf("dashboard.time_range: %w", err)
	}
	return nil
}
