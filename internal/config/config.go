// Package config manages environment variables.
//
// It reads variables from the `.env` file, loads them into structured Go
// types and validates that required values are present so they can be reused
// across the application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide sane defaults for optional config blocks (e.g. observability).
package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists, it gets loaded into the
	// process env before any variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix every configuration variable must carry.
//
// Nested struct fields are mapped with "." in the variable name:
//
//	TIMESHEET_SERVER.PORT -> server.port -> Config.Server.Port
const EnvPrefix = "TIMESHEET_"

// ServiceName tags logs, traces and APM dashboards.
const ServiceName = "timesheet"

// Config is the root configuration object for the application.
//
// Observability is a pointer because it is optional. If not provided,
// defaults are injected at load time.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis" validate:"required"`
	Auth          AuthConfig           `koanf:"auth"`
	Integration   IntegrationConfig    `koanf:"integration"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`

	// Timezone decides what "today" and "this month" mean for the admin
	// statistics. Defaults to Europe/Rome.
	Timezone string `koanf:"timezone"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are expressed in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`

	// StaticDir holds the pre-built browser client. Empty disables it.
	StaticDir string `koanf:"static_dir"`

	// MigrateOnStart runs pending migrations before serving.
	MigrateOnStart bool `koanf:"migrate_on_start"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// RedisConfig contains Redis connection details.
// Address is "host:port".
type RedisConfig struct {
	Address  string `koanf:"address" validate:"required"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
}

// AuthConfig controls the access-code session login.
type AuthConfig struct {
	// SessionTTL is the sliding inactivity window of a session.
	SessionTTL time.Duration `koanf:"session_ttl"`

	CookieName   string `koanf:"cookie_name"`
	SecureCookie bool   `koanf:"secure_cookie"`

	// LoginRateLimit is the number of login attempts allowed per client IP
	// per minute.
	LoginRateLimit int `koanf:"login_rate_limit"`
}

// IntegrationConfig holds third-party integrations (e-mail and alerts).
type IntegrationConfig struct {
	ResendAPIKey string `koanf:"resend_api_key"`

	// AlertFrom / AlertTo configure the phase threshold alert e-mail.
	// An empty AlertTo disables the alert job.
	AlertFrom string `koanf:"alert_from"`
	AlertTo   string `koanf:"alert_to"`

	// AlertCron is the cron spec used by the scheduler.
	AlertCron string `koanf:"alert_cron"`
}

// AlertsEnabled reports whether threshold alerts can be delivered.
func (c IntegrationConfig) AlertsEnabled() bool {
	return c.ResendAPIKey != "" && c.AlertTo != ""
}

// Location resolves the configured time zone.
func (p Primary) Location() *time.Location {
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// applyDefaults fills optional values that were left empty.
func (c *Config) applyDefaults() {
	if c.Primary.Timezone == "" {
		c.Primary.Timezone = "Europe/Rome"
	}

	if c.Auth.SessionTTL <= 0 {
		c.Auth.SessionTTL = time.Hour
	}
	if c.Auth.CookieName == "" {
		c.Auth.CookieName = "timesheet_session"
	}
	if c.Auth.LoginRateLimit <= 0 {
		c.Auth.LoginRateLimit = 10
	}

	if c.Integration.AlertCron == "" {
		c.Integration.AlertCron = "0 6 * * *"
	}
	if c.Integration.AlertFrom == "" {
		c.Integration.AlertFrom = "Timesheet <onboarding@resend.dev>"
	}

	if c.Observability == nil {
		c.Observability = DefaultObservabilityConfig()
	}

	// Force service name and environment values regardless of what the user
	// set so tracing and logging see consistent naming.
	c.Observability.ServiceName = ServiceName
	c.Observability.Environment = c.Primary.Env
}

// IsLocal reports whether the app runs on a developer machine.
func (c *Config) IsLocal() bool {
	return c.Primary.Env == "local"
}

// LoadConfig loads configuration from environment variables, unmarshals it
// into Config, validates it and applies defaults.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load initial env variables: %w", err)
	}

	return parse(k)
}

// parse decodes and validates an already loaded koanf instance.
func parse(k *koanf.Koanf) (*Config, error) {
	mainConfig := &Config{}

	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	mainConfig.applyDefaults()

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}
