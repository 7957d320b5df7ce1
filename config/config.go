package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Store StoreConfig

	// Webhooks
	Webhook WebhookConfig

	// Dashboard
	UI UIConfig

	// Background jobs
	Retention RetentionConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Host           string
	Port           int
	Mode           string
	TrustedProxies []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
	File         string
}

type StoreConfig struct {
	Driver   string
	URI      string
	Database string
	Timeout  time.Duration
}

type WebhookConfig struct {
	Secret          string
	VerifySignature bool
	VerifySSL       bool
	AllowedIPs      []string
	RateLimitPerMin int
	MaxPayloadBytes int64
	ExposeErrors    bool
}

type UIConfig struct {
	RefreshInterval  time.Duration
	MaxEventsDisplay int
}

type RetentionConfig struct {
	Enabled  bool
	Days     int
	Interval time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return build(v)
}

// LoadFile loads configuration from an explicit file path.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	return build(v)
}

func build(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)
	if err := bindEnvAliases(v); err != nil {
		return nil, err
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Host = v.GetString("http_server.host")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.TrustedProxies = splitList(v.GetStringSlice("http_server.trusted_proxies"))
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.Logger.File = v.GetString("logger.file")

	// Storage
	cfg.Store.Driver = strings.ToLower(strings.TrimSpace(v.GetString("store.driver")))
	cfg.Store.URI = v.GetString("store.uri")
	cfg.Store.Database = v.GetString("store.database")
	timeout, err := parseDuration(v.GetString("store.timeout"))
	if err != nil {
		return nil, fmt.Errorf("store.timeout: %w", err)
	}
	cfg.Store.Timeout = timeout

	// Webhooks
	cfg.Webhook.Secret = v.GetString("webhook.secret")
	cfg.Webhook.VerifySignature = v.GetBool("webhook.verify_signature")
	cfg.Webhook.VerifySSL = v.GetBool("webhook.verify_ssl")
	cfg.Webhook.RateLimitPerMin = v.GetInt("webhook.rate_limit_per_min")
	cfg.Webhook.MaxPayloadBytes = v.GetInt64("webhook.max_payload_bytes")
	cfg.Webhook.ExposeErrors = v.GetBool("webhook.expose_errors")
	// A YAML list and a comma separated env var both land here
	cfg.Webhook.AllowedIPs = splitList(v.GetStringSlice("webhook.allowed_ips"))

	// Dashboard
	refresh, err := parseDuration(v.GetString("ui.refresh_interval"))
	if err != nil {
		return nil, fmt.Errorf("ui.refresh_interval: %w", err)
	}
	cfg.UI.RefreshInterval = refresh
	cfg.UI.MaxEventsDisplay = v.GetInt("ui.max_events_display")

	// Retention
	cfg.Retention.Enabled = v.GetBool("retention.enabled")
	cfg.Retention.Days = v.GetInt("retention.days")
	interval, err := parseDuration(v.GetString("retention.interval"))
	if err != nil {
		return nil, fmt.Errorf("retention.interval: %w", err)
	}
	cfg.Retention.Interval = interval

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the loaded values for combinations the service cannot run with.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("store.driver: unknown driver %q", c.Store.Driver)
	}
	if c.Store.Driver == DriverPostgres && c.Store.URI == "" {
		return errors.New("store.uri is required for the postgres driver")
	}
	// sqlite opens store.uri as a file path, so a server URI there is a misconfigured driver
	if c.Store.Driver == DriverSQLite && strings.Contains(c.Store.URI, "://") && !strings.HasPrefix(c.Store.URI, "file:") {
		return fmt.Errorf("store.uri %q is not a sqlite path; set store.driver=%s for a database server", redactURI(c.Store.URI), DriverPostgres)
	}
	if c.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive, got %d", c.HTTPServer.Port)
	}
	if c.Webhook.VerifySignature && c.Webhook.Secret == "" {
		return errors.New("webhook.verify_signature requires webhook.secret")
	}
	if c.Retention.Enabled {
		if c.Retention.Days <= 0 {
			return fmt.Errorf("retention.days must be positive, got %d", c.Retention.Days)
		}
		if c.Retention.Interval <= 0 {
			return errors.New("retention.interval must be positive")
		}
	}
	return nil
}

// SQLitePath returns the database file used by the sqlite driver.
func (s StoreConfig) SQLitePath() string {
	if s.URI != "" {
		return s.URI
	}
	return s.Database + ".db"
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.host", "0.0.0.0")
	v.SetDefault("http_server.port", 5000)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.trusted_proxies", []string{})
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", "development")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("logger.file", "")
	v.SetDefault("store.driver", DriverSQLite)
	v.SetDefault("store.uri", "")
	v.SetDefault("store.database", "webhook")
	v.SetDefault("store.timeout", "5s")
	v.SetDefault("webhook.secret", "")
	v.SetDefault("webhook.verify_signature", false)
	v.SetDefault("webhook.verify_ssl", true)
	v.SetDefault("webhook.allowed_ips", []string{})
	v.SetDefault("webhook.rate_limit_per_min", 600)
	v.SetDefault("webhook.max_payload_bytes", 1<<20)
	v.SetDefault("webhook.expose_errors", false)
	v.SetDefault("ui.refresh_interval", "15s")
	v.SetDefault("ui.max_events_display", 50)
	v.SetDefault("retention.enabled", true)
	v.SetDefault("retention.days", 30)
	v.SetDefault("retention.interval", "24h")
}

// bindEnvAliases maps the flat variable names used by existing deployments
// onto the nested keys. The nested name keeps precedence when both are set.
func bindEnvAliases(v *viper.Viper) error {
	aliases := map[string][]string{
		"environment.name":      {"ENVIRONMENT_NAME", "APP_ENV"},
		"http_server.host":      {"HTTP_SERVER_HOST", "HOST"},
		"http_server.port":      {"HTTP_SERVER_PORT", "PORT"},
		"logger.level":          {"LOGGER_LEVEL", "LOG_LEVEL"},
		"logger.file":           {"LOGGER_FILE", "LOG_FILE"},
		"store.uri":             {"STORE_URI", "DATABASE_URL", "MONGODB_URI"},
		"store.database":        {"STORE_DATABASE", "DATABASE_NAME"},
		"webhook.secret":        {"WEBHOOK_SECRET"},
		"webhook.verify_ssl":    {"WEBHOOK_VERIFY_SSL", "VERIFY_SSL"},
		"ui.refresh_interval":   {"UI_REFRESH_INTERVAL", "REFRESH_INTERVAL"},
		"ui.max_events_display": {"UI_MAX_EVENTS_DISPLAY", "MAX_EVENTS_DISPLAY"},
	}
	for key, envs := range aliases {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return fmt.Errorf("bind env %s: %w", key, err)
		}
	}
	return nil
}

// parseDuration accepts Go durations ("15s") and bare integers as seconds.
func parseDuration(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	return time.ParseDuration(raw)
}

// redactURI keeps only the scheme and host of a connection string.
func redactURI(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return "<invalid uri>"
	}
	return u.Scheme + "://" + u.Host
}

func splitList(items []string) []string {
	parts := lo.FlatMap(items, func(item string, _ int) []string {
		return strings.Split(item, ",")
	})
	return lo.FilterMap(parts, func(p string, _ int) (string, bool) {
		p = strings.TrimSpace(p)
		return p, p != ""
	})
}
