package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Canvas data layer
	Canvas       CanvasConfig
	Database     DatabaseConfig
	Offline      OfflineConfig
	Connectivity ConnectivityConfig
	Sync         SyncConfig

	// Screens
	Calendar CalendarConfig
	Sessions SessionsConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
	AllowedOrigins  []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// CanvasConfig identifies the Canvas account the service acts for. UserID
// 0 means "ask Canvas at startup".
type CanvasConfig struct {
	BaseURL           string
	UserID            int64
	AccessToken       string
	RefreshToken      string
	ClientID          string
	ClientSecret      string
	PerPage           int
	RequestsPerSecond float64
	Burst             int
	Timeout           time.Duration
}

type DatabaseConfig struct {
	Path         string
	BusyTimeout  time.Duration
	MaxOpenConns int
}

// OfflineConfig forces the offline feature. EnabledOverride is nil when
// the Canvas feature flag decides.
type OfflineConfig struct {
	EnabledOverride *bool
	ForceOffline    bool
	FlagsCacheTTL   time.Duration
}

type ConnectivityConfig struct {
	ProbeURL string
	TTL      time.Duration
	Timeout  time.Duration
}

type SyncConfig struct {
	Interval    time.Duration
	Concurrency int
	RunOnStart  bool
}

type CalendarConfig struct {
	FilterLimit int
}

type SessionsConfig struct {
	TTL         time.Duration
	MaxSessions int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.HTTPServer.AllowedOrigins = viper.GetStringSlice("http_server.allowed_origins")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Canvas
	cfg.Canvas.BaseURL = viper.GetString("canvas.base_url")
	cfg.Canvas.UserID = viper.GetInt64("canvas.user_id")
	cfg.Canvas.AccessToken = viper.GetString("canvas.access_token")
	cfg.Canvas.RefreshToken = viper.GetString("canvas.refresh_token")
	cfg.Canvas.ClientID = viper.GetString("canvas.client_id")
	cfg.Canvas.ClientSecret = viper.GetString("canvas.client_secret")
	cfg.Canvas.PerPage = viper.GetInt("canvas.per_page")
	cfg.Canvas.RequestsPerSecond = viper.GetFloat64("canvas.requests_per_second")
	cfg.Canvas.Burst = viper.GetInt("canvas.burst")
	cfg.Canvas.Timeout = viper.GetDuration("canvas.timeout")
	if token := viper.GetString("canvas_token"); token != "" {
		cfg.Canvas.AccessToken = token
	}

	// Local cache
	cfg.Database.Path = viper.GetString("database.path")
	cfg.Database.BusyTimeout = viper.GetDuration("database.busy_timeout")
	cfg.Database.MaxOpenConns = viper.GetInt("database.max_open_conns")

	// Offline switches
	if viper.IsSet("offline.enabled_override") && viper.GetString("offline.enabled_override") != "" {
		enabled := viper.GetBool("offline.enabled_override")
		cfg.Offline.EnabledOverride = &enabled
	}
	cfg.Offline.ForceOffline = viper.GetBool("offline.force_offline")
	cfg.Offline.FlagsCacheTTL = viper.GetDuration("offline.flags_cache_ttl")

	cfg.Connectivity.ProbeURL = viper.GetString("connectivity.probe_url")
	cfg.Connectivity.TTL = viper.GetDuration("connectivity.ttl")
	cfg.Connectivity.Timeout = viper.GetDuration("connectivity.timeout")
	if cfg.Connectivity.ProbeURL == "" {
		cfg.Connectivity.ProbeURL = cfg.Canvas.BaseURL
	}

	cfg.Sync.Interval = viper.GetDuration("sync.interval")
	cfg.Sync.Concurrency = viper.GetInt("sync.concurrency")
	cfg.Sync.RunOnStart = viper.GetBool("sync.run_on_start")

	cfg.Calendar.FilterLimit = viper.GetInt("calendar.filter_limit")
	cfg.Sessions.TTL = viper.GetDuration("sessions.ttl")
	cfg.Sessions.MaxSessions = viper.GetInt("sessions.max_sessions")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.Canvas.BaseURL == "" {
		return errors.New("canvas.base_url is required")
	}
	if cfg.Canvas.AccessToken == "" {
		return errors.New("canvas.access_token (or CANVAS_TOKEN) is required")
	}
	if cfg.Canvas.RefreshToken != "" && cfg.Canvas.ClientID == "" {
		return errors.New("canvas.client_id is required when a refresh token is set")
	}
	if cfg.Database.Path == "" {
		return errors.New("database.path is required")
	}
	if cfg.Sync.Interval <= 0 {
		return fmt.Errorf("sync.interval must be positive, got %s", cfg.Sync.Interval)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("canvas.per_page", 100)
	viper.SetDefault("canvas.requests_per_second", 10)
	viper.SetDefault("canvas.burst", 5)
	viper.SetDefault("canvas.timeout", "30s")

	viper.SetDefault("database.path", "data/canvas-cache.db")
	viper.SetDefault("database.busy_timeout", "5s")
	viper.SetDefault("database.max_open_conns", 4)

	viper.SetDefault("offline.force_offline", false)
	viper.SetDefault("offline.flags_cache_ttl", "5m")

	viper.SetDefault("connectivity.ttl", "15s")
	viper.SetDefault("connectivity.timeout", "5s")

	viper.SetDefault("sync.interval", "6h")
	viper.SetDefault("sync.concurrency", 4)
	viper.SetDefault("sync.run_on_start", true)

	viper.SetDefault("calendar.filter_limit", 10)
	viper.SetDefault("sessions.ttl", "30m")
	viper.SetDefault("sessions.max_sessions", 256)
}
