package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	DefaultClientURL = "http://localhost:3000"
	DefaultPort      = 5000
	DefaultAPIURL    = "http://localhost:5000/api"
)

type Config struct {
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	Environment string `toml:"environment"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// postgres
	DBURL      string `toml:"db_url"`
	DBMaxConns int32  `toml:"db_max_conns"`
	// cors
	ClientURL string `toml:"client_url"`
	// redis, used for rate limiting
	RedisHost             string `toml:"redis_host"`
	RedisPort             string `toml:"redis_port"`
	CreateRateLimitPerMin int    `toml:"create_rate_limit_per_min"`
	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// set only from the environment
	RedisPassword    string `toml:"-"`
	SentryDSN        string `toml:"-"`
	HoneycombEnabled bool   `toml:"-"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no [%s] section in config", strings.ToLower(env))
	}
	return cfg, nil
}

func Defaults() Config {
	return Config{
		Host:                  "localhost",
		Port:                  DefaultPort,
		Environment:           "development",
		LogLevel:              "debug",
		LogToStdout:           true,
		DBURL:                 "postgres://postgres@localhost:5432/workoutlog",
		DBMaxConns:            10,
		ClientURL:             DefaultClientURL,
		RedisHost:             "localhost",
		RedisPort:             "6379",
		CreateRateLimitPerMin: 60,
		PrometheusMetricsHost: "localhost",
		PrometheusMetricsPort: "2112",
	}
}

// Load reads the env section of the TOML file at path, then applies the
// environment (and an optional .env file) on top of it. A missing file
// yields the defaults.
func Load(env, path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := Defaults()
	cfg.Environment = env

	var t Toml
	_, err := toml.DecodeFile(path, &t)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// defaults only
	case err != nil:
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	default:
		fromFile, err := t.Get(env)
		if err != nil {
			return nil, err
		}
		cfg = merge(cfg, *fromFile)
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func merge(base, override Config) Config {
	if override.Host != "" {
		base.Host = override.Host
	}
	if override.Port != 0 {
		base.Port = override.Port
	}
	if override.Environment != "" {
		base.Environment = override.Environment
	}
	if override.LogLevel != "" {
		base.LogLevel = override.LogLevel
	}
	base.LogsPath = override.LogsPath
	base.LogToStdout = override.LogToStdout
	base.LogFormatJSON = override.LogFormatJSON
	base.SentryEnabled = override.SentryEnabled
	if override.DBURL != "" {
		base.DBURL = override.DBURL
	}
	if override.DBMaxConns != 0 {
		base.DBMaxConns = override.DBMaxConns
	}
	if override.ClientURL != "" {
		base.ClientURL = override.ClientURL
	}
	if override.RedisHost != "" {
		base.RedisHost = override.RedisHost
	}
	if override.RedisPort != "" {
		base.RedisPort = override.RedisPort
	}
	if override.CreateRateLimitPerMin != 0 {
		base.CreateRateLimitPerMin = override.CreateRateLimitPerMin
	}
	if override.PrometheusMetricsHost != "" {
		base.PrometheusMetricsHost = override.PrometheusMetricsHost
	}
	if override.PrometheusMetricsPort != "" {
		base.PrometheusMetricsPort = override.PrometheusMetricsPort
	}
	return base
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DBURL = v
	}
	if v := os.Getenv("CLIENT_URL"); v != "" {
		cfg.ClientURL = v
	}
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT [%s]: %w", v, err)
		}
		cfg.Port = port
	}
	cfg.RedisPassword = os.Getenv("REDIS_PASS")
	cfg.SentryDSN = os.Getenv("SENTRY_DSN")
	cfg.HoneycombEnabled = os.Getenv("HONEYCOMB_ENABLED") == "true"
	return nil
}

// APIURL is the base URL the client binary talks to.
func APIURL() string {
	_ = godotenv.Load()
	if v := os.Getenv("WORKOUTS_API_URL"); v != "" {
		return strings.TrimSuffix(v, "/")
	}
	return DefaultAPIURL
}
