package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the admin console client.
type Config struct {
	AppName           string
	AppEnv            string
	APIBaseURL        string
	SessionCookieName string
	SessionCookie     string
	RequestTimeout    time.Duration
	RedisURL          string
	DashboardCacheTTL time.Duration
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("CAMPUS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "Campus Admin Console")
	v.SetDefault("app.env", "development")
	v.SetDefault("api.base_url", "http://localhost:8080/api")
	v.SetDefault("session.cookie_name", "SESSION")
	v.SetDefault("request_timeout", "30s")
	v.SetDefault("dashboard.cache_ttl", "5m")

	timeout, err := time.ParseDuration(v.GetString("request_timeout"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid request timeout: %w", err)
	}

	ttl, err := time.ParseDuration(v.GetString("dashboard.cache_ttl"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid dashboard cache ttl: %w", err)
	}

	cfg := Config{
		AppName:           v.GetString("app.name"),
		AppEnv:            v.GetString("app.env"),
		APIBaseURL:        strings.TrimRight(v.GetString("api.base_url"), "/"),
		SessionCookieName: v.GetString("session.cookie_name"),
		SessionCookie:     v.GetString("session.cookie"),
		RequestTimeout:    timeout,
		RedisURL:          v.GetString("redis.url"),
		DashboardCacheTTL: ttl,
	}

	if cfg.APIBaseURL == "" {
		return Config{}, fmt.Errorf("api base url must be provided")
	}

	return cfg, nil
}
