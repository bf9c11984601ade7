package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Base URL of the remote appointments API. Defaults to the address the
	// development proxy forwards /api to, so the client keeps working
	// against a locally running backend without extra setup.
	APIBaseURL string `mapstructure:"API_BASE_URL"`

	MaxRequestsPerMin int `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration for the session store. An empty REDIS_ADDR falls
	// back to the in-process store (sessions then die with the process).
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`

	SessionTTLHours int `mapstructure:"SESSION_TTL_HOURS"`

	// Cron spec for the backend health probe.
	HealthProbeSpec string `mapstructure:"HEALTH_PROBE_SPEC"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "5173")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("API_BASE_URL", "http://localhost:8000/api")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 1)
	viper.SetDefault("SESSION_TTL_HOURS", 24)
	viper.SetDefault("HEALTH_PROBE_SPEC", "@every 30s")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// SessionTTL returns the configured session lifetime.
func SessionTTL() time.Duration {
	return time.Duration(AppConfig.SessionTTLHours) * time.Hour
}
