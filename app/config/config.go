package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config holds the runtime settings for the admin front-end. Everything is
// environment-driven (BILLING_ prefix); the backend API is the only external
// dependency.
type Config struct {
	Environment    string
	ListenAddr     string
	APIBaseURL     string
	AuthBaseURL    string
	RequestTimeout time.Duration
	SessionSecret  string
	Logger         *zap.Logger
}

var AppConfig *Config

// Init loads configuration and builds the process logger. It must be called
// once before anything reads AppConfig; failures are fatal.
func Init() {
	v := viper.New()
	v.SetTypeByDefaultValue(true)
	v.SetDefault("environment", "development")
	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("api_base_url", "http://localhost:8000")
	// Single configurable origin for auth and resource calls; override only
	// when the auth service is mounted elsewhere.
	v.SetDefault("auth_base_url", "")
	v.SetDefault("request_timeout", 15*time.Second)
	v.SetDefault("session_secret", "mattilda-dev-secret")

	v.SetEnvPrefix("BILLING")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		Environment:    v.GetString("environment"),
		ListenAddr:     v.GetString("listen_addr"),
		APIBaseURL:     v.GetString("api_base_url"),
		AuthBaseURL:    v.GetString("auth_base_url"),
		RequestTimeout: v.GetDuration("request_timeout"),
		SessionSecret:  v.GetString("session_secret"),
	}
	if cfg.AuthBaseURL == "" {
		cfg.AuthBaseURL = cfg.APIBaseURL
	}

	logger, err := buildLogger(cfg.Environment)
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	cfg.Logger = logger

	AppConfig = cfg
	logger.Info("configuration loaded",
		zap.String("environment", cfg.Environment),
		zap.String("listen_addr", cfg.ListenAddr),
		zap.String("api_base_url", cfg.APIBaseURL))
}

func buildLogger(environment string) (*zap.Logger, error) {
	if environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// GetLogger returns the process logger.
func GetLogger() *zap.Logger {
	return AppConfig.Logger
}
