package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "change-me-in-production"

type Config struct {
	Env      string
	LogLevel string
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Queue    QueueConfig
	Tracing  TracingConfig
}

type ServerConfig struct {
	Port           string
	AllowedHosts   []string
	AllowedOrigins []string
	UploadDir      string
	MediaURL       string
	// ulule/limiter 格式，例如 "20-M"
	AuthRateLimit string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type AuthConfig struct {
	JWTSecret  string
	SessionTTL time.Duration
}

type QueueConfig struct {
	// memory 或 redis
	Driver   string
	Stream   string
	Group    string
	Consumer string
}

type TracingConfig struct {
	Enabled     bool
	Exporter    string // stdout 或 otlp
	Endpoint    string
	ServiceName string
}

var AppConfig *Config

// LoadConfig 先讀取 .env（若存在），再由環境變數覆蓋預設值
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := fromViper(v)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	AppConfig = cfg
	return AppConfig, nil
}

func LoadTestConfig() *Config {
	testConfig := &DatabaseConfig{
		Host:     "localhost",
		Port:     "5433", // 測試 DB 用 5433 port
		User:     "postgres",
		Password: "postgres",
		DBName:   "test_db",
		SSLMode:  "disable",
	}

	testRedisConfig := RedisConfig{
		Host:     "localhost",
		Port:     "6380", // 測試 Redis 用 6380 port
		Password: "",
		DB:       1,
	}

	return &Config{
		Env:      "test",
		LogLevel: "debug",
		Server: ServerConfig{
			Port:           "8080",
			AllowedHosts:   []string{"localhost"},
			AllowedOrigins: []string{"http://localhost:3000"},
			UploadDir:      "media",
			MediaURL:       "/media",
			AuthRateLimit:  "1000-M",
		},
		Database: *testConfig,
		Redis:    testRedisConfig,
		Auth: AuthConfig{
			JWTSecret:  "test-secret-test-secret-test-secret",
			SessionTTL: time.Hour,
		},
		Queue: QueueConfig{
			Driver:   "memory",
			Stream:   "test:event_status_changes",
			Group:    "test_status_history",
			Consumer: "test-worker",
		},
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("PORT", "8080")
	v.SetDefault("ALLOWED_HOSTS", "localhost,127.0.0.1")
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000")
	v.SetDefault("UPLOAD_DIR", "media")
	v.SetDefault("MEDIA_URL", "/media")
	v.SetDefault("AUTH_RATE_LIMIT", "20-M")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "postgres")
	v.SetDefault("DB_SSL_MODE", "disable")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("SESSION_TTL", "336h")

	v.SetDefault("QUEUE_DRIVER", "memory")
	v.SetDefault("QUEUE_STREAM", "events:status_changes")
	v.SetDefault("QUEUE_GROUP", "status_history")
	v.SetDefault("QUEUE_CONSUMER", "worker-1")

	v.SetDefault("TRACING_ENABLED", false)
	v.SetDefault("TRACING_EXPORTER", "stdout")
	v.SetDefault("TRACING_ENDPOINT", "localhost:4318")
	v.SetDefault("TRACING_SERVICE_NAME", "stream-events")
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Env:      strings.ToLower(strings.TrimSpace(v.GetString("APP_ENV"))),
		LogLevel: v.GetString("LOG_LEVEL"),
		Server: ServerConfig{
			Port:           v.GetString("PORT"),
			AllowedHosts:   splitList(v.GetString("ALLOWED_HOSTS")),
			AllowedOrigins: splitList(v.GetString("ALLOWED_ORIGINS")),
			UploadDir:      v.GetString("UPLOAD_DIR"),
			MediaURL:       v.GetString("MEDIA_URL"),
			AuthRateLimit:  v.GetString("AUTH_RATE_LIMIT"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
			SSLMode:  strings.ToLower(strings.TrimSpace(v.GetString("DB_SSL_MODE"))),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Auth: AuthConfig{
			JWTSecret:  v.GetString("JWT_SECRET"),
			SessionTTL: v.GetDuration("SESSION_TTL"),
		},
		Queue: QueueConfig{
			Driver:   strings.ToLower(v.GetString("QUEUE_DRIVER")),
			Stream:   v.GetString("QUEUE_STREAM"),
			Group:    v.GetString("QUEUE_GROUP"),
			Consumer: v.GetString("QUEUE_CONSUMER"),
		},
		Tracing: TracingConfig{
			Enabled:     v.GetBool("TRACING_ENABLED"),
			Exporter:    strings.ToLower(v.GetString("TRACING_EXPORTER")),
			Endpoint:    v.GetString("TRACING_ENDPOINT"),
			ServiceName: v.GetString("TRACING_SERVICE_NAME"),
		},
	}
}

// Validate 檢查必要設定；production 環境要求更嚴格
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("PORT is required")
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.Auth.SessionTTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	switch c.Queue.Driver {
	case "memory", "redis":
	default:
		return fmt.Errorf("QUEUE_DRIVER must be memory or redis, got %q", c.Queue.Driver)
	}
	if c.Tracing.Enabled && c.Tracing.Exporter != "stdout" && c.Tracing.Exporter != "otlp" {
		return fmt.Errorf("TRACING_EXPORTER must be stdout or otlp, got %q", c.Tracing.Exporter)
	}

	if c.IsProduction() {
		if c.Auth.JWTSecret == defaultJWTSecret || len(c.Auth.JWTSecret) < 32 {
			return errors.New("JWT_SECRET must be changed and at least 32 characters in production")
		}
		if c.Database.SSLMode == "disable" || c.Database.SSLMode == "" {
			return errors.New("DB_SSL_MODE must not be disabled in production")
		}
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}

// PrimaryHost 回傳 ALLOWED_HOSTS 的第一個，供 Twitch embed 的 parent 參數使用
func (c *Config) PrimaryHost() string {
	if len(c.Server.AllowedHosts) == 0 {
		return "localhost"
	}
	return c.Server.AllowedHosts[0]
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
