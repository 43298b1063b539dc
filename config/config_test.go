package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(c *Config)
		expectError bool
	}{
		{"test config is valid", func(c *Config) {}, false},
		{"missing port", func(c *Config) { c.Server.Port = "" }, true},
		{"missing jwt secret", func(c *Config) { c.Auth.JWTSecret = "" }, true},
		{"zero session ttl", func(c *Config) { c.Auth.SessionTTL = 0 }, true},
		{"unknown queue driver", func(c *Config) { c.Queue.Driver = "kafka" }, true},
		{"redis queue driver", func(c *Config) { c.Queue.Driver = "redis" }, false},
		{"unknown exporter when tracing enabled", func(c *Config) {
			c.Tracing.Enabled = true
			c.Tracing.Exporter = "zipkin"
		}, true},
		{"unknown exporter ignored when tracing disabled", func(c *Config) {
			c.Tracing.Exporter = "zipkin"
		}, false},
		{"production with default secret", func(c *Config) {
			c.Env = "production"
			c.Auth.JWTSecret = defaultJWTSecret
			c.Database.SSLMode = "require"
		}, true},
		{"production with ssl disabled", func(c *Config) {
			c.Env = "prod"
			c.Auth.JWTSecret = "a-very-long-production-secret-value-123"
			c.Database.SSLMode = "disable"
		}, true},
		{"production fully configured", func(c *Config) {
			c.Env = "production"
			c.Auth.JWTSecret = "a-very-long-production-secret-value-123"
			c.Database.SSLMode = "verify-full"
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := LoadTestConfig()
			tt.mutate(c)

			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "  Development ")
	t.Setenv("ALLOWED_HOSTS", "streams.example.com, localhost,,")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("QUEUE_DRIVER", "REDIS")
	t.Setenv("DB_SSL_MODE", "  DISABLE  ")
	t.Setenv("REDIS_DB", "3")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, []string{"streams.example.com", "localhost"}, cfg.Server.AllowedHosts)
	assert.Equal(t, "streams.example.com", cfg.PrimaryHost())
	assert.Equal(t, 2*time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, "redis", cfg.Queue.Driver)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Same(t, cfg, AppConfig)
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("PORT", "")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "/media", cfg.Server.MediaURL)
	assert.Equal(t, 336*time.Hour, cfg.Auth.SessionTTL)
	assert.False(t, cfg.Tracing.Enabled)
}

func TestConfig_PrimaryHostFallback(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, "localhost", cfg.PrimaryHost())
}
