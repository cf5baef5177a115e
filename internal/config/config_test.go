package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, time.Hour, cfg.AccessTokenTTL())
	assert.Equal(t, 30*24*time.Hour, cfg.RefreshTokenTTL())
	assert.Equal(t, 10*time.Second, cfg.RegistryTimeout())
	assert.False(t, cfg.Lifecycle.StrictTransitions)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing dsn", func(c *Config) { c.Database.DSN = "" }},
		{"unknown driver", func(c *Config) { c.Database.Driver = "oracle" }},
		{"empty jwt secret", func(c *Config) { c.JWT.Secret = "" }},
		{"unknown storage", func(c *Config) { c.Storage.Type = "ftp" }},
		{"zero resume size", func(c *Config) { c.Upload.MaxResumeSize = 0 }},
		{"no default city", func(c *Config) { c.Assistant.DefaultCity = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", "file::memory:")
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("STRICT_TRANSITIONS", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://vagaspg.com.br,https://admin.vagaspg.com.br")
	t.Setenv("FIRST_ADMIN_EMAIL", "admin@vagaspg.com.br")
	t.Setenv("MERCADOPAGO_WEBHOOK_SECRET", "whsec-live")

	cfg := Default()
	applyEnv(cfg)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "file::memory:", cfg.Database.DSN)
	assert.Equal(t, 8081, cfg.Server.Port)
	assert.True(t, cfg.Lifecycle.StrictTransitions)
	assert.Equal(t, []string{"https://vagaspg.com.br", "https://admin.vagaspg.com.br"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "admin@vagaspg.com.br", cfg.Admin.Email)
	assert.Equal(t, "whsec-live", cfg.Payments.WebhookSecret)
	require.NoError(t, cfg.Validate())
}
