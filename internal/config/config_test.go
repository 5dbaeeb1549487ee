package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPasetoKey = "0123456789abcdef0123456789abcdef"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PASETO_KEY", testPasetoKey)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "dev", cfg.Server.Env)
	assert.True(t, cfg.Server.IsDevelopment())
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.TrustedOrigins)
	assert.Equal(t, "sparkd", cfg.Database.DBName)
	assert.Equal(t, 24*time.Hour, cfg.Auth.AccessTokenDuration)
}

func TestLoadRejectsBadPasetoKey(t *testing.T) {
	t.Setenv("PASETO_KEY", "too-short")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PASETO_KEY", testPasetoKey)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("APP_ENV", "prod")
	t.Setenv("ACCESS_TOKEN_DURATION", "3600")
	t.Setenv("TRUSTED_ORIGINS", "https://app.example.com, https://admin.example.com")
	t.Setenv("REDIS_DB", "2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.False(t, cfg.Server.IsDevelopment())
	assert.Equal(t, time.Hour, cfg.Auth.AccessTokenDuration)
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.Server.TrustedOrigins)
	assert.Equal(t, 2, cfg.Redis.DB)
}

func TestConnectionString(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db",
		Port:     "5433",
		User:     "app",
		Password: "secret",
		DBName:   "sparkd",
		SSLMode:  "require",
	}

	assert.Equal(t, "host=db port=5433 user=app password=secret dbname=sparkd sslmode=require", cfg.ConnectionString())
}

func TestRedisAddress(t *testing.T) {
	cfg := RedisConfig{Host: "cache", Port: "6380"}
	assert.Equal(t, "cache:6380", cfg.Address())
}
