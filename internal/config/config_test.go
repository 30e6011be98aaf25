package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.HTTPPort)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "miraara", cfg.MongoDBName)
	assert.Equal(t, "Miraara Studios", cfg.SenderName)
	assert.Equal(t, time.Hour, cfg.OrderTTL)
	assert.Equal(t, 30*time.Second, cfg.FetchTimeout)
	assert.Equal(t, 60*time.Second, cfg.RequestTimeout)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("MONGO_DB_NAME", "miraara_test")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("RAZORPAY_KEY_ID", "rzp_test_key")
	t.Setenv("ADMIN_EMAIL", "owner@miraara.com")
	t.Setenv("ORDER_TTL", "2h")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "mongodb://db:27017", cfg.MongoURI)
	assert.Equal(t, "miraara_test", cfg.MongoDBName)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, "rzp_test_key", cfg.RazorpayKeyID)
	assert.Equal(t, "owner@miraara.com", cfg.AdminEmail)
	assert.Equal(t, 2*time.Hour, cfg.OrderTTL)
}

func TestLoad_UnmappedEnvVarsIgnored(t *testing.T) {
	t.Setenv("SOME_RANDOM_VAR", "noise")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "5000", cfg.HTTPPort)
}

func TestLoad_InvalidOrderTTL(t *testing.T) {
	t.Setenv("ORDER_TTL", "-10m")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "order TTL")
}
