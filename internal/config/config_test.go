package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "postgres", cfg.StoreDriver)
	assert.Equal(t, "none", cfg.EventsDriver)
	assert.True(t, cfg.AuthEnabled)
	assert.Equal(t, 50, cfg.HistoryDefaultLimit)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "MEMORY")
	t.Setenv("AUTH_ENABLED", "false")
	t.Setenv("DB_RETRY_DELAY", "500ms")
	t.Setenv("DB_CONNECT_RETRIES", "nope")
	t.Setenv("ADMIN_PASSWORD", "s3cret")

	cfg := Load()
	assert.Equal(t, "memory", cfg.StoreDriver)
	assert.False(t, cfg.AuthEnabled)
	assert.Equal(t, 500*time.Millisecond, cfg.DBRetryDelay)
	assert.Equal(t, 10, cfg.DBConnectRetries)

	for k, v := range cfg.Fields() {
		assert.NotContains(t, v, "s3cret", k)
	}
}
