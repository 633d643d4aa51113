package config

import (
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
)

func TestLoad_MemoryBackendSkipsDatabaseVars(t *testing.T) {
    t.Setenv("JWT_SECRET", "s3cret")
    t.Setenv("STORE_BACKEND", BackendMemory)
    t.Setenv("RECONCILE_ATOMIC", "false")
    t.Setenv("SHARE_ACTIVITY_LIMIT", "5")
    t.Setenv("RABBITMQ_URL", "")
    t.Setenv("AMQP_URL", "amqp://broker:5672/")
    t.Setenv("MANAGER_ROLES", "manager, admin,")

    cfg := Load()
    assert.Equal(t, BackendMemory, cfg.StoreBackend)
    assert.False(t, cfg.AtomicSave)
    assert.Equal(t, 5, cfg.ActivityLimit)
    assert.Equal(t, "amqp://broker:5672/", cfg.RabbitMQURL)
    assert.Empty(t, cfg.DBHost)
    assert.Equal(t, []string{"manager", "admin"}, cfg.ManagerRoles)
}

func TestLoad_AtomicByDefault(t *testing.T) {
    t.Setenv("JWT_SECRET", "s3cret")
    t.Setenv("STORE_BACKEND", BackendMemory)
    t.Setenv("RECONCILE_ATOMIC", "")
    assert.True(t, Load().AtomicSave)
}

func TestEnvBool(t *testing.T) {
    t.Setenv("FLAG", "ON")
    assert.True(t, envBool("FLAG", false))
    t.Setenv("FLAG", "no")
    assert.False(t, envBool("FLAG", true))
    t.Setenv("FLAG", "maybe")
    assert.True(t, envBool("FLAG", true))
}

func TestLoadRateLimitConfig_Clamps(t *testing.T) {
    t.Setenv("SHARE_RATE_LIMIT_CAPACITY", "0")
    t.Setenv("SHARE_RATE_LIMIT_REFILL_INTERVAL", "1s")
    t.Setenv("SHARE_RATE_LIMIT_TTL", "1s")

    c := LoadRateLimitConfig()
    assert.Equal(t, 1, c.Capacity)
    assert.Equal(t, 5*time.Second, c.TTL)
}
