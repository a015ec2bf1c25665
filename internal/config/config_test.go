package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nexuscore/provenance/internal/config"
)

func TestLoad_DefaultsWhenUnset(t *testing.T) {
	cfg := config.Load()
	assert.Equal(t, 4, cfg.BlockchainDifficulty)
	assert.Equal(t, 30, cfg.SessionTimeoutMin)
	assert.Equal(t, 50, cfg.DBPoolSize)
}

func TestLoad_EnvironmentOverridesDefaults(t *testing.T) {
	t.Setenv("BLOCKCHAIN_DIFFICULTY", "2")
	t.Setenv("SESSION_TIMEOUT_MINUTES", "15")
	t.Setenv("DB_POOL_SIZE", "10")
	defer os.Unsetenv("BLOCKCHAIN_DIFFICULTY")

	cfg := config.Load()
	assert.Equal(t, 2, cfg.BlockchainDifficulty)
	assert.Equal(t, 15, cfg.SessionTimeoutMin)
	assert.Equal(t, 10, cfg.DBPoolSize)
}
