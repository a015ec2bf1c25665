// Package config loads the small set of environment-tunable values
// the node needs at startup, via viper so the same keys can equally
// come from a config file, flag, or environment variable.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds the node's tunable parameters.
type Config struct {
	BlockchainDifficulty int
	SessionTimeoutMin    int
	DBPoolSize           int
}

const (
	keyDifficulty     = "blockchain_difficulty"
	keySessionTimeout = "session_timeout_minutes"
	keyDBPoolSize     = "db_pool_size"
)

// Load reads configuration from the environment (and any config file
// viper has been pointed at), applying the documented defaults for
// whatever is unset.
func Load() Config {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(keyDifficulty, 4)
	v.SetDefault(keySessionTimeout, 30)
	v.SetDefault(keyDBPoolSize, 50)

	return Config{
		BlockchainDifficulty: v.GetInt(keyDifficulty),
		SessionTimeoutMin:    v.GetInt(keySessionTimeout),
		DBPoolSize:           v.GetInt(keyDBPoolSize),
	}
}
