package config

import "os"

// Environment variables that override operational defaults.
const (
	EnvDBPath   = "INVADERS_DB"
	EnvSSHAddr  = "INVADERS_SSH_ADDR"
	EnvHostKey  = "INVADERS_HOST_KEY"
	EnvLogLevel = "INVADERS_LOG_LEVEL"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
