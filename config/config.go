package config

import "os"

// Defaults match the original deployment constants; every value can still be
// overridden through the environment.
const (
	DefaultHost   = "localhost"
	DefaultPort   = "8000"
	DefaultDBName = "ShatelMobile.db"
)

// Env returns the value of key, or fallback when it is unset or empty.
func Env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
