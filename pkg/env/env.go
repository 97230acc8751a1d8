// Package env reads raw environment variables for code that runs before the
// typed configuration is loaded.
package env

import "os"

// Get returns the named variable, or fallback when it is unset or blank.
func Get(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}
