package pkg

import "os"

// Getenv returns the value of the environment variable key, falling back
// to defaultValue only if the variable is not set at all.
func Getenv(key, defaultValue string) string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}

	return value
}
