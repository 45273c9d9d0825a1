package env

import (
	"os"

	"github.com/joho/godotenv"
)

// Env holds the key/value pairs read from the .env file.
var Env map[string]string

// GetEnv returns the configured value for key, preferring the .env file
// over the process environment. Docker and CI set real environment
// variables instead of shipping a file, so both sources are consulted.
func GetEnv(key, def string) string {
	if val, ok := Env[key]; ok {
		return val
	}
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

// SetupEnvFile loads the first .env it finds. The binary may be started
// from the repo root, from cmd/newswire, or from a test package, so a
// few parent directories are probed before giving up.
func SetupEnvFile() {
	candidates := []string{
		".env",
		"../../.env",
		"../../../.env",
	}

	var err error
	for _, candidate := range candidates {
		Env, err = godotenv.Read(candidate)
		if err == nil {
			return
		}
	}

	panic("No .env file found in any of the expected locations")
}

// IsDev reports whether the app runs with APP_ENV=dev. Error responses
// include internal detail only in dev.
func IsDev() bool {
	return GetEnv("APP_ENV", "prod") == "dev"
}
