package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// APIKey is the OpenAI credential used by both remote adapters. A named type
// keeps it distinct from ordinary strings when wired through the injector.
type APIKey string

// LoadEnv loads environment variables from a .env file if one exists. Missing
// files are fine; the variables may be set system-wide instead.
func LoadEnv() error {
	envPaths := []string{
		".env",
		".env.local",
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			break
		}
	}

	return nil
}

// RequireAPIKey reads OPENAI_API_KEY and fails when it is absent. The key is
// the one required secret; every run needs it before any remote call is made.
func RequireAPIKey() (APIKey, error) {
	key := strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	if key == "" {
		return "", fmt.Errorf("OPENAI_API_KEY is not set - add it to the environment or a .env file")
	}
	return APIKey(key), nil
}
