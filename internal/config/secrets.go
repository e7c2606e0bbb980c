package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Secrets are never read from the TOML file.
type Secrets struct {
	DBPassword       string
	RedisPassword    string
	SentryDSN        string
	HoneycombEnabled bool
	HoneycombAPIKey  string
}

// LoadSecrets reads secrets from the environment. Variables from the optional
// dotenv file fill in whatever the environment does not already set.
func LoadSecrets(dotenvPath string) (Secrets, error) {
	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Secrets{}, err
		}
	}

	return Secrets{
		DBPassword:       os.Getenv("TRAININGLOAD_DB_PASSWORD"),
		RedisPassword:    os.Getenv("TRAININGLOAD_REDIS_PASS"),
		SentryDSN:        os.Getenv("SENTRY_DSN"),
		HoneycombEnabled: os.Getenv("HONEYCOMB_ENABLED") == "true",
		HoneycombAPIKey:  os.Getenv("HONEYCOMB_API_KEY"),
	}, nil
}
