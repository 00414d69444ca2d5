package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Environment variables consulted by Load. The endpoint is optional; the SDK
// falls back to its built-in default when unset.
const (
	EnvAPIKey   = "MATERIALS_SCHOLAR_API_KEY"
	EnvEndpoint = "MATERIALS_SCHOLAR_ENDPOINT"
)

type Config struct {
	APIKey   string
	Endpoint string
}

// Load resolves the client credentials from the environment, after a
// best-effort .env load for local development. The environment lookup lives
// here so the SDK itself never reads globals; library users pass the key to
// matscholar.New explicitly.
func Load() (*Config, error) {
	// Missing .env is the normal case outside development.
	_ = godotenv.Load()

	key := os.Getenv(EnvAPIKey)
	if key == "" {
		return nil, errors.Errorf("%s is not set", EnvAPIKey)
	}

	return &Config{
		APIKey:   key,
		Endpoint: os.Getenv(EnvEndpoint),
	}, nil
}
