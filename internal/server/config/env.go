package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const envPrefix = "WALLET_"

// dotEnvFile is read, when present, before the environment is parsed.
// Variables already set in the process environment win over the file.
var dotEnvFile = ".env"

// parseEnv overlays WALLET_* variables. Unset variables leave fields as they
// are. A nil environ reads the process environment after loading .env.
func parseEnv(config *Config, environ map[string]string) error {
	if environ == nil {
		if err := godotenv.Load(dotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	return env.ParseWithOptions(config, env.Options{
		Prefix:      envPrefix,
		Environment: environ,
	})
}
